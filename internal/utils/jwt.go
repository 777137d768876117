package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"zfunds/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateTokens generates an access token and a refresh token for the
// given identity claims. The JWT secret is expected to be set in the
// environment variable JWT_SECRET.
func GenerateTokens(claims *models.IdentityClaims) (accessToken string, refreshToken string, err error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return "", "", errors.New("JWT_SECRET not configured")
	}

	now := time.Now()

	accessClaims := models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(15 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "zfunds-api",
			Subject:   strconv.FormatUint(uint64(claims.IdentityID), 10),
			ID:        uuid.NewString(),
		},
		IdentityID:   claims.IdentityID,
		MobileNumber: claims.MobileNumber,
		Role:         claims.Role,
		Permissions:  claims.Permissions,
		TokenVersion: claims.TokenVersion,
	}
	accessJwt := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessToken, err = accessJwt.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", "", err
	}

	refreshClaims := models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "zfunds-api",
			Subject:   strconv.FormatUint(uint64(claims.IdentityID), 10),
			ID:        uuid.NewString(),
		},
		IdentityID:   claims.IdentityID,
		MobileNumber: claims.MobileNumber,
		Role:         claims.Role,
		TokenVersion: claims.TokenVersion,
	}
	refreshJwt := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshToken, err = refreshJwt.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ParseToken parses and validates a JWT token string.
// It returns the claims if valid, or an error if something is wrong.
func ParseToken(tokenStr string) (*jwt.Token, *models.IdentityClaims, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, nil, errors.New("JWT_SECRET not configured")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &models.IdentityClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil {
		return nil, nil, err
	}

	claims, ok := token.Claims.(*models.IdentityClaims)
	if !ok || !token.Valid {
		return nil, nil, errors.New("invalid token claims")
	}

	return token, claims, nil
}
