package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"zfunds/internal/models"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations

func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// GenerateKey builds a namespaced cache key.
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Identity caching

// identityEnvelope is the cache representation of an identity. The
// API struct hides OTPSecret and TokenVersion behind `json:"-"`; the
// cache must round-trip them, so the envelope re-exposes both under
// its own tags.
type identityEnvelope struct {
	models.Identity
	OTPSecret    string `json:"otp_secret"`
	TokenVersion int    `json:"token_version"`
}

func wrapIdentity(identity *models.Identity) *identityEnvelope {
	return &identityEnvelope{
		Identity:     *identity,
		OTPSecret:    identity.OTPSecret,
		TokenVersion: identity.TokenVersion,
	}
}

func (e *identityEnvelope) unwrap() *models.Identity {
	identity := e.Identity
	identity.OTPSecret = e.OTPSecret
	identity.TokenVersion = e.TokenVersion
	return &identity
}

func (s *CacheService) CacheIdentity(ctx context.Context, identity *models.Identity) error {
	if identity == nil {
		return errors.New("cannot cache nil identity")
	}

	keys := []string{
		s.GenerateKey("identity", "id", identity.ID),
		s.GenerateKey("identity", "mobile", identity.MobileNumber),
	}

	envelope := wrapIdentity(identity)
	for _, key := range keys {
		if err := s.Set(ctx, key, envelope); err != nil {
			return err
		}
	}
	return nil
}

func (s *CacheService) GetIdentity(ctx context.Context, key string) (*models.Identity, error) {
	var envelope identityEnvelope
	found, err := s.Get(ctx, key, &envelope)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.New("identity not found in cache")
	}
	return envelope.unwrap(), nil
}

// InvalidateIdentity drops both lookup keys for an identity.
func (s *CacheService) InvalidateIdentity(ctx context.Context, identity *models.Identity) error {
	if identity == nil {
		return nil
	}
	return s.Delete(ctx,
		s.GenerateKey("identity", "id", identity.ID),
		s.GenerateKey("identity", "mobile", identity.MobileNumber),
	)
}

// FlushAll clears the whole cache. Used on startup.
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *CacheService) Close() error {
	return s.client.Close()
}
