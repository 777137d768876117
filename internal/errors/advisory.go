package errors

var (
	ErrInvalidOTP = &DomainError{
		Code:    "INVALID_OTP",
		Message: "invalid OTP",
	}
	ErrIdentityNotFound = &DomainError{
		Code:    "IDENTITY_NOT_FOUND",
		Message: "identity not found",
	}
	ErrAdvisorNotFound = &DomainError{
		Code:    "ADVISOR_NOT_FOUND",
		Message: "advisor not found",
	}
	ErrClientNotFound = &DomainError{
		Code:    "CLIENT_NOT_FOUND",
		Message: "client not found or not associated with the advisor",
	}
	ErrProductNotFound = &DomainError{
		Code:    "PRODUCT_NOT_FOUND",
		Message: "product not found",
	}
	ErrMobileTaken = &DomainError{
		Code:    "MOBILE_TAKEN",
		Message: "mobile number already registered",
	}
	ErrDuplicateCategory = &DomainError{
		Code:    "DUPLICATE_CATEGORY",
		Message: "category was created concurrently, retry the request",
	}
)
