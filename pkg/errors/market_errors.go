package errors

var (
	// Domain errors — used in usecase/repository
	ErrUsernameTaken       = AlreadyExists("username is already taken")
	ErrAccountNotFound     = NotFound("account not found")
	ErrInvalidUsername     = InvalidArg("username must be 3-32 chars, lowercase letters, numbers and underscores only")
	ErrInvalidCredential   = InvalidArg("credential cannot be empty")
	ErrBadCredentials      = Unauthorized("invalid username or credential")
	ErrServiceNotFound     = NotFound("service not found")
	ErrDuplicateService    = AlreadyExists("a service for this key is already listed")
	ErrServiceInUse        = FailedPrecondition("service has active purchases")
	ErrInvalidXpub         = InvalidArg("extended public key cannot be empty")
	ErrPurchaseExists      = AlreadyExists("a purchase for this client and service already exists")
	ErrPurchaseNotFound    = NotFound("no purchase matches this payment reference")
	ErrNoActivePurchase    = FailedPrecondition("no active purchase for this client and service")
	ErrRequestNotFound     = NotFound("signature request not found")
	ErrNotEligible         = FailedPrecondition("signature request is not eligible for release")
	ErrInvalidPayload      = InvalidArg("transaction payload cannot be empty")
	ErrInvalidPaymentRef   = InvalidArg("payment reference cannot be empty")
	ErrSecretMissing       = FailedPrecondition("fingerprint secret is not configured")
	ErrEncryptionKeyBad    = FailedPrecondition("encryption key must be 32 bytes")
	ErrCiphertextTampered  = New(CodeDataLoss, "stored key material failed authentication")
	ErrBackendUnavailable  = New(CodeUnavailable, "lightning backend unreachable")
	ErrInvoiceNotFound     = NotFound("payment reference unknown to backend")
)

func ErrRevealFailed(cause error) error {
	return Wrap(CodeDataLoss, "failed to reveal key material", cause)
}

func ErrVerificationFailed(cause error) error {
	return Wrap(CodeUnavailable, "settlement verification failed", cause)
}
