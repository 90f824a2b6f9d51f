package errors

// Error code constants returned in the "error" field of failure responses.
// Format: CATEGORY_SPECIFIC_DETAIL. The dashboards map these to display
// messages.

const (
	// Authentication (AUTH_)
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthPrincipalNotFound  = "AUTH_PRINCIPAL_NOT_FOUND"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"

	// Authorization (AUTHZ_)
	AuthzForbidden    = "AUTHZ_FORBIDDEN"
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND"

	// Validation (VALIDATION_)
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID     = "VALIDATION_INVALID_ID"
	ValidationInvalidRole   = "VALIDATION_INVALID_ROLE"
	ValidationInvalidStatus = "VALIDATION_INVALID_STATUS"
	ValidationRequired      = "VALIDATION_REQUIRED"

	// Registrations (REGISTRATION_)
	RegistrationNotFound        = "REGISTRATION_NOT_FOUND"
	RegistrationDuplicate       = "REGISTRATION_DUPLICATE"
	RegistrationInvalidType     = "REGISTRATION_INVALID_TYPE"
	RegistrationInvalidDocument = "REGISTRATION_INVALID_DOCUMENT"
	RegistrationConfirmed       = "REGISTRATION_ALREADY_CONFIRMED"

	// Principals (PRINCIPAL_)
	PrincipalNotFound          = "PRINCIPAL_NOT_FOUND"
	PrincipalEmailExists       = "PRINCIPAL_EMAIL_EXISTS"
	PrincipalLastAdministrator = "PRINCIPAL_LAST_ADMINISTRATOR"

	// Resources (RESOURCE_)
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"

	// Upload (UPLOAD_)
	UploadFileMissing = "UPLOAD_FILE_MISSING"
	UploadFailed      = "UPLOAD_FAILED"

	// Internal (INTERNAL_)
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
