package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is a parsed store error: a stable code plus a message safe to
// show to the caller.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts GORM and Postgres errors into the response taxonomy.
// Raw driver messages never reach the client.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "Internal server error"}
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Code: notFoundCode(context), Message: notFoundMessage(context)}
	}

	// Unique constraint violation (Postgres 23505, sqlite "UNIQUE constraint failed")
	if strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "unique constraint") ||
		strings.Contains(errStr, "unique constraint failed") {
		return parseDuplicateKeyError(errStr, context)
	}

	// Not-null violation (23502)
	if strings.Contains(errStr, "null value") && strings.Contains(errStr, "not-null constraint") {
		return ErrorInfo{Code: ValidationRequired, Message: "A required field is missing"}
	}

	// Connectivity
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") {
		return ErrorInfo{Code: InternalDatabaseError, Message: "Storage temporarily unavailable, try again shortly"}
	}

	return ErrorInfo{Code: InternalServerError, Message: "Internal server error"}
}

// ParseAndRespond parses a store error and writes the standard failure
// body. For controllers wrapping repository failures they cannot classify
// themselves.
func ParseAndRespond(c interface{ JSON(int, interface{}) }, statusCode int, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(statusCode, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}

func parseDuplicateKeyError(errStr, context string) ErrorInfo {
	if strings.Contains(errStr, "email") {
		if strings.Contains(context, "principal") || strings.Contains(context, "administrator") {
			return ErrorInfo{Code: PrincipalEmailExists, Message: "An account with this email already exists"}
		}
		return ErrorInfo{Code: RegistrationDuplicate, Message: "Email or phone number already exists"}
	}
	if strings.Contains(errStr, "phone") || strings.Contains(errStr, "contact") {
		return ErrorInfo{Code: RegistrationDuplicate, Message: "Email or phone number already exists"}
	}
	return ErrorInfo{Code: ResourceAlreadyExists, Message: "Record already exists"}
}

func notFoundCode(context string) string {
	if strings.Contains(context, "registration") || strings.Contains(context, "seller") ||
		strings.Contains(context, "agent") {
		return RegistrationNotFound
	}
	if strings.Contains(context, "principal") || strings.Contains(context, "administrator") {
		return PrincipalNotFound
	}
	return ResourceNotFound
}

func notFoundMessage(context string) string {
	switch {
	case strings.Contains(context, "seller"):
		return "Seller registration not found"
	case strings.Contains(context, "agent"):
		return "Delivery agent registration not found"
	case strings.Contains(context, "administrator"):
		return "Administrator not found"
	case strings.Contains(context, "announcement"):
		return "Announcement not found"
	default:
		return "Record not found"
	}
}
