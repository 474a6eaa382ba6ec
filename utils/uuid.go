package utils

import (
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key and response header for the request id
const RequestIDKey = "X-Request-ID"

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// RequestID returns the incoming id when it is a valid UUID, or a fresh one
func RequestID(incoming string) string {
	if _, err := uuid.Parse(incoming); err == nil {
		return incoming
	}
	return GenerateID()
}
