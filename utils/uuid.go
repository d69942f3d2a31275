package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// GenerateNote returns a single-use order nonce for an external transfer.
func GenerateNote() string {
	return "order_" + uuid.New().String()
}
