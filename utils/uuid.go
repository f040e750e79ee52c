package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string. Access tokens minted at
// login use it directly, so the value must be unguessable.
func GenerateID() string {
	return uuid.New().String()
}
