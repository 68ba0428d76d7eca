//nolint:gochecknoglobals
package utilx

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// GenerateUUID - generate a UUID.
func GenerateUUID() uuid.UUID {
	for {
		u, err := uuid.NewRandom()
		if err == nil {
			return u
		}
	}
}

// RandomString - Generate a random string of a given length.
func RandomString(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("error generating random string: %w", err)
	}

	return hex.EncodeToString(bytes), nil
}
