package utils

import (
	"praxismatch-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateSecureUUID produces the opaque identifier the downstream UI uses to
// address one matching run's proposal set.
func GenerateSecureUUID() string {
	return uuid.NewString()
}
