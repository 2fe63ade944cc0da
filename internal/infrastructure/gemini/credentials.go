package gemini

import (
	"strings"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/pkg/apperror"
)

// Credentials picks the API key for a single call.
type Credentials struct {
	defaultKey string
}

func NewCredentials(defaultKey string) Credentials {
	return Credentials{defaultKey: strings.TrimSpace(defaultKey)}
}

// Resolve returns the per-request override when present, otherwise the
// configured key.
func (c Credentials) Resolve(override string) (string, error) {
	if key := strings.TrimSpace(override); key != "" {
		return key, nil
	}
	if c.defaultKey != "" {
		return c.defaultKey, nil
	}
	return "", apperror.NotConfigured()
}
