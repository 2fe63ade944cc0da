package gemini_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/infrastructure/gemini"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/pkg/apperror"
)

func TestCredentials_Resolve(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		key, err := gemini.NewCredentials("default").Resolve("override")
		require.NoError(t, err)
		assert.Equal(t, "override", key)
	})

	t.Run("falls back to default", func(t *testing.T) {
		key, err := gemini.NewCredentials("default").Resolve(" ")
		require.NoError(t, err)
		assert.Equal(t, "default", key)
	})

	t.Run("nothing configured", func(t *testing.T) {
		_, err := gemini.NewCredentials("").Resolve("")
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindNotConfigured))
	})
}
