package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, ProviderGemini, config.Provider)
	assert.NotEmpty(t, config.GetModel(TierLite))
	assert.NotEmpty(t, config.GetModel(TierStandard))
}

func TestGetModel_FallbackChain(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierLite: "gemini-2.5-flash-lite"},
	}
	// Unknown tier falls back to standard, then lite.
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(ModelTier("unknown")))
}

func TestGetModel_NoModels(t *testing.T) {
	config := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	assert.Empty(t, config.GetModel(TierStandard))
}

func TestWithModel_DoesNotMutateOriginal(t *testing.T) {
	original := DefaultGeminiConfig()
	originalModel := original.GetModel(TierStandard)

	modified := original.WithModel(TierStandard, "gemini-override")

	assert.Equal(t, "gemini-override", modified.GetModel(TierStandard))
	assert.Equal(t, originalModel, original.GetModel(TierStandard))
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), DefaultConfig(), "")
	assert.Error(t, err)
}
