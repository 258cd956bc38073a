package optimizer

import (
	"context"

	"github.com/akhilmohan/resume-wizard/internal/llm"
)

// LLMRewriter adapts an llm.Client to the Rewriter interface.
type LLMRewriter struct {
	Client llm.Client
	Tier   llm.ModelTier
}

// NewLLMRewriter wraps a client with the standard rewriting tier.
func NewLLMRewriter(client llm.Client) *LLMRewriter {
	return &LLMRewriter{Client: client, Tier: llm.TierStandard}
}

// Rewrite sends the prompt to the model and returns its free-form text.
func (r *LLMRewriter) Rewrite(ctx context.Context, prompt string) (string, error) {
	return r.Client.GenerateContent(ctx, prompt, r.Tier)
}
