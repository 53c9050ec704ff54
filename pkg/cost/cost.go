package cost

import (
	"errors"
	"fmt"
)

// ErrUnknownModel reports a completion billed against a model with no
// price-table entry. There is no default price to fall back to.
var ErrUnknownModel = errors.New("model not found in price table")

// Usage mirrors the token counters returned with one chat completion.
type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	CachedTokens     int64
}

// Pricing is the per-unit price set for one model.
type Pricing struct {
	InputPer1K  float64 // price per 1000 non-cached input tokens
	OutputPer1K float64 // price per 1000 completion tokens
	CachedPer1M float64 // price per 1,000,000 cached input tokens
}

// Breakdown is the itemized cost of one completion call, in dollars.
type Breakdown struct {
	Model          string
	Pricing        Pricing
	Usage          Usage
	NonCachedInput float64
	CachedInput    float64
	Completion     float64
	Total          float64
}

var priceTable = map[string]Pricing{
	"gpt-4o-mini": {
		InputPer1K:  0.000150,
		OutputPer1K: 0.000600,
		CachedPer1M: 0.075,
	},
}

// Compute itemizes the cost of one completion call against the price table.
func Compute(usage Usage, model string) (Breakdown, error) {
	pricing, ok := priceTable[model]
	if !ok {
		return Breakdown{}, fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}

	nonCachedTokens := usage.PromptTokens - usage.CachedTokens

	b := Breakdown{
		Model:          model,
		Pricing:        pricing,
		Usage:          usage,
		NonCachedInput: float64(nonCachedTokens) * (pricing.InputPer1K / 1000),
		CachedInput:    float64(usage.CachedTokens) * (pricing.CachedPer1M / 1_000_000),
		Completion:     float64(usage.CompletionTokens) * (pricing.OutputPer1K / 1000),
	}
	b.Total = b.NonCachedInput + b.CachedInput + b.Completion

	return b, nil
}
