// Package llm wraps the Gemini client used for model-backed checks.
package llm

import "fmt"

// ModelTier selects a model by cost and capability.
type ModelTier string

// Model tiers, cheapest first.
const (
	TierLite     ModelTier = "lite"
	TierStandard ModelTier = "standard"
	TierAdvanced ModelTier = "advanced"
)

// Config holds generation settings for the Gemini client.
type Config struct {
	Models          map[ModelTier]string
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultConfig returns deterministic settings sized for one résumé of
// grammar findings.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature:     0,
		MaxOutputTokens: 8192,
	}
}

// ParseTier validates a tier name from configuration. Empty means TierLite.
func ParseTier(name string) (ModelTier, error) {
	switch ModelTier(name) {
	case "":
		return TierLite, nil
	case TierLite, TierStandard, TierAdvanced:
		return ModelTier(name), nil
	}
	return "", fmt.Errorf("unknown model tier %q", name)
}

// ModelFor returns the model for tier, falling back to the cheapest
// configured tier. It returns "" when no model is configured.
func (c *Config) ModelFor(tier ModelTier) string {
	if model := c.Models[tier]; model != "" {
		return model
	}
	for _, t := range []ModelTier{TierLite, TierStandard, TierAdvanced} {
		if model := c.Models[t]; model != "" {
			return model
		}
	}
	return ""
}
