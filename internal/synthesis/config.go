package synthesis

// Config holds synthesis generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MaxExchanges caps how many question/answer pairs go into the
	// prompt. The most recent ones win; early rapport-building
	// exchanges carry the least signal.
	MaxExchanges int
}

// DefaultConfig returns sensible defaults for synthesis generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    1200,
		Temperature:  0.4,
		MaxExchanges: 60,
	}
}
