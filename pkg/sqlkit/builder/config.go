package builder

import "github.com/sllt/sqlkit/pkg/sqlkit/quote"

// Config carries the identifier quoting policy a builder renders with.
// It is passed explicitly to each builder constructor; there is no hidden
// process-wide mutable default.
type Config struct {
	QuoteMode quote.Mode
	QuoteKind quote.Kind
}

// DefaultConfig returns the conventional policy: quote only reserved words,
// using double quotes.
func DefaultConfig() Config {
	return Config{QuoteMode: quote.ModeKeywordsOnly, QuoteKind: quote.KindDoubleQuote}
}

// Quote applies the configured policy to an identifier.
func (c Config) Quote(name string) string {
	return quote.Quote(name, c.QuoteMode, c.QuoteKind)
}
