package anonymize

import "log/slog"

// Option configures a Table call.
type Option func(*config)

type config struct {
	quasi       []string
	categorical map[string]bool
	keep        []string
	sensitive   []string
	k           int
	logger      *slog.Logger
}

func defaultConfig() *config {
	return &config{
		categorical: make(map[string]bool),
		k:           2,
		logger:      slog.Default(),
	}
}

// QuasiIdentifiers marks the columns to generalize. Order is irrelevant.
func QuasiIdentifiers(cols ...string) Option {
	return func(c *config) { c.quasi = append(c.quasi, cols...) }
}

// Categorical tags quasi-identifier columns that must be treated as
// categorical even when their values look numeric.
func Categorical(cols ...string) Option {
	return func(c *config) {
		for _, col := range cols {
			c.categorical[col] = true
		}
	}
}

// Keep lists columns to carry into the output unmodified.
func Keep(cols ...string) Option {
	return func(c *config) { c.keep = append(c.keep, cols...) }
}

// Sensitive lists columns that hold the protected attribute; they are
// left untouched like kept columns but are validated to exist so a typo
// does not silently drop the protection target.
func Sensitive(cols ...string) Option {
	return func(c *config) { c.sensitive = append(c.sensitive, cols...) }
}

// K sets the anonymity threshold.
func K(n int) Option {
	return func(c *config) { c.k = n }
}

// WithLogger routes progress logging to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
