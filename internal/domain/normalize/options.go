package normalize

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithFoldAccents strips diacritics before the standard pipeline, so
// "Pâtisserie" and "Patisserie" normalize identically. Off by default.
func WithFoldAccents(enabled bool) Option {
	return func(n *Normalizer) {
		n.foldAccents = enabled
	}
}
