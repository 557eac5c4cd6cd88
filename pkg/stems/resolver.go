package stems

import "go.uber.org/zap"

// Resolver rewrites verb stems to dictionary forms using a precomputed godan
// table and ichidan list. Either may be nil.
type Resolver struct {
	godan   *Table
	ichidan *List
	logger  *zap.Logger
}

// NewResolver creates a resolver.
func NewResolver(godan *Table, ichidan *List, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{godan: godan, ichidan: ichidan, logger: logger}
}

// Resolve returns the dictionary form of word if it is a known stem, or word
// itself. A godan-shaped word missing from the table is logged and then
// checked against the ichidan list.
func (r *Resolver) Resolve(word string) string {
	if r.godan != nil && IsGodanCandidate(word) {
		if form, ok := r.godan.Lookup(word); ok {
			return form
		}
		r.logger.Warn("dictionary form not found for stem", zap.String("stem", word))
	}
	if r.ichidan != nil && r.ichidan.Contains(word) {
		return word + "る"
	}
	return word
}

// ResolveAll applies Resolve to every word.
func (r *Resolver) ResolveAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = r.Resolve(w)
	}
	return out
}
