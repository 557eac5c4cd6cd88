package stems

import "go.uber.org/zap"

// progressEvery is how often the builders report progress.
const progressEvery = 500

// BuildGodanTable resolves every godan-shaped word against lex. Words that
// do not resolve are left out.
func BuildGodanTable(lex Lexicon, words []string, logger *zap.Logger) (*Table, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := NewTable()
	for i, w := range words {
		if i%progressEvery == 0 {
			logger.Info("godan stems progress", zap.Int("processed", i), zap.Int("found", t.Len()))
		}
		if !IsGodanCandidate(w) {
			continue
		}
		form, ok, err := ResolveGodan(lex, w)
		if err != nil {
			return nil, err
		}
		if ok && t.Add(w, form) {
			logger.Debug("godan stem", zap.String("stem", w), zap.String("form", form))
		}
	}
	logger.Info("godan stems done", zap.Int("words", len(words)), zap.Int("stems", t.Len()))
	return t, nil
}

// BuildIchidanList collects every word that is the stem of an ichidan verb
// in lex.
func BuildIchidanList(lex Lexicon, words []string, logger *zap.Logger) (*List, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := NewList()
	for i, w := range words {
		if i%progressEvery == 0 {
			logger.Info("ichidan stems progress", zap.Int("processed", i), zap.Int("found", l.Len()))
		}
		ok, err := ResolveIchidan(lex, w)
		if err != nil {
			return nil, err
		}
		if ok {
			l.Add(w)
		}
	}
	logger.Info("ichidan stems done", zap.Int("words", len(words)), zap.Int("stems", l.Len()))
	return l, nil
}
