package service

import (
	"strings"

	"studyenglish/internal/localdict"
	"studyenglish/internal/render"
	"studyenglish/internal/ui"

	"go.uber.org/zap"
)

// LocalService handles lookups in the built-in demo dictionaries
type LocalService struct {
	logger *zap.Logger
}

// NewLocalService creates a new local dictionary service
func NewLocalService(logger *zap.Logger) *LocalService {
	return &LocalService{logger: logger}
}

// Lookup renders the result of looking word up in dict. It never blocks.
func (s *LocalService) Lookup(dict *localdict.Dictionary, kind render.LocalKind, word string, region ui.Region) {
	region.Replace(LookupLocal(dict, kind, word))
	s.logger.Debug("Local lookup", zap.String("dictionary", dict.Name()), zap.String("word", word))
}

// LookupLocal renders a prompt for blank input, the mapped value on a
// hit, and a not-found message quoting word as typed on a miss.
func LookupLocal(dict *localdict.Dictionary, kind render.LocalKind, word string) render.Fragment {
	if strings.TrimSpace(word) == "" {
		return render.LocalPrompt(kind)
	}
	if value, ok := dict.Lookup(word); ok {
		return render.LocalHit(kind, value)
	}
	return render.LocalMiss(word)
}
