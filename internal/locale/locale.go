// Package locale provides the display-language signal used by the word
// and letter families, plus the small prompt and word catalogues they
// draw from.
package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

// Signal reports the current display language. Generators query it at
// call time and never cache the result.
type Signal interface {
	Language() language.Tag
}

// Supported lists the languages with prompt and word catalogues, in
// matcher preference order.
var Supported = []language.Tag{
	language.English,
	language.German,
	language.Spanish,
}

var matcher = language.NewMatcher(Supported)

// Resolve maps any BCP 47 tag onto a supported language, falling back to
// English for anything the matcher cannot place.
func Resolve(tag language.Tag) language.Tag {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.English
	}
	return Supported[idx]
}

// Code returns the two-letter base code for tag ("en", "de", "es").
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// Service is a switchable language signal.
type Service struct {
	current language.Tag
}

// NewService creates a Service using the given initial language.
func NewService(initial language.Tag) *Service {
	return &Service{current: Resolve(initial)}
}

// Language implements Signal.
func (s *Service) Language() language.Tag {
	return s.current
}

// SetLanguage parses and resolves a BCP 47 string such as "de-AT".
func (s *Service) SetLanguage(tag string) error {
	t, err := language.Parse(tag)
	if err != nil {
		return fmt.Errorf("parse language %q: %w", tag, err)
	}
	s.current = Resolve(t)
	return nil
}

// Fixed is a Signal that always reports the same language.
type Fixed language.Tag

// Language implements Signal.
func (f Fixed) Language() language.Tag {
	return language.Tag(f)
}
