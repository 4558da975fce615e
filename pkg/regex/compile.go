package regex

import (
	"strconv"

	"github.com/dlclark/regexp2"
)

func Compile(pattern string) (*Pattern, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, err
	}

	return &Pattern{
		Expression: re,
	}, nil
}

// CompileDotAll compiles with Multiline and Singleline set, so "^"/"$"
// anchor per line while "." also matches newlines. Structured blocks in
// simulation output frequently wrap across lines, so every extraction
// pattern is compiled this way.
func CompileDotAll(pattern string) (*Pattern, error) {
	re, err := regexp2.Compile(pattern, regexp2.Multiline|regexp2.Singleline)
	if err != nil {
		return nil, err
	}

	return &Pattern{
		Expression: re,
	}, nil
}

func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if _, err := Compile(pattern); err != nil {
			return err
		}
	}
	return nil
}

// Matches returns every non-overlapping match in order of appearance.
func (p *Pattern) Matches(text string) ([]*regexp2.Match, error) {
	var matches []*regexp2.Match

	m, err := p.Expression.FindStringMatch(text)
	for m != nil && err == nil {
		matches = append(matches, m)
		m, err = p.Expression.FindNextMatch(m)
	}
	if err != nil {
		return nil, err
	}

	return matches, nil
}

// NamedGroups returns the explicitly named capture groups of the pattern.
// Unnamed groups carry numeric auto-assigned names and are excluded.
func (p *Pattern) NamedGroups() []string {
	var names []string
	for _, name := range p.Expression.GetGroupNames() {
		if _, err := strconv.Atoi(name); err == nil {
			continue
		}
		names = append(names, name)
	}
	return names
}
