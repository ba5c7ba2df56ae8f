package rewrite

import (
	"regexp"
)

// Pattern is a text substitution rule applied to the first match only.
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern compiles expr. It panics on an invalid expression, so it is
// meant for package-level rules.
func NewPattern(expr string) *Pattern {
	return &Pattern{re: regexp.MustCompile(expr)}
}

// ReplaceFirst replaces the first match in text with the result of repl,
// which receives the full match followed by its submatches. It reports
// whether a match was found; without one text is returned unchanged.
func (p *Pattern) ReplaceFirst(text string, repl func(groups []string) string) (string, bool) {
	loc := p.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return text, false
	}
	groups := make([]string, len(loc)/2)
	for i := range groups {
		if loc[2*i] >= 0 {
			groups[i] = text[loc[2*i]:loc[2*i+1]]
		}
	}
	return text[:loc[0]] + repl(groups) + text[loc[1]:], true
}

// Matches reports whether text contains a match.
func (p *Pattern) Matches(text string) bool {
	return p.re.MatchString(text)
}
