package alert

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jamieabc/stream-monitor/fault"
)

// DefaultPhrases - phrases alerted when none configured
var DefaultPhrases = []string{"hyper beam", "evolved"}

type rule struct {
	phrase string
	re     *regexp.Regexp
}

// Scanner - ordered set of keyword rules, immutable after creation
type Scanner struct {
	rules []rule
}

// NewScanner - compile phrases into case-insensitive whole-word rules,
// words of a phrase may be separated by any amount of unicode whitespace
func NewScanner(phrases []string) (*Scanner, error) {
	rules := make([]rule, 0, len(phrases))

	for _, p := range phrases {
		re, err := compile(p)
		if nil != err {
			return nil, err
		}
		rules = append(rules, rule{phrase: p, re: re})
	}

	return &Scanner{rules: rules}, nil
}

const (
	wordClass  = `\p{L}\p{N}_`
	spaceClass = `[\s\p{Z}]*`
)

func compile(phrase string) (*regexp.Regexp, error) {
	words := strings.Fields(phrase)
	if 0 == len(words) {
		return nil, fmt.Errorf("phrase %q: %w", phrase, fault.ErrInvalidPattern)
	}

	first, _ := utf8.DecodeRuneInString(words[0])
	last, _ := utf8.DecodeLastRuneInString(words[len(words)-1])

	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}

	// boundaries only at edges made of word characters, so "c++" still
	// matches before a space or at the end
	expr := `(?i)`
	if isWord(first) {
		expr += `(?:^|[^` + wordClass + `])`
	}
	expr += strings.Join(words, spaceClass)
	if isWord(last) {
		expr += `(?:[^` + wordClass + `]|$)`
	}

	return regexp.Compile(expr)
}

func isWord(r rune) bool {
	return '_' == r || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Scan - true if any rule matches payload
func (s *Scanner) Scan(payload string) bool {
	_, matched := s.Match(payload)
	return matched
}

// Match - first phrase matching payload
func (s *Scanner) Match(payload string) (string, bool) {
	for _, r := range s.rules {
		if r.re.MatchString(payload) {
			return r.phrase, true
		}
	}
	return "", false
}

// Enabled - false when scanner has no rules
func (s *Scanner) Enabled() bool {
	return 0 < len(s.rules)
}

// Phrases - configured phrases in order
func (s *Scanner) Phrases() []string {
	phrases := make([]string, len(s.rules))
	for i, r := range s.rules {
		phrases[i] = r.phrase
	}
	return phrases
}
