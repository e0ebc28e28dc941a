package alert_test

import (
	"errors"
	"testing"

	"github.com/jamieabc/stream-monitor/alert"
	"github.com/jamieabc/stream-monitor/fault"
	"github.com/stretchr/testify/assert"
)

func setupDefaultScanner(t *testing.T) *alert.Scanner {
	s, err := alert.NewScanner(alert.DefaultPhrases)
	assert.Nil(t, err, "wrong error")
	return s
}

func TestNewScannerWhenBlankPhrase(t *testing.T) {
	_, err := alert.NewScanner([]string{"evolved", "   "})
	assert.True(t, errors.Is(err, fault.ErrInvalidPattern), "wrong error")
}

func TestScanWhenEmptyPayload(t *testing.T) {
	s := setupDefaultScanner(t)
	assert.False(t, s.Scan(""), "empty payload matched")
}

func TestScanWhenWhitespaceVariation(t *testing.T) {
	s := setupDefaultScanner(t)

	payloads := []string{
		"Trainer battled Mewtwo using Hyper Beam. Outcome: epic.",
		"Trainer battled Mewtwo using HyperBeam. Outcome: epic.",
		"Trainer battled Mewtwo using hyper   beam. Outcome: epic.",
		"Trainer battled Mewtwo using HYPER\tBEAM",
	}

	for _, p := range payloads {
		assert.True(t, s.Scan(p), "not matched: %s", p)
	}
}

func TestScanWhenWordBoundary(t *testing.T) {
	s := setupDefaultScanner(t)

	assert.False(t, s.Scan("used hyperbeamx"), "matched inside larger word")
	assert.False(t, s.Scan("superhyper beam"), "matched inside larger word")
	assert.False(t, s.Scan("unevolvedness"), "matched inside larger word")
	assert.True(t, s.Scan("(evolved)"), "not matched between punctuation")
}

func TestScanWhenEvolved(t *testing.T) {
	s := setupDefaultScanner(t)

	assert.True(t, s.Scan("Trainer evolved Eevee using Psychic. Outcome: epic."), "wrong scan")
	assert.False(t, s.Scan("Trainer battled Snorlax using Sing. Outcome: tough."), "wrong scan")
}

func TestScanIsRepeatable(t *testing.T) {
	s := setupDefaultScanner(t)
	payload := "Trainer EVOLVED Pikachu"

	for i := 0; i < 5; i++ {
		assert.True(t, s.Scan(payload), "wrong scan")
	}
}

func TestMatch(t *testing.T) {
	s := setupDefaultScanner(t)

	phrase, ok := s.Match("Trainer evolved Gengar using Hyper Beam.")
	assert.True(t, ok, "wrong match")
	assert.Equal(t, "hyper beam", phrase, "wrong matched phrase order")
}

func TestScanWhenSpecialCharacters(t *testing.T) {
	s, err := alert.NewScanner([]string{"c++ crash"})
	assert.Nil(t, err, "wrong error")

	assert.True(t, s.Scan("c++crash"), "wrong scan")
	assert.False(t, s.Scan("cccrash"), "regexp meta not quoted")
}

func TestEnabled(t *testing.T) {
	empty, _ := alert.NewScanner(nil)
	assert.False(t, empty.Enabled(), "wrong enabled")
	assert.False(t, empty.Scan("evolved"), "empty scanner matched")

	assert.True(t, setupDefaultScanner(t).Enabled(), "wrong enabled")
}

func TestPhrases(t *testing.T) {
	s := setupDefaultScanner(t)
	assert.Equal(t, []string{"hyper beam", "evolved"}, s.Phrases(), "wrong phrases")
}

func TestScanWhenUnicodeWordBoundary(t *testing.T) {
	s := setupDefaultScanner(t)

	assert.False(t, s.Scan("ñevolved"), "matched after non-ascii letter")
	assert.False(t, s.Scan("evolvedé"), "matched before non-ascii letter")
	assert.False(t, s.Scan("Pokémon_evolved"), "matched after underscore")
	assert.True(t, s.Scan("Évoli evolved!"), "not matched after non-ascii word")
	assert.True(t, s.Scan("EVOLVED"), "not matched whole payload")
}

func TestScanWhenUnicodeWhitespace(t *testing.T) {
	s := setupDefaultScanner(t)

	assert.True(t, s.Scan("using Hyper\u00a0Beam."), "not matched with no-break space")
	assert.True(t, s.Scan("using hyper\u2003beam"), "not matched with em space")
}

func TestScanWhenPhraseEdgeNotWord(t *testing.T) {
	s, err := alert.NewScanner([]string{"c++", "#urgent"})
	assert.Nil(t, err, "wrong error")

	assert.True(t, s.Scan("I love c++"), "not matched at end")
	assert.True(t, s.Scan("I love c++ now"), "not matched before space")
	assert.True(t, s.Scan("flagged #urgent"), "not matched after space")
	assert.True(t, s.Scan("flagged#urgent"), "non-word edge should not need boundary")
	assert.False(t, s.Scan("abc++"), "matched inside larger word")
	assert.False(t, s.Scan("#urgently"), "matched inside larger word")
}
