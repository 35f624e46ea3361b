// Package validation holds the local heuristic that decides whether free
// text reads like a team decision. It backs the remote validator when that
// service is unreachable and can be used on its own.
package validation

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

var _ ports.TextValidator = (*Heuristic)(nil)

// Defaults used when a Heuristic field is zero.
const (
	DefaultMinWords      = 3
	DefaultMinAlphaRatio = 0.6
)

// Reasons returned by the heuristic.
const (
	ReasonEmpty        = "Decision text is empty"
	ReasonTooManyNoise = "Text contains too many non-alphabetic characters"
	ReasonKeywords     = "Contains decision-related keywords"
	ReasonBasic        = "Passes basic validation checks"
)

// Keywords that mark text as a decision. Multi-word entries match as phrases.
var Keywords = []string{
	"use", "adopt", "switch", "choose", "decide", "implement", "deploy",
	"move", "change", "upgrade", "select", "go with", "will", "should",
	"agreed", "approve",
}

// Heuristic is a ports.TextValidator that never fails.
type Heuristic struct {
	MinWords      int
	MinAlphaRatio float64
}

// NewHeuristic returns a Heuristic, substituting defaults for non-positive
// arguments.
func NewHeuristic(minWords int, minAlphaRatio float64) *Heuristic {
	if minWords <= 0 {
		minWords = DefaultMinWords
	}
	if minAlphaRatio <= 0 {
		minAlphaRatio = DefaultMinAlphaRatio
	}
	return &Heuristic{MinWords: minWords, MinAlphaRatio: minAlphaRatio}
}

// Validate implements ports.TextValidator. The error is always nil.
func (h *Heuristic) Validate(_ context.Context, text string) (ports.ValidResult, error) {
	return h.Check(text), nil
}

// Check runs the rules in order: word count, alphabetic ratio, keywords.
func (h *Heuristic) Check(text string) ports.ValidResult {
	text = strings.TrimSpace(text)
	if text == "" {
		return ports.ValidResult{Valid: false, Reason: ReasonEmpty}
	}

	words := strings.Fields(text)
	if len(words) < h.minWords() {
		return ports.ValidResult{
			Valid:  false,
			Reason: fmt.Sprintf("Decision is too short (minimum %d words required)", h.minWords()),
		}
	}

	if alphaRatio(text) < h.minAlphaRatio() {
		return ports.ValidResult{Valid: false, Reason: ReasonTooManyNoise}
	}

	if hasKeyword(words) {
		return ports.ValidResult{Valid: true, Reason: ReasonKeywords}
	}
	return ports.ValidResult{Valid: true, Reason: ReasonBasic}
}

func (h *Heuristic) minWords() int {
	if h.MinWords <= 0 {
		return DefaultMinWords
	}
	return h.MinWords
}

func (h *Heuristic) minAlphaRatio() float64 {
	if h.MinAlphaRatio <= 0 {
		return DefaultMinAlphaRatio
	}
	return h.MinAlphaRatio
}

// alphaRatio is the share of runes that are letters or spaces.
func alphaRatio(text string) float64 {
	var total, alpha int
	for _, r := range text {
		total++
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			alpha++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(alpha) / float64(total)
}

// hasKeyword matches keywords against whole words so "user" does not count
// as "use".
func hasKeyword(words []string) bool {
	normalized := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimFunc(w, func(r rune) bool { return !unicode.IsLetter(r) }))
		if w != "" {
			normalized = append(normalized, w)
		}
	}
	joined := " " + strings.Join(normalized, " ") + " "

	for _, kw := range Keywords {
		if strings.Contains(joined, " "+kw+" ") {
			return true
		}
	}
	return false
}
