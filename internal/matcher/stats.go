package matcher

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minTextLength = 10
	minWordCount  = 3
)

var contactRe = regexp.MustCompile(`[^@]+@[^@]+\.[^@]+`)

// TextStats describes a document before and after cleaning. Returned to the
// caller for transparency; it plays no part in scoring.
type TextStats struct {
	OriginalLength    int     `json:"original_length"`
	CleanedLength     int     `json:"cleaned_length"`
	WordCount         int     `json:"word_count"`
	AverageWordLength float64 `json:"average_word_length"`
	UniqueWords       int     `json:"unique_words"`
	HasContactInfo    bool    `json:"has_contact_info"`
	HasPhone          bool    `json:"has_phone"`
}

// Stats computes document statistics from the raw text.
func Stats(text string) TextStats {
	cleaned := Clean(text)
	words := strings.Fields(cleaned)

	unique := make(map[string]struct{}, len(words))
	totalLen := 0
	for _, w := range words {
		unique[w] = struct{}{}
		totalLen += len(w)
	}

	avgLen := 0.0
	if len(words) > 0 {
		avgLen = float64(totalLen) / float64(len(words))
	}

	return TextStats{
		OriginalLength:    len(text),
		CleanedLength:     len(cleaned),
		WordCount:         len(words),
		AverageWordLength: avgLen,
		UniqueWords:       len(unique),
		HasContactInfo:    contactRe.MatchString(text),
		HasPhone:          phoneRe.MatchString(text),
	}
}

// ValidateText rejects documents too short to score meaningfully. This is
// caller-level validation: the scoring engine itself never fails on
// well-formed text.
func ValidateText(text string) error {
	cleaned := Clean(text)

	if len(cleaned) < minTextLength {
		return fmt.Errorf("text too short, minimum %d characters required", minTextLength)
	}

	if len(strings.Fields(cleaned)) < minWordCount {
		return fmt.Errorf("text contains too few words")
	}

	return nil
}
