// Package cnn runs the per-language convolutional glyph classifiers.
// Each supported script has its own trained network topology and label
// space; both hide behind the Classifier interface so callers dispatch
// purely on language.
package cnn

import (
	"errors"
	"fmt"
)

// Language selects a script-specific classifier and label space.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageNepali  Language = "nepali"
)

// ErrUnknownLanguage marks a language string outside the supported set.
var ErrUnknownLanguage = errors.New("unsupported language")

// ParseLanguage validates a wire-level language string.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageEnglish, LanguageNepali:
		return Language(s), nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownLanguage, s)
}

// englishLabels is the 26-class EMNIST letter space: index i maps to the
// i-th lowercase Latin letter.
var englishLabels = func() []string {
	labels := make([]string, 26)
	for i := range labels {
		labels[i] = string(rune('a' + i))
	}
	return labels
}()

// nepaliLabels is the 46-class Devanagari space used at training time:
// 36 consonant/base forms followed by the ten decimal digits. The order
// is fixed by the training corpus and must never change.
var nepaliLabels = []string{
	"ka", "kha", "ga", "gha", "kna", "cha", "chha", "ja", "jha", "yna",
	"ta", "tha", "da", "dha", "ana", "taa", "thaa", "daa", "dhaa", "na",
	"pa", "pha", "ba", "bha", "ma", "yaw", "ra", "la", "waw", "sha",
	"shha", "sa", "ha", "ksh", "tra", "gya",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}

// Labels returns the ordered label space for a language. The returned
// slice is shared and must not be mutated.
func Labels(lang Language) []string {
	switch lang {
	case LanguageNepali:
		return nepaliLabels
	default:
		return englishLabels
	}
}
