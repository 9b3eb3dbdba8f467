package espeak

import (
	"fmt"
	"strings"
)

// phonemePunct lists the non-alphanumeric characters that may appear
// in an espeak-ng phoneme string: stress marks, length marks, the
// glottal stop, nasalization, palatalization and the word gap.
const phonemePunct = `@:',~?&^"*|;`

// ValidatePhonemes checks that a phoneme string satisfies the lexical
// constraints of the espeak-ng dictionary compiler.
func ValidatePhonemes(phonemes string) error {
	if strings.TrimSpace(phonemes) == "" {
		return fmt.Errorf("phoneme string cannot be empty")
	}

	for _, r := range phonemes {
		if isPhonemeRune(r) {
			continue
		}
		return fmt.Errorf("disallowed character %q in phoneme string", r)
	}

	return nil
}

// ValidPhonemes reports whether phonemes would be accepted by the
// dictionary compiler.
func ValidPhonemes(phonemes string) bool {
	return ValidatePhonemes(phonemes) == nil
}

func isPhonemeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune(phonemePunct, r)
}
