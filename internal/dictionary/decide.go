package dictionary

import (
	"strings"

	"github.com/repodiac/espeak-ng-german-loan-words/internal/espeak"
	"github.com/repodiac/espeak-ng-german-loan-words/internal/phoneme"
)

// maxWords is the espeak-ng limit on words per dictionary entry.
const maxWords = 4

// Decide builds the output record for one mapped candidate.
//
// The label is lowercased because espeak-ng only imports lowercase
// terms without extra capitalization flags. Multiword labels are
// wrapped in parentheses as the compiler requires; labels longer than
// maxWords words cannot be represented at all and are excluded.
func Decide(label, origin, ipa string, res phoneme.Result) Record {
	label = strings.ToLower(strings.TrimSpace(label))
	words := strings.Fields(label)

	rec := Record{
		Label:    label,
		Origin:   origin,
		IPA:      ipa,
		Phonemes: res.Phonemes,
		Unmapped: res.Unmapped,
	}

	if len(words) > maxWords {
		rec.Status = StatusExcluded
		rec.Reason = ReasonMalformed
		return rec
	}
	if len(words) > 1 {
		rec.Label = "(" + label + ")"
	}

	if !res.HadIPA {
		rec.Status = StatusExcluded
		rec.Reason = ReasonNoIPA
		return rec
	}

	if res.Phonemes == "" {
		rec.Status = StatusExcluded
		if len(res.Unmapped) > 0 {
			rec.Reason = ReasonUnmappable
		} else {
			rec.Reason = ReasonEmptyEncoding
		}
		return rec
	}

	if !espeak.ValidPhonemes(res.Phonemes) {
		rec.Status = StatusExcluded
		rec.Reason = ReasonMalformed
		return rec
	}

	rec.Status = StatusIncluded
	if len(res.Unmapped) > 0 {
		// emitted anyway, but flagged for manual review
		rec.Reason = ReasonUnmappable
	}
	return rec
}
