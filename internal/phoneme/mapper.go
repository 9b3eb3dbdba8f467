package phoneme

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Policy decides what happens to IPA symbols without a table entry.
// With PolicyDrop the symbol is left out of the encoding, with
// PolicyPlaceholder it is replaced by PlaceholderMark so the encoding
// length stays predictable. Either way the symbol is reported in
// Result.Unmapped.
type Policy int

const (
	PolicyDrop Policy = iota
	PolicyPlaceholder
)

// UnmappablePolicy is the policy applied by all mappers.
const UnmappablePolicy = PolicyDrop

// PlaceholderMark substitutes an unmappable symbol under
// PolicyPlaceholder.
const PlaceholderMark = "_"

// ipaCorrections rewrites Wiktionary notation quirks before the table
// lookup: optional segments in parentheses, deprecated length marks
// and stray diacritics that the table does not carry.
var ipaCorrections = strings.NewReplacer(
	"(ː)", "ː",
	"(r)", "r",
	"(ə)", "ə",
	"õ", "ɔ̃", // precomposed o-tilde stands for the nasal open o
	"y̑", "y",
	"i̊", "i",
	"e̝", "e",
	"r̺", "r",
	"ˑ", "ː",
	"-", "",
	"‿", " ",
)

// espeakCorrections cleans up the assembled encoding. Doubled length
// marks appear when a corrected length mark follows an already long
// vowel.
var espeakCorrections = strings.NewReplacer(
	"::", ":",
)

// Result is the outcome of mapping one IPA transcription.
type Result struct {
	Phonemes string   // espeak-ng encoding assembled from mapped symbols
	Unmapped []string // distinct unknown symbols, in first-seen order
	HadIPA   bool     // false if there was no transcription to map
}

// Mapper converts IPA strings into espeak-ng phonemic encodings.
type Mapper struct {
	table  map[string]string
	maxLen int
	pre    []*strings.Replacer
}

// New creates a Mapper using the built-in symbol table.
func New() *Mapper {
	return NewWithCorrections(nil)
}

// NewWithCorrections creates a Mapper whose pre-mapping correction
// pass is extended by additional from/to pairs. Extra pairs are
// applied before the built-in ones.
func NewWithCorrections(extra [][2]string) *Mapper {
	// Table keys are canonicalized the same way the input is, so a
	// precomposed source symbol matches no matter how it was written.
	table := make(map[string]string, len(kirshenbaum))
	for symbol, mapped := range kirshenbaum {
		table[norm.NFC.String(symbol)] = mapped
	}
	m := &Mapper{table: table}

	if len(extra) > 0 {
		pairs := make([]string, 0, len(extra)*2)
		for _, p := range extra {
			pairs = append(pairs, p[0], p[1])
		}
		m.pre = append(m.pre, strings.NewReplacer(pairs...))
	}
	m.pre = append(m.pre, ipaCorrections)

	for symbol := range m.table {
		if n := len([]rune(symbol)); n > m.maxLen {
			m.maxLen = n
		}
	}
	return m
}

// Map converts a single IPA transcription. An empty input yields an
// empty encoding with HadIPA set to false; this is not an error.
func (m *Mapper) Map(ipa string) Result {
	if ipa == "" {
		return Result{}
	}

	normalized := norm.NFC.String(ipa)
	for _, r := range m.pre {
		normalized = r.Replace(normalized)
	}
	runes := []rune(normalized)

	var (
		out      strings.Builder
		unmapped []string
		seen     = map[string]bool{}
	)

	for i := 0; i < len(runes); {
		mapped, width := m.lookup(runes[i:])
		if width == 0 {
			// no table entry, not even for the single rune
			symbol := string(runes[i])
			if !seen[symbol] {
				seen[symbol] = true
				unmapped = append(unmapped, symbol)
			}
			if UnmappablePolicy == PolicyPlaceholder {
				out.WriteString(PlaceholderMark)
			}
			i++
			continue
		}
		out.WriteString(mapped)
		i += width
	}

	return Result{
		Phonemes: espeakCorrections.Replace(out.String()),
		Unmapped: unmapped,
		HadIPA:   true,
	}
}

// lookup finds the longest table entry prefixing runes. It returns the
// mapping and its width in runes; a width of zero means no entry
// matched.
func (m *Mapper) lookup(runes []rune) (string, int) {
	max := m.maxLen
	if len(runes) < max {
		max = len(runes)
	}
	for width := max; width > 0; width-- {
		if mapped, ok := m.table[string(runes[:width])]; ok {
			return mapped, width
		}
	}
	return "", 0
}
