package dictionary

// Status marks whether an entry made it into the import file.
type Status string

const (
	StatusIncluded Status = "INCLUDED"
	StatusExcluded Status = "EXCLUDED"
)

// Reason explains an exclusion, or flags an included entry that needs
// manual review. ReasonNone marks a clean inclusion.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonNoIPA         Reason = "NO_IPA_AVAILABLE"
	ReasonUnmappable    Reason = "UNMAPPABLE_SYMBOLS"
	ReasonEmptyEncoding Reason = "EMPTY_ENCODING"
	ReasonMalformed     Reason = "MALFORMED_FOR_TARGET"
)

// Record is the final outcome for one loanword candidate. Every
// candidate yields exactly one record, included or not.
type Record struct {
	Label    string   // entry label in import-file form (lowercased, multiword in parentheses)
	Origin   string   // language the word was borrowed from
	IPA      string   // transcription as found in the dump, empty if none
	Phonemes string   // espeak-ng encoding, empty if none survived mapping
	Unmapped []string // IPA symbols without a table entry
	Status   Status
	Reason   Reason
}

// Flagged reports whether the record is included but needs manual
// review before being trusted.
func (r Record) Flagged() bool {
	return r.Status == StatusIncluded && r.Reason != ReasonNone
}
