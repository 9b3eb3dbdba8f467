package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	InputFile  string
	OutputDir  string
	DictName   string
	ReportName string
	Archive    bool
	Quiet      bool

	// Phoneme mapping flags
	CorrectionsFile string

	// espeak-ng flags
	Compile      bool
	ESpeakBinary string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		DictName:     "de_extra",
		ReportName:   "issue_terms.tab",
		ESpeakBinary: "espeak-ng",
	}
}
