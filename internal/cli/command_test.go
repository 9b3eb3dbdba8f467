package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "loanwords [wiktionary-xml]" {
		t.Errorf("Expected Use to be 'loanwords [wiktionary-xml]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "espeak-ng German Loanword Dictionary Generator") {
		t.Errorf("Expected Short description to contain 'espeak-ng German Loanword Dictionary Generator'")
	}

	if cmd.Version == "" {
		t.Error("Expected Version to be set")
	}

	// Test that flags are set up
	flagTests := []struct {
		name     string
		expected bool
	}{
		{"config", true},
		{"output", true},
		{"dict-name", true},
		{"report-name", true},
		{"ipa-corrections", true},
		{"compile", true},
		{"espeak-binary", true},
		{"archive", true},
		{"quiet", true},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.name == "config" {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil && tt.expected {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	// Test default values
	dictFlag := cmd.Flags().Lookup("dict-name")
	if dictFlag == nil {
		t.Fatal("dict-name flag not found")
	}
	if dictFlag.DefValue != "de_extra" {
		t.Errorf("Expected dict-name default 'de_extra', got %s", dictFlag.DefValue)
	}

	reportFlag := cmd.Flags().Lookup("report-name")
	if reportFlag == nil {
		t.Fatal("report-name flag not found")
	}
	if reportFlag.DefValue != "issue_terms.tab" {
		t.Errorf("Expected report-name default 'issue_terms.tab', got %s", reportFlag.DefValue)
	}
}
