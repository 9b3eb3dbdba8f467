// Package testutil provides shared helpers for building small
// Wiktionary dump fixtures in tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// WriteDumpFile writes a dump fixture to a temp file and returns its
// path.
func WriteDumpFile(t *testing.T, pages ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dump.xml")
	CreateTestFile(t, path, []byte(BuildDumpXML(pages...)))
	return path
}

// BuildDumpXML wraps page fragments into a minimal MediaWiki export
// document.
func BuildDumpXML(pages ...string) string {
	var b strings.Builder
	b.WriteString(`<mediawiki xmlns="http://www.mediawiki.org/xml/export-0.10/">` + "\n")
	for _, p := range pages {
		b.WriteString(p)
		b.WriteString("\n")
	}
	b.WriteString("</mediawiki>\n")
	return b.String()
}

// PageXML builds one <page> fragment with the given title and wiki
// text.
func PageXML(title, text string) string {
	return fmt.Sprintf("<page><title>%s</title><revision><text>%s</text></revision></page>",
		escapeXML(title), escapeXML(text))
}

// LoanwordBody builds the wiki text of a German loanword entry. origin
// is the dative language name used in the category, e.g. "Lateinischen".
// An empty ipa omits the Lautschrift template.
func LoanwordBody(title, origin, ipa string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ({{Sprache|Deutsch}}) ==\n", title)
	b.WriteString("=== {{Wortart|Substantiv|Deutsch}} ===\n\n")
	b.WriteString("{{Aussprache}}\n")
	if ipa != "" {
		fmt.Fprintf(&b, ":{{IPA}} {{Lautschrift|%s}}\n", ipa)
	}
	b.WriteString("\n{{Bedeutungen}}\n:[1] something borrowed\n\n")
	fmt.Fprintf(&b, "[[Kategorie:Entlehnung aus dem %s (Deutsch)]]\n", origin)
	return b.String()
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
