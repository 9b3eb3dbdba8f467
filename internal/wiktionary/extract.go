package wiktionary

import (
	"regexp"
	"strings"
)

// Markers used by the German Wiktionary to structure its entries.
var (
	reLoanCategory = regexp.MustCompile(`\[\[Kategorie:Entlehnung aus dem (.+?) \(Deutsch\)\]\]`)
	rePronSection  = regexp.MustCompile(`\{\{Aussprache\}\}`)
	reLangHeading  = regexp.MustCompile(`(?m)^==[^=\n]*\(\{\{Sprache\|([^}|]+)\}\}\)[^=\n]*==$`)
)

// ipaMarker introduces the phonetic transcription inside the
// Aussprache section, e.g. ":{{IPA}} {{Lautschrift|ˈʃtʁaːsə}}".
const ipaMarker = ":{{IPA}} {{Lautschrift|"

// Candidate is a German loanword entry extracted from a page.
type Candidate struct {
	Label  string // page title, verbatim
	Origin string // language the word was borrowed from, lowercased
	IPA    string // first transcription found on the page
	HasIPA bool
}

// Section is one language section of a page body.
type Section struct {
	Language string
	Body     string
}

// Sections splits the wiki text of a page into its language sections.
// Text before the first language heading belongs to no section and is
// dropped. A page without language headings yields a single section
// with an empty language name covering the whole text.
func Sections(text string) []Section {
	locs := reLangHeading.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return []Section{{Language: "", Body: text}}
	}

	sections := make([]Section, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		sections = append(sections, Section{
			Language: text[loc[2]:loc[3]],
			Body:     text[loc[1]:end],
		})
	}
	return sections
}

// germanSection returns the body of the Deutsch section of the page,
// or the whole text if the page carries no language headings at all.
func germanSection(text string) (string, bool) {
	sections := Sections(text)
	for _, s := range sections {
		if s.Language == "Deutsch" || s.Language == "" {
			return s.Body, true
		}
	}
	return "", false
}

// ExtractLoanword inspects a page and returns its loanword candidate,
// or nil if the page is not a German loanword entry. Qualification is
// membership in an "Entlehnung aus dem ... (Deutsch)" category within
// the German language section. The IPA transcription is optional; only
// the first occurrence is taken. An empty Lautschrift template counts
// as no transcription.
func ExtractLoanword(page *Page) *Candidate {
	if page == nil || page.Title == "" || page.Text == "" {
		return nil
	}

	body, ok := germanSection(page.Text)
	if !ok {
		return nil
	}

	m := reLoanCategory.FindStringSubmatch(body)
	if m == nil {
		return nil
	}

	c := &Candidate{
		Label:  page.Title,
		Origin: originLanguage(m[1]),
	}

	if rePronSection.MatchString(body) {
		if ipa, found := extractIPA(body); found {
			c.IPA = ipa
			c.HasIPA = true
		}
	}

	return c
}

// originLanguage turns the category capture into a plain language
// name: the dative form loses its "en" suffix ("Französischen" becomes
// "französisch") and the result is lowercased.
func originLanguage(capture string) string {
	runes := []rune(capture)
	if len(runes) > 2 {
		runes = runes[:len(runes)-2]
	}
	return strings.ToLower(string(runes))
}

// extractIPA returns the first Lautschrift value of the body.
func extractIPA(body string) (string, bool) {
	start := strings.Index(body, ipaMarker)
	if start < 0 {
		return "", false
	}
	start += len(ipaMarker)

	end := strings.Index(body[start:], "}}")
	if end < 0 {
		return "", false
	}

	ipa := body[start : start+end]
	if ipa == "" {
		return "", false
	}
	return ipa, true
}
