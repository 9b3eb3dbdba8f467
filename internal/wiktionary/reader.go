package wiktionary

import (
	"compress/bzip2"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Page is a single exported page: the title and the raw wiki text of
// its latest revision.
type Page struct {
	Title string
	Text  string
}

// xmlPage mirrors the subset of the MediaWiki export schema we consume.
type xmlPage struct {
	Title string `xml:"title"`
	Text  string `xml:"revision>text"`
}

// DumpReader streams pages from a MediaWiki XML export. It is a
// single-pass, forward-only reader; once Next returns io.EOF the
// stream is exhausted.
type DumpReader struct {
	decoder *xml.Decoder
	pages   int
	skipped int
}

// NewDumpReader creates a DumpReader on top of an already decompressed
// byte stream.
func NewDumpReader(r io.Reader) *DumpReader {
	return &DumpReader{decoder: xml.NewDecoder(r)}
}

// OpenDump opens a dump file for streaming. Files ending in .bz2 are
// decompressed transparently. The returned closer must be closed by
// the caller once the stream has been consumed.
func OpenDump(path string) (*DumpReader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open dump: %w", err)
	}

	var r io.Reader = f
	if strings.HasSuffix(path, ".bz2") {
		r = bzip2.NewReader(f)
	}

	return NewDumpReader(r), f, nil
}

// Next returns the next page of the dump, or io.EOF once the stream is
// exhausted. A malformed page is skipped and counted, it does not end
// the stream. A syntax error in the surrounding document cannot be
// recovered from: the pages read so far stand, the rest of the stream
// is treated as truncated. Only a stream that breaks before the first
// page was produced is reported as an error.
func (d *DumpReader) Next() (*Page, error) {
	for {
		tok, err := d.decoder.Token()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			if d.pages == 0 {
				return nil, fmt.Errorf("dump is not parseable: %w", err)
			}
			d.skipped++
			return nil, io.EOF
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "page" {
			continue
		}

		var p xmlPage
		if err := d.decoder.DecodeElement(&p, &start); err != nil {
			d.skipped++
			continue
		}
		if p.Title == "" {
			d.skipped++
			continue
		}

		d.pages++
		return &Page{Title: p.Title, Text: p.Text}, nil
	}
}

// Pages returns the number of pages produced so far.
func (d *DumpReader) Pages() int {
	return d.pages
}

// Skipped returns the number of malformed or truncated pages that were
// dropped from the stream.
func (d *DumpReader) Skipped() int {
	return d.skipped
}
