// Package wiktionary streams pages out of a MediaWiki XML export and
// extracts German loanword entries with their IPA transcription. The
// dump is consumed in a single pass, one page at a time, so arbitrarily
// large exports can be processed in constant memory.
package wiktionary
