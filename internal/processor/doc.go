// Package processor contains the core pipeline of the loanwords tool.
// It streams pages from the Wiktionary dump, filters loanword entries,
// maps their IPA transcriptions to espeak-ng encodings and hands the
// outcome to the dictionary generator. This package serves as the main
// coordinator between all other components.
package processor
