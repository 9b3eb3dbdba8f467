// Package phoneme converts IPA transcriptions into espeak-ng phonemic
// encodings. The conversion is driven by a versioned symbol table that
// maps each IPA symbol, longest match first, onto a Kirshenbaum-style
// ASCII mnemonic. Symbols without a table entry are reported back to
// the caller instead of failing the conversion.
package phoneme
