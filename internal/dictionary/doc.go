// Package dictionary decides which mapped loanword entries make it
// into the espeak-ng import file, formats them in the compiler's entry
// syntax and accumulates a per-entry status report. Both output
// artifacts are written from the same accumulated record set so they
// always describe the same entries.
package dictionary
