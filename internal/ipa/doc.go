// Package ipa decodes phonetic-notation text written in the International
// Phonetic Alphabet into sound descriptors. It recognizes a closed set of
// vowel and consonant symbols plus the length and palatalization modifiers,
// and reports a positional error for anything outside that set.
package ipa
