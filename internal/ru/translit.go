package ru

import "github.com/miralushch/ipa2ru/internal/ipa"

// Transliterate converts phonetic-notation text into Cyrillic text: the
// input is decoded by the ipa package, reduced to a phoneme sequence and
// rendered. Parse and reduction errors are returned unchanged.
func Transliterate(text string) (string, error) {
	sounds, err := ipa.Parse(text)
	if err != nil {
		return "", err
	}

	seq, err := Reduce(sounds)
	if err != nil {
		return "", err
	}

	return seq.String(), nil
}
