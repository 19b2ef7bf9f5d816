package ru

import "strings"

// vowelGlyphs holds the plain and iotated spelling of each vowel.
var vowelGlyphs = map[Vowel]struct{ plain, iotated string }{
	A: {"а", "я"},
	E: {"э", "е"},
	I: {"ы", "и"},
	O: {"о", "ё"},
	U: {"у", "ю"},
}

// consonantGlyphs holds the hard and soft-sign spelling of each consonant.
// W is absent: it renders щ/ш and never takes a soft-sign suffix. C shares
// its spellings with S; the shared entry is deliberate orthographic
// irregularity, not a typo.
var consonantGlyphs = map[Consonant]struct{ hard, soft string }{
	P: {"п", "пь"},
	B: {"б", "бь"},
	F: {"ф", "фь"},
	V: {"в", "вь"},
	K: {"к", "кь"},
	G: {"г", "гь"},
	T: {"т", "ть"},
	D: {"д", "дь"},
	X: {"ж", "жь"},
	S: {"с", "сь"},
	Z: {"з", "зь"},
	L: {"л", "ль"},
	M: {"м", "мь"},
	N: {"н", "нь"},
	R: {"р", "рь"},
	H: {"х", "хь"},
	C: {"с", "сь"},
}

// String renders the sequence as Cyrillic text in a single left-to-right
// pass. The spelling at position i depends only on the phoneme there and on
// its immediate neighbors; all four context predicates are false at the
// sequence boundaries.
func (seq PhonemeSeq) String() string {
	var out strings.Builder

	for i := range seq {
		out.WriteString(seq.renderAt(i))
	}

	return out.String()
}

func (seq PhonemeSeq) renderAt(i int) string {
	switch p := seq[i].(type) {
	case VowelPhoneme:
		if seq.prevPalatalized(i) && !seq.prevIsHardTrigger(i) {
			return vowelGlyphs[p.Vowel].iotated
		}
		return vowelGlyphs[p.Vowel].plain

	case ConsonantPhoneme:
		if p.Consonant == W {
			if p.Palatalized {
				return "щ"
			}
			return "ш"
		}
		if p.Palatalized && !seq.nextIsVowel(i) {
			return consonantGlyphs[p.Consonant].soft
		}
		return consonantGlyphs[p.Consonant].hard

	case PalatalizedOnlyPhoneme:
		switch p.Consonant {
		case J:
			switch {
			case seq.nextIsVowel(i) && seq.prevIsConsonant(i):
				return "ъ"
			case !seq.nextIsVowel(i):
				return "й"
			default:
				// Word-initial or post-vocalic jot before a vowel: the glide
				// is absorbed into the following iotated vowel glyph.
				return ""
			}
		case Q:
			return "ч"
		default:
			panic("ru: unhandled palatalized-only consonant")
		}

	case Separator:
		return " "

	default:
		panic("ru: unhandled phoneme kind")
	}
}

// prevPalatalized reports whether the phoneme before i is a palatalized
// consonant of either kind.
func (seq PhonemeSeq) prevPalatalized(i int) bool {
	if i == 0 {
		return false
	}
	switch p := seq[i-1].(type) {
	case ConsonantPhoneme:
		return p.Palatalized
	case PalatalizedOnlyPhoneme:
		return true
	default:
		return false
	}
}

// prevIsConsonant reports whether the phoneme before i is any consonant.
func (seq PhonemeSeq) prevIsConsonant(i int) bool {
	if i == 0 {
		return false
	}
	switch seq[i-1].(type) {
	case ConsonantPhoneme, PalatalizedOnlyPhoneme:
		return true
	default:
		return false
	}
}

// prevIsHardTrigger reports whether the phoneme before i is palatalized W
// or Q. Those two neighbors suppress vowel iotation even though they are
// palatalized.
func (seq PhonemeSeq) prevIsHardTrigger(i int) bool {
	if i == 0 {
		return false
	}
	switch p := seq[i-1].(type) {
	case ConsonantPhoneme:
		return p.Consonant == W && p.Palatalized
	case PalatalizedOnlyPhoneme:
		return p.Consonant == Q
	default:
		return false
	}
}

// nextIsVowel reports whether the phoneme after i is a vowel.
func (seq PhonemeSeq) nextIsVowel(i int) bool {
	if i == len(seq)-1 {
		return false
	}
	_, ok := seq[i+1].(VowelPhoneme)
	return ok
}
