package ru

import "testing"

func TestRender_PalatalizedConsonantBeforeVowel(t *testing.T) {
	seq := PhonemeSeq{
		ConsonantPhoneme{Consonant: N, Palatalized: true},
		VowelPhoneme{Vowel: A},
	}
	if got := seq.String(); got != "ня" {
		t.Errorf("Expected 'ня', got '%s'", got)
	}
}

func TestRender_HardSign(t *testing.T) {
	seq := PhonemeSeq{
		ConsonantPhoneme{Consonant: P},
		VowelPhoneme{Vowel: O},
		ConsonantPhoneme{Consonant: D},
		PalatalizedOnlyPhoneme{Consonant: J},
		VowelPhoneme{Vowel: E},
		ConsonantPhoneme{Consonant: Z},
		ConsonantPhoneme{Consonant: D},
	}
	if got := seq.String(); got != "подъезд" {
		t.Errorf("Expected 'подъезд', got '%s'", got)
	}
}

func TestRender_FinalJot(t *testing.T) {
	seq := PhonemeSeq{
		ConsonantPhoneme{Consonant: H},
		VowelPhoneme{Vowel: U},
		PalatalizedOnlyPhoneme{Consonant: J},
	}
	if got := seq.String(); got != "хуй" {
		t.Errorf("Expected 'хуй', got '%s'", got)
	}
}

func TestRender_IntervocalicJot(t *testing.T) {
	// Between vowels the jot leaves no glyph; the following vowel iotates.
	seq := PhonemeSeq{
		VowelPhoneme{Vowel: A},
		ConsonantPhoneme{Consonant: H},
		VowelPhoneme{Vowel: U},
		PalatalizedOnlyPhoneme{Consonant: J},
		VowelPhoneme{Vowel: E},
		ConsonantPhoneme{Consonant: T, Palatalized: true},
	}
	if got := seq.String(); got != "ахуеть" {
		t.Errorf("Expected 'ахуеть', got '%s'", got)
	}
}

func TestRender_InitialJot(t *testing.T) {
	seq := PhonemeSeq{
		PalatalizedOnlyPhoneme{Consonant: J},
		VowelPhoneme{Vowel: E},
		ConsonantPhoneme{Consonant: B},
		VowelPhoneme{Vowel: A},
		ConsonantPhoneme{Consonant: T, Palatalized: true},
	}
	if got := seq.String(); got != "ебать" {
		t.Errorf("Expected 'ебать', got '%s'", got)
	}
}

// W is irregular on purpose: щ when palatalized, ш otherwise, never a
// soft-sign suffix, and palatalized W does not iotate the following vowel.
func TestRender_WIrregularity(t *testing.T) {
	seq := PhonemeSeq{
		ConsonantPhoneme{Consonant: W, Palatalized: true},
		VowelPhoneme{Vowel: U},
		ConsonantPhoneme{Consonant: W},
		VowelPhoneme{Vowel: A},
	}
	if got := seq.String(); got != "щуша" {
		t.Errorf("Expected 'щуша', got '%s'", got)
	}

	// No soft-sign form even with no vowel following.
	final := PhonemeSeq{ConsonantPhoneme{Consonant: W, Palatalized: true}}
	if got := final.String(); got != "щ" {
		t.Errorf("Expected 'щ' for final palatalized W, got '%s'", got)
	}
}

// Q never iotates the following vowel and has a single unconditional glyph.
func TestRender_QIrregularity(t *testing.T) {
	seq := PhonemeSeq{
		PalatalizedOnlyPhoneme{Consonant: Q},
		VowelPhoneme{Vowel: A},
		ConsonantPhoneme{Consonant: K},
		ConsonantPhoneme{Consonant: R},
		VowelPhoneme{Vowel: A},
	}
	if got := seq.String(); got != "чакра" {
		t.Errorf("Expected 'чакра', got '%s'", got)
	}
}

// C shares its spellings with S rather than having its own pair.
func TestRender_CSharesSpellingWithS(t *testing.T) {
	c := PhonemeSeq{ConsonantPhoneme{Consonant: C}, VowelPhoneme{Vowel: A}}
	s := PhonemeSeq{ConsonantPhoneme{Consonant: S}, VowelPhoneme{Vowel: A}}
	if c.String() != s.String() {
		t.Errorf("Expected C and S to render identically, got '%s' and '%s'", c.String(), s.String())
	}

	cSoft := PhonemeSeq{ConsonantPhoneme{Consonant: C, Palatalized: true}}
	if got := cSoft.String(); got != "сь" {
		t.Errorf("Expected 'сь' for final palatalized C, got '%s'", got)
	}
}

func TestRender_JerSpelling(t *testing.T) {
	tests := []struct {
		name     string
		seq      PhonemeSeq
		expected string
	}{
		{
			"palatalized with vowel next uses iotation instead",
			PhonemeSeq{ConsonantPhoneme{Consonant: L, Palatalized: true}, VowelPhoneme{Vowel: U}},
			"лю",
		},
		{
			"palatalized word-finally takes the soft sign",
			PhonemeSeq{ConsonantPhoneme{Consonant: L, Palatalized: true}},
			"ль",
		},
		{
			"palatalized before consonant takes the soft sign",
			PhonemeSeq{
				ConsonantPhoneme{Consonant: M, Palatalized: true},
				ConsonantPhoneme{Consonant: M, Palatalized: true},
				VowelPhoneme{Vowel: A},
			},
			"мьмя",
		},
		{
			"palatalized before separator takes the soft sign",
			PhonemeSeq{
				ConsonantPhoneme{Consonant: T, Palatalized: true},
				Separator{},
				VowelPhoneme{Vowel: A},
			},
			"ть а",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seq.String(); got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestRender_VowelGlyphPairs(t *testing.T) {
	plain := PhonemeSeq{
		VowelPhoneme{Vowel: A}, VowelPhoneme{Vowel: E}, VowelPhoneme{Vowel: I},
		VowelPhoneme{Vowel: O}, VowelPhoneme{Vowel: U},
	}
	if got := plain.String(); got != "аэыоу" {
		t.Errorf("Expected 'аэыоу', got '%s'", got)
	}

	iotated := PhonemeSeq{}
	for _, v := range []Vowel{A, E, I, O, U} {
		iotated = append(iotated, ConsonantPhoneme{Consonant: N, Palatalized: true}, VowelPhoneme{Vowel: v})
	}
	if got := iotated.String(); got != "няненинёню" {
		t.Errorf("Expected 'няненинёню', got '%s'", got)
	}
}

func TestRender_Separator(t *testing.T) {
	seq := PhonemeSeq{
		ConsonantPhoneme{Consonant: N},
		VowelPhoneme{Vowel: A},
		Separator{},
		ConsonantPhoneme{Consonant: N},
		VowelPhoneme{Vowel: A},
	}
	if got := seq.String(); got != "на на" {
		t.Errorf("Expected 'на на', got '%s'", got)
	}
}

func TestRender_Empty(t *testing.T) {
	if got := (PhonemeSeq{}).String(); got != "" {
		t.Errorf("Expected empty output, got '%s'", got)
	}
}

// Rendering is context-local: replacing the phoneme at one position can
// only change the output of its immediate neighbors.
func TestRender_ContextLocality(t *testing.T) {
	base := PhonemeSeq{
		ConsonantPhoneme{Consonant: P},
		VowelPhoneme{Vowel: O},
		ConsonantPhoneme{Consonant: D},
		VowelPhoneme{Vowel: A},
		ConsonantPhoneme{Consonant: N},
	}
	changed := make(PhonemeSeq, len(base))
	copy(changed, base)
	changed[2] = ConsonantPhoneme{Consonant: Z, Palatalized: true}

	for i := range base {
		if i >= 1 && i <= 3 {
			continue // positions within one step of the change may differ
		}
		if base.renderAt(i) != changed.renderAt(i) {
			t.Errorf("Position %d changed from '%s' to '%s' after distant edit",
				i, base.renderAt(i), changed.renderAt(i))
		}
	}
}
