package ru

// Vowel is one of the five vowel phonemes. Vowels never carry palatalization
// themselves; they receive it from the preceding consonant during rendering.
type Vowel uint8

const (
	A Vowel = iota
	E
	I
	O
	U
)

// Consonant is one of the eighteen consonant phonemes that may or may not be
// palatalized per instance.
type Consonant uint8

const (
	P Consonant = iota
	B
	F
	V
	K
	G
	T
	D
	W
	X
	S
	Z
	L
	M
	N
	R
	H
	C
)

// PalatalizedOnly is a consonant phoneme that is palatalized by its nature,
// so it carries no palatalization flag.
type PalatalizedOnly uint8

const (
	J PalatalizedOnly = iota
	Q
)

// Phoneme is the atomic unit the renderer consumes: a vowel, a consonant
// with its palatalization flag, a palatalized-only consonant, or a word
// separator. The union is closed; type switches over it keep a panic guard
// on the default branch so an impossible variant fails fast.
type Phoneme interface {
	isPhoneme()
}

// VowelPhoneme wraps one of the five vowels.
type VowelPhoneme struct {
	Vowel Vowel
}

// ConsonantPhoneme wraps a consonant together with its palatalization flag.
type ConsonantPhoneme struct {
	Consonant   Consonant
	Palatalized bool
}

// PalatalizedOnlyPhoneme wraps a structurally palatalized consonant.
type PalatalizedOnlyPhoneme struct {
	Consonant PalatalizedOnly
}

// Separator is a word boundary; it renders as a space.
type Separator struct{}

func (VowelPhoneme) isPhoneme()           {}
func (ConsonantPhoneme) isPhoneme()       {}
func (PalatalizedOnlyPhoneme) isPhoneme() {}
func (Separator) isPhoneme()              {}

// PhonemeSeq is an ordered sequence of phonemes. It is built once per
// conversion and only ever read afterwards; rendering addresses positions
// by index.
type PhonemeSeq []Phoneme
