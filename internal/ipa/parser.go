package ipa

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure modes of Parse. Callers classify them with
// errors.Is; the wrapped message carries the offending symbol and its
// rune position.
var (
	ErrUnknownSymbol   = errors.New("unknown IPA symbol")
	ErrOrphanModifier  = errors.New("modifier has no sound to attach to")
	ErrVowelPalatalize = errors.New("palatalization mark on a vowel")
)

const (
	lengthMark         = 'ː'
	palatalizationMark = 'ʲ'
)

var vowelSymbols = map[rune]Vowel{
	'u': CloseBackRounded,
	'ɯ': CloseBackUnrounded,
	'ʉ': CloseCentralRounded,
	'ɨ': CloseCentralUnrounded,
	'y': CloseFrontRounded,
	'i': CloseFrontUnrounded,
	'o': CloseMidBackRounded,
	'ɤ': CloseMidBackUnrounded,
	'ɵ': CloseMidCentralRounded,
	'ɘ': CloseMidCentralUnrounded,
	'ø': CloseMidFrontRounded,
	'e': CloseMidFrontUnrounded,
	'ə': MidCentral,
	'ʊ': NearCloseNearBackRounded,
	'ʏ': NearCloseNearFrontRounded,
	'ɪ': NearCloseNearFrontUnrounded,
	'æ': NearOpenFrontUnrounded,
	'ɑ': OpenBackUnrounded,
	'a': OpenFrontUnrounded,
	'ʌ': OpenMidBackUnrounded,
}

var consonantSymbols = map[rune]Consonant{
	'l': VoicedAlveolarLateralApproximant,
	'n': VoicedAlveolarNasal,
	'd': VoicedAlveolarPlosive,
	'r': VoicedAlveolarTrill,
	'm': VoicedBilabialNasal,
	'b': VoicedBilabialPlosive,
	'v': VoicedLabiodentalFricative,
	'w': VoicedLabioVelarApproximant,
	'j': VoicedPalatalApproximant,
	'ʒ': VoicedPostalveolarFricative,
	'ɡ': VoicedVelarPlosive,
	'g': VoicedVelarPlosive, // ASCII g is accepted alongside U+0261
	'z': VoicedAlveolarFricative,
	's': VoicelessAlveolarFricative,
	't': VoicelessAlveolarPlosive,
	'p': VoicelessBilabialPlosive,
	'h': VoicelessGlottalFricative,
	'f': VoicelessLabiodentalFricative,
	'ʃ': VoicelessPostalveolarFricative,
	'x': VoicelessVelarFricative,
	'k': VoicelessVelarPlosive,
}

// Parse decodes IPA text into an ordered sequence of sound descriptors.
// The ː and ʲ modifiers attach to the sound immediately before them; a
// modifier at the start of the text, after a space, or (for ʲ) after a
// vowel is an error.
func Parse(text string) ([]Sound, error) {
	var sounds []Sound

	pos := 0
	for _, r := range text {
		switch {
		case r == ' ':
			sounds = append(sounds, Space{})

		case r == lengthMark:
			if err := markLong(sounds); err != nil {
				return nil, fmt.Errorf("position %d: %q: %w", pos, r, err)
			}

		case r == palatalizationMark:
			if err := markPalatalized(sounds); err != nil {
				return nil, fmt.Errorf("position %d: %q: %w", pos, r, err)
			}

		default:
			sound, err := lookupSymbol(r)
			if err != nil {
				return nil, fmt.Errorf("position %d: %q: %w", pos, r, err)
			}
			sounds = append(sounds, sound)
		}
		pos++
	}

	return sounds, nil
}

func lookupSymbol(r rune) (Sound, error) {
	if vowel, ok := vowelSymbols[r]; ok {
		return VowelSound{Vowel: vowel}, nil
	}
	if consonant, ok := consonantSymbols[r]; ok {
		return ConsonantSound{Consonant: consonant}, nil
	}
	return nil, ErrUnknownSymbol
}

func markLong(sounds []Sound) error {
	if len(sounds) == 0 {
		return ErrOrphanModifier
	}
	switch s := sounds[len(sounds)-1].(type) {
	case VowelSound:
		s.Long = true
		sounds[len(sounds)-1] = s
	case ConsonantSound:
		s.Long = true
		sounds[len(sounds)-1] = s
	case Space:
		return ErrOrphanModifier
	default:
		panic("ipa: unhandled sound kind")
	}
	return nil
}

func markPalatalized(sounds []Sound) error {
	if len(sounds) == 0 {
		return ErrOrphanModifier
	}
	switch s := sounds[len(sounds)-1].(type) {
	case ConsonantSound:
		s.Palatalized = true
		sounds[len(sounds)-1] = s
	case VowelSound:
		return ErrVowelPalatalize
	case Space:
		return ErrOrphanModifier
	default:
		panic("ipa: unhandled sound kind")
	}
	return nil
}
