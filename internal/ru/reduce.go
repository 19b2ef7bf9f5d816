package ru

import (
	"errors"
	"fmt"

	"github.com/miralushch/ipa2ru/internal/ipa"
)

// ErrUnsupportedPhoneme reports a sound descriptor whose quality has no
// place in the phoneme inventory. The reduction tables are closed
// enumerations; anything outside them is a contract violation by the
// upstream parser, never something to approximate.
var ErrUnsupportedPhoneme = errors.New("unsupported phoneme")

// vowelTable reduces every recognized vowel quality to one of the five
// vowel phonemes. The table is total over ipa.Vowel.
var vowelTable = map[ipa.Vowel]Vowel{
	ipa.CloseBackRounded:            U,
	ipa.CloseBackUnrounded:          U,
	ipa.CloseCentralRounded:         U,
	ipa.CloseCentralUnrounded:       I,
	ipa.CloseFrontRounded:           U,
	ipa.CloseFrontUnrounded:         I,
	ipa.CloseMidBackRounded:         O,
	ipa.CloseMidBackUnrounded:       U,
	ipa.CloseMidCentralRounded:      U,
	ipa.CloseMidCentralUnrounded:    E,
	ipa.CloseMidFrontRounded:        O,
	ipa.CloseMidFrontUnrounded:      E,
	ipa.MidCentral:                  A,
	ipa.NearCloseNearBackRounded:    U,
	ipa.NearCloseNearFrontRounded:   U,
	ipa.NearCloseNearFrontUnrounded: E,
	ipa.NearOpenFrontUnrounded:      A,
	ipa.OpenBackUnrounded:           A,
	ipa.OpenFrontUnrounded:          A,
	ipa.OpenMidBackUnrounded:        A,
}

// consonantTable reduces the supported consonant qualities that keep their
// incoming palatalization flag.
var consonantTable = map[ipa.Consonant]Consonant{
	ipa.VoicedAlveolarNasal:      N,
	ipa.VoicedBilabialNasal:      M,
	ipa.VoicelessBilabialPlosive: P,
}

// palatalizedOnlyTable reduces the qualities whose palatalization is
// structural; the incoming flag is discarded.
var palatalizedOnlyTable = map[ipa.Consonant]PalatalizedOnly{
	ipa.VoicedPalatalApproximant: J,
}

// Reduce maps an ordered sequence of sound descriptors onto a phoneme
// sequence. A long descriptor contributes two structurally identical
// phonemes; a separator always contributes exactly one. A descriptor
// outside the supported subset fails with ErrUnsupportedPhoneme.
func Reduce(sounds []ipa.Sound) (PhonemeSeq, error) {
	seq := make(PhonemeSeq, 0, len(sounds))

	for _, sound := range sounds {
		phoneme, long, err := reduceSound(sound)
		if err != nil {
			return nil, err
		}
		seq = append(seq, phoneme)
		if long {
			seq = append(seq, phoneme)
		}
	}

	return seq, nil
}

func reduceSound(sound ipa.Sound) (Phoneme, bool, error) {
	switch s := sound.(type) {
	case ipa.VowelSound:
		vowel, ok := vowelTable[s.Vowel]
		if !ok {
			return nil, false, fmt.Errorf("%w: %s vowel", ErrUnsupportedPhoneme, s.Vowel)
		}
		return VowelPhoneme{Vowel: vowel}, s.Long, nil

	case ipa.ConsonantSound:
		if consonant, ok := consonantTable[s.Consonant]; ok {
			return ConsonantPhoneme{Consonant: consonant, Palatalized: s.Palatalized}, s.Long, nil
		}
		if consonant, ok := palatalizedOnlyTable[s.Consonant]; ok {
			return PalatalizedOnlyPhoneme{Consonant: consonant}, s.Long, nil
		}
		return nil, false, fmt.Errorf("%w: %s consonant", ErrUnsupportedPhoneme, s.Consonant)

	case ipa.Space:
		return Separator{}, false, nil

	default:
		panic("ru: unhandled sound kind")
	}
}
