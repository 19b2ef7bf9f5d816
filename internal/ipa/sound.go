package ipa

// Vowel identifies an IPA vowel quality by closeness, backness and rounding.
type Vowel uint8

const (
	CloseBackRounded Vowel = iota
	CloseBackUnrounded
	CloseCentralRounded
	CloseCentralUnrounded
	CloseFrontRounded
	CloseFrontUnrounded
	CloseMidBackRounded
	CloseMidBackUnrounded
	CloseMidCentralRounded
	CloseMidCentralUnrounded
	CloseMidFrontRounded
	CloseMidFrontUnrounded
	MidCentral
	NearCloseNearBackRounded
	NearCloseNearFrontRounded
	NearCloseNearFrontUnrounded
	NearOpenFrontUnrounded
	OpenBackUnrounded
	OpenFrontUnrounded
	OpenMidBackUnrounded
)

var vowelNames = map[Vowel]string{
	CloseBackRounded:            "close back rounded",
	CloseBackUnrounded:          "close back unrounded",
	CloseCentralRounded:         "close central rounded",
	CloseCentralUnrounded:       "close central unrounded",
	CloseFrontRounded:           "close front rounded",
	CloseFrontUnrounded:         "close front unrounded",
	CloseMidBackRounded:         "close-mid back rounded",
	CloseMidBackUnrounded:       "close-mid back unrounded",
	CloseMidCentralRounded:      "close-mid central rounded",
	CloseMidCentralUnrounded:    "close-mid central unrounded",
	CloseMidFrontRounded:        "close-mid front rounded",
	CloseMidFrontUnrounded:      "close-mid front unrounded",
	MidCentral:                  "mid central",
	NearCloseNearBackRounded:    "near-close near-back rounded",
	NearCloseNearFrontRounded:   "near-close near-front rounded",
	NearCloseNearFrontUnrounded: "near-close near-front unrounded",
	NearOpenFrontUnrounded:      "near-open front unrounded",
	OpenBackUnrounded:           "open back unrounded",
	OpenFrontUnrounded:          "open front unrounded",
	OpenMidBackUnrounded:        "open-mid back unrounded",
}

// String returns the articulatory description of the vowel quality.
func (v Vowel) String() string {
	if name, ok := vowelNames[v]; ok {
		return name
	}
	return "unknown vowel"
}

// Consonant identifies an IPA consonant quality by voicing, place and manner.
type Consonant uint8

const (
	VoicedAlveolarLateralApproximant Consonant = iota
	VoicedAlveolarNasal
	VoicedAlveolarPlosive
	VoicedAlveolarTrill
	VoicedBilabialNasal
	VoicedBilabialPlosive
	VoicedLabiodentalFricative
	VoicedLabioVelarApproximant
	VoicedPalatalApproximant
	VoicedPostalveolarFricative
	VoicedVelarPlosive
	VoicedAlveolarFricative
	VoicelessAlveolarFricative
	VoicelessAlveolarPlosive
	VoicelessBilabialPlosive
	VoicelessGlottalFricative
	VoicelessLabiodentalFricative
	VoicelessPostalveolarFricative
	VoicelessVelarFricative
	VoicelessVelarPlosive
)

var consonantNames = map[Consonant]string{
	VoicedAlveolarLateralApproximant: "voiced alveolar lateral approximant",
	VoicedAlveolarNasal:              "voiced alveolar nasal",
	VoicedAlveolarPlosive:            "voiced alveolar plosive",
	VoicedAlveolarTrill:              "voiced alveolar trill",
	VoicedBilabialNasal:              "voiced bilabial nasal",
	VoicedBilabialPlosive:            "voiced bilabial plosive",
	VoicedLabiodentalFricative:       "voiced labiodental fricative",
	VoicedLabioVelarApproximant:      "voiced labio-velar approximant",
	VoicedPalatalApproximant:         "voiced palatal approximant",
	VoicedPostalveolarFricative:      "voiced postalveolar fricative",
	VoicedVelarPlosive:               "voiced velar plosive",
	VoicedAlveolarFricative:          "voiced alveolar fricative",
	VoicelessAlveolarFricative:       "voiceless alveolar fricative",
	VoicelessAlveolarPlosive:         "voiceless alveolar plosive",
	VoicelessBilabialPlosive:         "voiceless bilabial plosive",
	VoicelessGlottalFricative:        "voiceless glottal fricative",
	VoicelessLabiodentalFricative:    "voiceless labiodental fricative",
	VoicelessPostalveolarFricative:   "voiceless postalveolar fricative",
	VoicelessVelarFricative:          "voiceless velar fricative",
	VoicelessVelarPlosive:            "voiceless velar plosive",
}

// String returns the articulatory description of the consonant quality.
func (c Consonant) String() string {
	if name, ok := consonantNames[c]; ok {
		return name
	}
	return "unknown consonant"
}

// Sound is a decoded sound descriptor: a vowel quality with a length flag,
// a consonant quality with length and palatalization flags, or a word
// separator. It is a closed union; no other kinds exist.
type Sound interface {
	isSound()
}

// VowelSound is a vowel quality with its length flag.
type VowelSound struct {
	Vowel Vowel
	Long  bool
}

// ConsonantSound is a consonant quality with its length and palatalization
// flags.
type ConsonantSound struct {
	Consonant   Consonant
	Long        bool
	Palatalized bool
}

// Space is a word-boundary marker.
type Space struct{}

func (VowelSound) isSound()     {}
func (ConsonantSound) isSound() {}
func (Space) isSound()          {}
