package phonology

// Phoneme is an atomic consonant or vowel sound-string.
type Phoneme string

// Class tells consonants from vowels.
type Class int

const (
	Consonant Class = iota
	Vowel
)

func (c Class) String() string {
	switch c {
	case Consonant:
		return "consonant"
	case Vowel:
		return "vowel"
	default:
		return "unknown"
	}
}

// K'kree consonants (GDW Alien Module 2)
const (
	PhonB  Phoneme = "B"
	PhonG  Phoneme = "G"
	PhonGH Phoneme = "GH"
	PhonGN Phoneme = "GN"
	PhonGR Phoneme = "GR"
	PhonGZ Phoneme = "GZ"
	PhonHK Phoneme = "HK"
	PhonK  Phoneme = "K"
	PhonKR Phoneme = "KR"
	PhonKT Phoneme = "KT"
	PhonL  Phoneme = "L"
	PhonM  Phoneme = "M"
	PhonMB Phoneme = "MB"
	PhonN  Phoneme = "N"
	PhonP  Phoneme = "P"
	PhonR  Phoneme = "R"
	PhonRR Phoneme = "RR"
	PhonT  Phoneme = "T"
	PhonTR Phoneme = "TR"
	PhonX  Phoneme = "X"
	PhonXX Phoneme = "XX"
	PhonXR Phoneme = "XR"
	PhonXT Phoneme = "XT"
)

// K'kree vowels. The punctuation glyphs stand in for glottal stops and clicks.
const (
	PhonA  Phoneme = "A"
	PhonAA Phoneme = "AA"
	PhonE  Phoneme = "E"
	PhonEE Phoneme = "EE"
	PhonI  Phoneme = "I"
	PhonII Phoneme = "II"
	PhonO  Phoneme = "O"
	PhonOO Phoneme = "OO"
	PhonU  Phoneme = "U"
	PhonUU Phoneme = "UU"

	PhonGlottal      Phoneme = "'"  // glottal stop
	PhonClick        Phoneme = "!"  // click
	PhonDoubleClick  Phoneme = "!!" // long click
	PhonClickGlottal Phoneme = "!'" // click released into a glottal stop
)
