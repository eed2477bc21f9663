package stock

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrUnknownSize     = errors.New("unknown size")
	ErrInvalidQuantity = errors.New("invalid stock quantity")
	ErrDuplicateSize   = errors.New("duplicate size")
	ErrUnsupportedForm = errors.New("unsupported stock representation")
	ErrSizeRequired    = errors.New("size required")
)

// SizeKey is one canonical bottle size.
type SizeKey string

const (
	Size5cl   SizeKey = "5CL"
	Size20cl  SizeKey = "20CL"
	Size35cl  SizeKey = "35CL"
	Size50cl  SizeKey = "50CL"
	Size70cl  SizeKey = "70CL"
	Size75cl  SizeKey = "75CL"
	Size1L    SizeKey = "1L"
	Size1_5L  SizeKey = "1_5L"
	SizeNone  SizeKey = ""
	sizeCount         = 8
)

var vocabulary = [sizeCount]SizeKey{
	Size5cl, Size20cl, Size35cl, Size50cl, Size70cl, Size75cl, Size1L, Size1_5L,
}

// Vocabulary returns the canonical sizes, smallest first.
func Vocabulary() []SizeKey {
	out := make([]SizeKey, sizeCount)
	copy(out, vocabulary[:])
	return out
}

func (k SizeKey) String() string {
	return string(k)
}

func (k SizeKey) IsValid() bool {
	for _, v := range vocabulary {
		if v == k {
			return true
		}
	}
	return false
}

// aliases maps normalized spellings onto canonical keys.
var aliases = map[string]SizeKey{
	"50ML": Size5cl, "0_05L": Size5cl, "0_05LTR": Size5cl, "MINI": Size5cl, "MINIATURE": Size5cl,
	"200ML": Size20cl, "0_2L": Size20cl, "0_20L": Size20cl, "0_2LTR": Size20cl,
	"350ML": Size35cl, "0_35L": Size35cl, "0_35LTR": Size35cl, "HALF": Size35cl,
	"500ML": Size50cl, "0_5L": Size50cl, "0_50L": Size50cl, "0_5LTR": Size50cl,
	"700ML": Size70cl, "0_7L": Size70cl, "0_70L": Size70cl, "0_7LTR": Size70cl,
	"750ML": Size75cl, "0_75L": Size75cl, "0_75LTR": Size75cl, "BOTTLE": Size75cl,
	"1000ML": Size1L, "100CL": Size1L, "1LTR": Size1L, "1_0L": Size1L, "1_0LTR": Size1L, "1_00L": Size1L,
	"1500ML": Size1_5L, "150CL": Size1_5L, "1_5LTR": Size1_5L, "1_50L": Size1_5L, "MAGNUM": Size1_5L,
}

var unitSpellings = []struct{ from, to string }{
	{"MILLILITRES", "ML"}, {"MILLILITERS", "ML"}, {"MILLILITRE", "ML"}, {"MILLILITER", "ML"},
	{"CENTILITRES", "CL"}, {"CENTILITERS", "CL"}, {"CENTILITRE", "CL"}, {"CENTILITER", "CL"},
	{"LITRES", "LTR"}, {"LITERS", "LTR"}, {"LITRE", "LTR"}, {"LITER", "LTR"},
}

// UnknownSizeError names the label that failed to normalize.
type UnknownSizeError struct {
	Label string
}

func (e *UnknownSizeError) Error() string {
	return "unknown size: " + e.Label
}

func (e *UnknownSizeError) Is(target error) bool {
	return target == ErrUnknownSize
}

// NormalizeSizeLabel maps any accepted spelling of a size onto its SizeKey.
func NormalizeSizeLabel(raw string) (SizeKey, error) {
	label := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, raw)
	if label == "" {
		return SizeNone, &UnknownSizeError{Label: raw}
	}

	for _, u := range unitSpellings {
		label = strings.ReplaceAll(label, u.from, u.to)
	}
	label = strings.Map(func(r rune) rune {
		switch r {
		case '.', ',', '-', '/':
			return '_'
		}
		return r
	}, label)

	if key := SizeKey(label); key.IsValid() {
		return key, nil
	}
	if key, ok := aliases[label]; ok {
		return key, nil
	}
	return SizeNone, &UnknownSizeError{Label: raw}
}

// ParseSizeLabel is NormalizeSizeLabel for optional input: empty means no size.
func ParseSizeLabel(raw *string) (SizeKey, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return SizeNone, nil
	}
	return NormalizeSizeLabel(*raw)
}
