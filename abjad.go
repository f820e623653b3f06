// Package abjad computes the traditional abjad numeral value of
// Arabic-script text.
//
// Each letter of the Arabic alphabet (plus the Persian extensions پ چ ژ گ
// and common variant forms) carries a fixed numeral, and the value of a
// string is the sum of its letters' values. A small set of preferences
// adjusts the interpretation: whether the shaddah diacritic doubles the
// preceding letter, whether alif maddah counts as 2, whether a lone hamzah
// counts at all, and which of the two historical letter orders (Mashriqi
// or Maghribi) assigns values to six disputed letters.
//
// Three evaluation modes differ only in how they treat characters outside
// the recognized set:
//
//   - Evaluate skips unrecognized characters and always returns a total.
//   - EvaluateCollect skips them too, but reports each one (escaped) in
//     encounter order.
//   - EvaluateStrict fails on the first unrecognized character.
//
// Spaces and the zero-width non-joiner (U+200C) are valid separators in
// all modes. RuneValue exposes the per-letter lookup directly for callers
// that classify one character at a time.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Input is not normalized. Precomposed and decomposed forms of the
//     same letter (e.g. alif maddah vs. alif + combining maddah) are not
//     equated; run NFC normalization first if your input needs it.
//   - Invalid UTF-8 is not repaired: each malformed byte sequence is seen
//     as one U+FFFD rune, which is unrecognized in every mode.
//   - Totals are not overflow-checked. Overflowing uint requires input on
//     the order of 10^16 letters.
package abjad

import (
	"encoding/json"
	"fmt"
)

// LetterOrder selects which historical convention assigns numerals to the
// six letters (seen, sad, sheen, dad, zah, ghain) whose values differ
// between the eastern and western Arabic traditions.
type LetterOrder int

const (
	Mashriqi LetterOrder = iota // eastern order, the common default
	Maghribi                    // western (North African) order
)

// letterOrderNames maps LetterOrder values to their string names.
var letterOrderNames = [...]string{
	Mashriqi: "Mashriqi",
	Maghribi: "Maghribi",
}

// letterOrderFromName maps string names back to LetterOrder values.
var letterOrderFromName = map[string]LetterOrder{
	"Mashriqi": Mashriqi,
	"Maghribi": Maghribi,
}

// String returns the name of the letter order.
func (o LetterOrder) String() string {
	if int(o) >= 0 && int(o) < len(letterOrderNames) {
		return letterOrderNames[o]
	}
	return fmt.Sprintf("LetterOrder(%d)", int(o))
}

// MarshalJSON encodes the letter order as a JSON string (e.g. "Mashriqi").
func (o LetterOrder) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "Maghribi") into a LetterOrder.
func (o *LetterOrder) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	lo, ok := letterOrderFromName[s]
	if !ok {
		return fmt.Errorf("abjad: unknown letter order: %q", s)
	}
	*o = lo
	return nil
}

// Prefs configures an evaluation. The zero value is the conventional
// reading: shaddah ignored, alif maddah worth 1, lone hamzah worth 1,
// Mashriqi letter order.
type Prefs struct {
	// CountShaddah adds the preceding letter's value again when the
	// shaddah (doubling) diacritic follows it.
	CountShaddah bool `json:"count_shaddah"`

	// DoubleAlifMaddah values alif maddah (آ) at 2 instead of 1.
	DoubleAlifMaddah bool `json:"double_alif_maddah"`

	// IgnoreLoneHamzah values the isolated hamzah (ء) at 0 instead of 1.
	IgnoreLoneHamzah bool `json:"ignore_lone_hamzah"`

	// LetterOrder selects the Mashriqi (default) or Maghribi assignment
	// for the six order-dependent letters.
	LetterOrder LetterOrder `json:"letter_order"`
}

// Evaluate returns the abjad total of text under prefs.
// Unrecognized characters contribute nothing and break any pending
// shaddah doubling; Evaluate never fails.
func Evaluate(text string, prefs Prefs) uint {
	total, _, _ := evaluate(text, prefs, skipUnknown)
	return total
}

// EvaluateCollect returns the abjad total of text under prefs, together
// with every unrecognized character in encounter order, each rendered in
// \u{XXXX} form. The total is identical to Evaluate's. The slice is nil
// when every character was recognized.
func EvaluateCollect(text string, prefs Prefs) (uint, []string) {
	total, unknown, _ := evaluate(text, prefs, collectUnknown)
	return total, unknown
}

// EvaluateStrict returns the abjad total of text under prefs, or an
// *UnrecognizedRuneError identifying the first character outside the
// recognized set. No partial total is returned on failure.
func EvaluateStrict(text string, prefs Prefs) (uint, error) {
	total, _, err := evaluate(text, prefs, failUnknown)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// RuneValue returns the numeral value of a single letter under prefs.
// The second return is false for runes that carry no standalone value:
// the shaddah diacritic, the space and ZWNJ separators, and anything
// outside the recognized set.
func RuneValue(r rune, prefs Prefs) (uint, bool) {
	switch r {
	case shaddah, ' ', zwnj:
		return 0, false
	}
	contrib, _, ok := classify(r, 0, prefs)
	if !ok {
		return 0, false
	}
	return contrib, true
}
