package abjad

// Runes with configuration-dependent or non-letter behavior.
const (
	alifMaddah = 'آ' // آ — worth 1, or 2 with DoubleAlifMaddah
	loneHamzah = 'ء' // ء — worth 1, or 0 with IgnoreLoneHamzah
	shaddah    = '\u0651' // combining doubling diacritic
	zwnj       = '\u200c' // zero-width non-joiner, a valid separator
)

// fixedValues maps each letter whose numeral is the same in both
// historical orders. Variant and Persian-extension forms share the value
// of their base letter (e.g. peh with beh, heh goal with heh).
var fixedValues = map[rune]uint{
	'ا': 1, // ا alif
	'أ': 1, // أ alif with hamzah above
	'إ': 1, // إ alif with hamzah below
	'ٱ': 1, // ٱ alif wasla

	'ب': 2, // ب beh
	'پ': 2, // پ peh

	'ج': 3, // ج jeem
	'چ': 3, // چ tcheh

	'د': 4, // د dal

	'ه': 5, // ه heh
	'ة': 5, // ة teh marbuta
	'ۀ': 5, // ۀ heh with yeh above

	'و': 6, // و waw
	'ؤ': 6, // ؤ waw with hamzah above

	'ز': 7, // ز zain
	'ژ': 7, // ژ jeh

	'ح': 8, // ح hah

	'ط': 9, // ط tah

	'ي': 10, // ي yeh
	'ى': 10, // ى alef maksura
	'ئ': 10, // ئ yeh with hamzah above
	'ی': 10, // ی farsi yeh

	'ك': 20, // ك kaf
	'ک': 20, // ک keheh
	'گ': 20, // گ gaf

	'ل': 30,  // ل lam
	'م': 40,  // م meem
	'ن': 50,  // ن noon
	'ع': 70,  // ع ain
	'ف': 80,  // ف feh
	'ق': 100, // ق qaf
	'ر': 200, // ر reh
	'ت': 400, // ت teh
	'ث': 500, // ث theh
	'خ': 600, // خ khah
	'ذ': 700, // ذ thal
}

// orderedValues maps the six letters whose numeral depends on the letter
// order. Index 0 is the Mashriqi value, index 1 the Maghribi value. The
// two columns are permutations of the same six numerals, so a full
// alphabet sums identically under either order.
var orderedValues = map[rune][2]uint{
	'س': {60, 300},   // س seen
	'ص': {90, 60},    // ص sad
	'ش': {300, 1000}, // ش sheen
	'ض': {800, 90},   // ض dad
	'ظ': {900, 800},  // ظ zah
	'غ': {1000, 900}, // غ ghain
}

// classify resolves one rune against the letter tables and prefs.
//
// contrib is the amount to add to the running total; next is the carried
// value a following shaddah would double. For ordinary letters the two
// are equal. The shaddah itself contributes last (or 0) and always
// clears the carried value, so a second shaddah never doubles again.
// ok is false for runes outside the recognized set; contrib and next are
// 0 in that case and the caller decides disposition.
func classify(r rune, last uint, prefs Prefs) (contrib, next uint, ok bool) {
	switch r {
	case alifMaddah:
		if prefs.DoubleAlifMaddah {
			return 2, 2, true
		}
		return 1, 1, true
	case loneHamzah:
		if prefs.IgnoreLoneHamzah {
			return 0, 0, true
		}
		return 1, 1, true
	case shaddah:
		if prefs.CountShaddah {
			return last, 0, true
		}
		return 0, 0, true
	case ' ', zwnj:
		return 0, 0, true
	}

	if v, found := fixedValues[r]; found {
		return v, v, true
	}
	if pair, found := orderedValues[r]; found {
		v := pair[0]
		if prefs.LetterOrder == Maghribi {
			v = pair[1]
		}
		return v, v, true
	}

	return 0, 0, false
}
