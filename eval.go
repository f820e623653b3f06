// Shared evaluation core for the three calling modes.
package abjad

import "fmt"

// disposition selects how the fold reacts to an unrecognized rune.
type disposition int

const (
	skipUnknown    disposition = iota // drop it, continue
	collectUnknown                    // drop it, record its escape, continue
	failUnknown                       // abort on the first one
)

// UnrecognizedRuneError reports a character outside the recognized set,
// returned by EvaluateStrict. The message renders the rune in its
// \u{XXXX} escape form so it survives terminals that cannot display it.
type UnrecognizedRuneError struct {
	Rune rune // the offending character
}

// Error implements the error interface.
func (e *UnrecognizedRuneError) Error() string {
	return fmt.Sprintf("abjad: unrecognized character %s", escapeRune(e.Rune))
}

// escapeRune renders r in the stable \u{XXXX} form used in collected
// logs and error messages, with lowercase hex and no zero padding.
func escapeRune(r rune) string {
	return fmt.Sprintf(`\u{%x}`, r)
}

// evaluate is the single fold shared by all three modes: one pass over
// the runes of s, accumulating the total and carrying the value of the
// most recent recognized character for shaddah resolution.
//
// The carried value resets to 0 whenever a rune does not itself stand
// for a letter: after a shaddah (counted or not), after a separator,
// and after a skipped unrecognized rune.
func evaluate(s string, prefs Prefs, mode disposition) (total uint, unknown []string, err error) {
	var last uint

	for _, r := range s {
		contrib, next, ok := classify(r, last, prefs)
		if !ok {
			switch mode {
			case failUnknown:
				return 0, nil, &UnrecognizedRuneError{Rune: r}
			case collectUnknown:
				unknown = append(unknown, escapeRune(r))
			}
			last = 0
			continue
		}
		total += contrib
		last = next
	}

	return total, unknown, nil
}
