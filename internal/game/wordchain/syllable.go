package wordchain

import "strings"

// Vietnamese orthography writes one syllable per whitespace-separated
// token, so splitting on whitespace IS the syllable segmentation. The
// chain rule compares the trailing syllable of the last word with the
// leading syllable of the submission.

// FirstSyllable returns the leading syllable of a phrase, or "" for a
// blank phrase.
func FirstSyllable(phrase string) string {
	fields := strings.Fields(phrase)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// LastSyllable returns the trailing syllable of a phrase, or "" for a
// blank phrase.
func LastSyllable(phrase string) string {
	fields := strings.Fields(phrase)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
