// Package text splits mixed Japanese/Latin strings into single-script runs
// and lays them out on a shared baseline so a line set in two fonts still
// reads as one contiguous piece of text.
package text

// Segment is a maximal substring of consistent script classification.
type Segment struct {
	Text  string
	Latin bool
}

// isLatinClass classifies a rune for font selection. Everything below the
// CJK block start counts as Latin so that ASCII digits and punctuation
// embedded in Japanese text keep using the Latin font; the halfwidth and
// fullwidth forms block is folded in with them.
func isLatinClass(r rune) bool {
	return r < 0x3000 || (r >= 0xFF00 && r <= 0xFFEF)
}

// Split breaks s into alternating Latin / non-Latin runs. Consecutive runes
// of the same class merge into one segment; a class change starts a new one.
// Concatenating the segment texts in order reproduces s exactly.
func Split(s string) []Segment {
	var out []Segment
	var current []rune
	currentLatin := false
	first := true

	for _, r := range s {
		latin := isLatinClass(r)
		if first {
			currentLatin = latin
			first = false
		}
		if latin != currentLatin {
			if len(current) > 0 {
				out = append(out, Segment{Text: string(current), Latin: currentLatin})
			}
			current = current[:0]
			currentLatin = latin
		}
		current = append(current, r)
	}

	if len(current) > 0 {
		out = append(out, Segment{Text: string(current), Latin: currentLatin})
	}

	return out
}
