package dotprinter

// displayWidth is a [ir.RuntimeWidth] for DOT identifiers: most runes occupy one column, but East
// Asian wide characters occupy two. Plain rune counting (what [ir.Items.PushText] uses) would
// under-count the column width of identifiers containing such runes.
func displayWidth(s string) int {
	width := 0
	for _, r := range s {
		width += runeWidth(r)
	}
	return width
}

func runeWidth(r rune) int {
	if isWide(r) {
		return 2
	}
	return 1
}

// isWide reports whether r falls in a Unicode block conventionally rendered as two columns wide
// by terminals and editors (CJK ideographs, kana, hangul, fullwidth forms).
func isWide(r rune) bool {
	switch {
	case r >= 0x1100 && r <= 0x115F, // Hangul Jamo
		r >= 0x2E80 && r <= 0x303E, // CJK Radicals, Kangxi, CJK symbols & punctuation
		r >= 0x3041 && r <= 0x33FF, // Hiragana .. CJK Compatibility
		r >= 0x3400 && r <= 0x4DBF, // CJK Unified Ideographs Extension A
		r >= 0x4E00 && r <= 0x9FFF, // CJK Unified Ideographs
		r >= 0xA000 && r <= 0xA4CF, // Yi syllables & radicals
		r >= 0xAC00 && r <= 0xD7A3, // Hangul syllables
		r >= 0xF900 && r <= 0xFAFF, // CJK Compatibility Ideographs
		r >= 0xFF00 && r <= 0xFF60, // Fullwidth forms
		r >= 0xFFE0 && r <= 0xFFE6,
		r >= 0x20000 && r <= 0x3FFFD: // CJK Extensions B..
		return true
	default:
		return false
	}
}
