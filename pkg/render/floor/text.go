package floor

import (
	"bytes"
	"encoding/xml"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	fontHeightRatio = 0.25
	fontWidthRatio  = 0.85
	fontCharWidth   = 0.55
	fontSizeMin     = 7.0
	fontSizeMax     = 14.0
)

// fontSize fits text of textLen characters into a box of the given size.
func fontSize(availWidth, availHeight float64, textLen int) float64 {
	n := max(1, textLen)
	byHeight := availHeight * fontHeightRatio
	byWidth := (availWidth * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

// truncate shortens label so it fits width at the given font size.
func truncate(label string, width, size float64) string {
	maxChars := int(width * fontWidthRatio / (size * fontCharWidth))
	if maxChars < 3 {
		maxChars = 3
	}
	if utf8.RuneCountInString(label) <= maxChars {
		return label
	}
	r := []rune(label)
	return string(r[:maxChars-2]) + ".."
}

// title upper-cases the first letter of each word.
func title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, n := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[n:]
	}
	return strings.Join(words, " ")
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
