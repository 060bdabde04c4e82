package pdf

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Baseline is typically at 80% of font height
const ascentRatio = 0.8

// textRun is one text item as reported by a content stream reader, in PDF user space
type textRun struct {
	S        string
	Font     string
	FontSize float64
	X        float64
	Y        float64
	W        float64
}

// charsFromRuns converts text runs into characters with pdfplumber coordinates.
// In PDF Y increases upward from the bottom; in pdfplumber Y increases downward from the top.
func charsFromRuns(runs []textRun, pageHeight float64) []CharObject {
	var chars []CharObject
	for _, run := range runs {
		runes := []rune(run.S)
		if len(runes) == 0 {
			continue
		}

		fontHeight := run.FontSize
		top := pageHeight - (run.Y + fontHeight*ascentRatio)
		charWidth := run.W / float64(len(runes))
		x := run.X

		for _, ch := range runes {
			chars = append(chars, CharObject{
				Text:     string(ch),
				Font:     run.Font,
				FontSize: run.FontSize,
				X0:       x,
				Y0:       top,
				X1:       x + charWidth,
				Y1:       top + fontHeight,
				Width:    charWidth,
				Height:   fontHeight,
			})
			x += charWidth
		}
	}
	return chars
}

// extractWords groups characters into lines and lines into words.
// Whitespace characters and horizontal gaps wider than the x tolerance end a word.
func extractWords(chars []CharObject, opts ...WordExtractionOption) []Word {
	config := &wordExtractionConfig{
		XTolerance: 3.0,
		YTolerance: 3.0,
	}
	for _, opt := range opts {
		opt(config)
	}

	if len(chars) == 0 {
		return nil
	}

	// Stable sorts keep content-stream order for glyphs reported without widths
	sorted := make([]CharObject, len(chars))
	copy(sorted, chars)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y0 < sorted[j].Y0
	})

	var lines [][]CharObject
	var currentLine []CharObject
	currentY := sorted[0].Y0

	for _, char := range sorted {
		if abs(char.Y0-currentY) > config.YTolerance {
			if len(currentLine) > 0 {
				lines = append(lines, currentLine)
			}
			currentLine = []CharObject{char}
			currentY = char.Y0
		} else {
			currentLine = append(currentLine, char)
		}
	}
	if len(currentLine) > 0 {
		lines = append(lines, currentLine)
	}

	var words []Word
	for _, line := range lines {
		words = append(words, extractWordsFromLine(line, config.XTolerance)...)
	}
	return words
}

// extractWordsFromLine extracts words from a single line of characters
func extractWordsFromLine(lineChars []CharObject, xTolerance float64) []Word {
	sort.SliceStable(lineChars, func(i, j int) bool {
		return lineChars[i].X0 < lineChars[j].X0
	})

	var words []Word
	var currentWord []CharObject

	flush := func() {
		if len(currentWord) > 0 {
			words = append(words, createWord(currentWord))
			currentWord = nil
		}
	}

	for i, char := range lineChars {
		if char.IsSpace() {
			flush()
			continue
		}
		if len(currentWord) > 0 && char.X0-lineChars[i-1].X1 > xTolerance {
			flush()
		}
		currentWord = append(currentWord, char)
	}
	flush()

	return words
}

// createWord creates a Word from a group of characters
func createWord(chars []CharObject) Word {
	var text strings.Builder
	bbox := chars[0].GetBBox()

	for _, char := range chars {
		text.WriteString(char.Text)
		bbox = bbox.Union(char.GetBBox())
	}

	return Word{
		Text:       norm.NFC.String(text.String()),
		X0:         bbox.X0,
		Y0:         bbox.Y0,
		X1:         bbox.X1,
		Y1:         bbox.Y1,
		Characters: chars,
	}
}
