// Package render writes PDFs: it draws block sequences onto fresh A4 pages,
// splits pages into top and bottom halves and overlays edits on existing pages.
package render

import "strings"

// DefaultFontSize is used for blocks that carry no font size
const DefaultFontSize = 10.0

// FontFace is an fpdf core font family and style
type FontFace struct {
	Family string
	Style  string // "", "B", "I" or "BI"
}

// fallbackFace is used for every font missing from the substitution table
var fallbackFace = FontFace{Family: "Helvetica"}

var fontSubstitutes = map[string]FontFace{
	"NotoSans-Regular":      {Family: "Helvetica"},
	"NotoSans-Bold":         {Family: "Helvetica", Style: "B"},
	"NotoSans-Italic":       {Family: "Helvetica", Style: "I"},
	"NotoSans-BoldItalic":   {Family: "Helvetica", Style: "BI"},
	"Helvetica":             {Family: "Helvetica"},
	"Helvetica-Bold":        {Family: "Helvetica", Style: "B"},
	"Helvetica-Oblique":     {Family: "Helvetica", Style: "I"},
	"Helvetica-BoldOblique": {Family: "Helvetica", Style: "BI"},
	"Times-Roman":           {Family: "Times"},
	"Times-Bold":            {Family: "Times", Style: "B"},
	"Courier":               {Family: "Courier"},
	"Courier-Bold":          {Family: "Courier", Style: "B"},
}

// BaseFontName strips the six-letter subset tag, ABCDEF+NotoSans-Bold becomes NotoSans-Bold
func BaseFontName(name string) string {
	if len(name) < 8 || name[6] != '+' {
		return name
	}
	for _, r := range name[:6] {
		if r < 'A' || r > 'Z' {
			return name
		}
	}
	return name[7:]
}

// ResolveFont maps an embedded font name to the core font used to draw it
func ResolveFont(name string) FontFace {
	if face, ok := fontSubstitutes[strings.TrimSpace(BaseFontName(name))]; ok {
		return face
	}
	return fallbackFace
}

func fontSize(size float64) float64 {
	if size <= 0 {
		return DefaultFontSize
	}
	return size
}
