package extractors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyhub-apps/packlist/pkg/pdf"
)

func word(text string, x0, top float64) pdf.Word {
	return pdf.Word{
		Text: text,
		X0:   x0,
		Y0:   top,
		X1:   x0 + float64(len(text))*5,
		Y1:   top + 10,
		Characters: []pdf.CharObject{
			{Text: text[:1], Font: "ABCDEF+NotoSans-Regular", FontSize: 9.96},
		},
	}
}

func TestGroupTolerance(t *testing.T) {
	testCases := []struct {
		name     string
		words    []pdf.Word
		expected []string
	}{
		{
			name:     "same line merges",
			words:    []pdf.Word{word("Order", 10, 100), word("#12345", 50, 100)},
			expected: []string{"Order #12345"},
		},
		{
			name:     "difference of exactly 5 merges",
			words:    []pdf.Word{word("a", 10, 100), word("b", 20, 105)},
			expected: []string{"a b"},
		},
		{
			name:     "difference above 5 splits",
			words:    []pdf.Word{word("a", 10, 100), word("b", 20, 105.5)},
			expected: []string{"a", "b"},
		},
		{
			name:     "tolerance is measured from the block top",
			words:    []pdf.Word{word("a", 10, 100), word("b", 20, 104), word("c", 30, 108)},
			expected: []string{"a b", "c"},
		},
		{
			name: "drifting words do not chain",
			words: []pdf.Word{
				word("a", 10, 100), word("b", 20, 104), word("c", 30, 108), word("d", 40, 112),
			},
			expected: []string{"a b", "c d"},
		},
		{
			name:     "raised word moves the block top",
			words:    []pdf.Word{word("a", 10, 100), word("b", 20, 97), word("c", 30, 103)},
			expected: []string{"a b", "c"},
		},
		{
			name:     "whitespace-only lines are dropped",
			words:    []pdf.Word{word("a", 10, 100), word("  ", 10, 120), word("b", 10, 140)},
			expected: []string{"a", "b"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			blocks := NewBlockBuilder().Group(1, tc.words)
			assert.Equal(t, tc.expected, blocks.Texts())
		})
	}
}

func TestGroupBlockGeometry(t *testing.T) {
	blocks := NewBlockBuilder().Group(2, []pdf.Word{
		word("Jasmine", 36.4, 120.04),
		word("Perry", 80.2, 121.5),
	})
	require.Len(t, blocks, 1)

	b := blocks[0]
	assert.Equal(t, 2, b.Page)
	assert.Equal(t, 36.0, b.X)
	assert.Equal(t, 120.0, b.Y)
	assert.Equal(t, "ABCDEF+NotoSans-Regular", b.Font)
	assert.Equal(t, 10.0, b.FontSize)
	assert.InDelta(t, 80.2+25-36.4, b.BBox.Width(), 1e-9)
	assert.InDelta(t, 131.5, b.BBox.Y1, 1e-9)
}

func TestSetTolerance(t *testing.T) {
	bb := NewBlockBuilder()
	bb.SetTolerance(1)

	blocks := bb.Group(1, []pdf.Word{word("a", 10, 100), word("b", 20, 102)})
	assert.Equal(t, []string{"a", "b"}, blocks.Texts())
}
