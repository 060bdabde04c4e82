package block

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(texts ...string) Sequence {
	s := make(Sequence, len(texts))
	for i, t := range texts {
		s[i] = Block{ID: i, Page: 1, Text: t, Y: float64(i * 10)}
	}
	return s
}

func TestWithoutRenumbersDensely(t *testing.T) {
	s := seq("a", "b", "c", "d", "e")

	out := s.Without(map[int]bool{1: true, 3: true})

	assert.Equal(t, []string{"a", "c", "e"}, out.Texts())
	assert.True(t, out.Dense())
	// the input keeps its ids
	assert.Equal(t, 4, s[4].ID)
}

func TestIndexOfText(t *testing.T) {
	s := seq("Order #1", "  ITEMS QUANTITY  ", "ITEMS QUANTITY")

	assert.Equal(t, 1, s.IndexOfText("ITEMS QUANTITY"))
	assert.Equal(t, -1, s.IndexOfText("items quantity"))
}

func TestCloneIsIndependent(t *testing.T) {
	s := seq("a", "b")
	c := s.Clone()
	c[0].Text = "changed"

	assert.Equal(t, "a", s[0].Text)
	assert.Nil(t, Sequence(nil).Clone())
}

func TestWritePreviewGroupsByPage(t *testing.T) {
	s := seq("a", "b")
	s[1].Page = 2

	var buf bytes.Buffer
	require.NoError(t, s.WritePreview(&buf))

	assert.Equal(t, "\n=== Page 1 ===\n[0] a\n\n=== Page 2 ===\n[1] b\n", buf.String())
}

func TestWriteDump(t *testing.T) {
	s := Sequence{{ID: 0, Page: 1, Text: "SHIP TO", Font: "ABCDEF+NotoSans-Bold", FontSize: 9, X: 36, Y: 120.5, Width: 40.25}}

	var buf bytes.Buffer
	require.NoError(t, s.WriteDump(&buf))

	out := buf.String()
	assert.Contains(t, out, "[ID: 0]")
	assert.Contains(t, out, "· text: SHIP TO")
	assert.Contains(t, out, "· font: ABCDEF+NotoSans-Bold (9.0pt)")
	assert.Contains(t, out, "· position: (36, 120.5)")
}

func TestSummary(t *testing.T) {
	b := Block{Text: "123 Some Very Long Street Name, Apartment 42"}

	assert.Equal(t, "123 Some Very Long Street N...", b.Summary(30))
	assert.Equal(t, "short", Block{Text: "short"}.Summary(30))
}
