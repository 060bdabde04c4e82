package prompt

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pdfDir creates old.pdf, mid.PDF and new.pdf with increasing modification times
func pdfDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"old.pdf", "mid.PDF", "new.pdf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
		mtime := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.pdf"), 0o755))
	return dir
}

func TestFindPDFs(t *testing.T) {
	dir := pdfDir(t)

	found, err := FindPDFs(dir)
	require.NoError(t, err)

	var names []string
	for _, c := range found {
		names = append(names, filepath.Base(c.Path))
	}
	assert.Equal(t, []string{"new.pdf", "mid.PDF", "old.pdf"}, names)
}

func TestSelectPDF(t *testing.T) {
	dir := pdfDir(t)

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"enter accepts newest", "\n", "new.pdf"},
		{"yes accepts newest", "YES\n", "new.pdf"},
		{"pick from list", "n\n3\n", "old.pdf"},
		{"empty answer in list picks newest", "n\n\n", "new.pdf"},
		{"invalid answers re-prompt", "n\nabc\n9\n0\n2\n", "mid.PDF"},
		{"answer without trailing newline", "n\n3", "old.pdf"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tc.input), &out)

			path, err := p.SelectPDF(dir)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, filepath.Base(path))
		})
	}
}

func TestSelectPDFListing(t *testing.T) {
	dir := pdfDir(t)
	var out bytes.Buffer
	p := New(strings.NewReader("n\nx\n1\n"), &out)

	_, err := p.SelectPDF(dir)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "[1] new.pdf (modified: ")
	assert.Contains(t, out.String(), "[3] old.pdf (modified: ")
	assert.Contains(t, out.String(), "Please enter a number")
}

func TestSelectPDFNoFiles(t *testing.T) {
	p := New(strings.NewReader("\n"), io.Discard)

	_, err := p.SelectPDF(t.TempDir())

	assert.True(t, errors.Is(err, ErrNoPDF))
}

func TestSelectPDFInputClosed(t *testing.T) {
	p := New(strings.NewReader("n\n"), io.Discard)

	_, err := p.SelectPDF(pdfDir(t))

	assert.ErrorIs(t, err, io.EOF)
}

func TestConfirm(t *testing.T) {
	p := New(strings.NewReader("y\nYes\nno\n\n"), io.Discard)

	for _, expected := range []bool{true, true, false, false} {
		ok, err := p.Confirm("Continue?")
		require.NoError(t, err)
		assert.Equal(t, expected, ok)
	}
}

func TestParseIDs(t *testing.T) {
	ids, invalid := ParseIDs(" 1, 3,,x, 10 ,-1,4", 5)

	assert.Equal(t, []int{1, 3, 4}, ids)
	assert.Equal(t, []string{"x", "10", "-1"}, invalid)
}
