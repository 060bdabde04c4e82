package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	tmpl := Default()

	require.NoError(t, tmpl.Validate())
	assert.Equal(t, "ITEMS QUANTITY", tmpl.HeaderText)
	assert.Equal(t, 3, tmpl.Trailing.FromEnd)
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	tmpl, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), tmpl)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := writeRules(t, `
name: compact
customer_index: 4
address_start: 5
trailing_rule:
  name: last-block
  from_end: 1
`)

	tmpl, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "compact", tmpl.Name)
	assert.Equal(t, 4, tmpl.CustomerIndex)
	assert.Equal(t, 5, tmpl.AddressStart)
	assert.Equal(t, TrailingRule{Name: "last-block", FromEnd: 1}, tmpl.Trailing)
	assert.Equal(t, "ITEMS QUANTITY", tmpl.HeaderText)
	assert.Equal(t, 40.0, tmpl.RepositionGap)
}

func TestLoadRejectsInvalidRules(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"negative offset", "customer_index: -1\n", "customer_index must not be negative"},
		{"empty header", "header_text: \"\"\n", "header_text must not be empty"},
		{"negative trailing", "trailing_rule:\n  from_end: -2\n", "trailing_rule.from_end"},
		{"malformed yaml", "customer_index: [\n", "failed to parse rules file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeRules(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateAddressRangeAfterAnchors(t *testing.T) {
	tmpl := Default()
	tmpl.AddressStart = 3

	err := tmpl.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address_start (3) must come after customer_index (3)")
}

func TestValidateErrorOrder(t *testing.T) {
	tmpl := Default()
	tmpl.HeaderText = ""
	tmpl.OrderIndex = -1
	tmpl.MinHeaderIndex = -2
	tmpl.AddressStart = 2

	want := "header_text must not be empty\n" +
		"order_index must not be negative, got -1\n" +
		"min_header_index must not be negative, got -2\n" +
		"address_start (2) must come after ship_to_index (2)\n" +
		"address_start (2) must come after customer_index (3)"
	for i := 0; i < 20; i++ {
		err := tmpl.Validate()
		require.Error(t, err)
		assert.Equal(t, want, err.Error())
	}
}
