package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyhub-apps/packlist/pkg/block"
)

func TestFileDumperWritesNamedDump(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tmp")
	d := FileDumper{Dir: dir}

	path, err := d.Dump("12345_extracted", block.Sequence{{ID: 0, Page: 1, Text: "Order #12345"}})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "12345_extracted.txt"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "· text: Order #12345")
}

func TestEnsureDirPermission(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	parent := t.TempDir()
	require.NoError(t, os.Chmod(parent, 0o500))
	t.Cleanup(func() { os.Chmod(parent, 0o755) })

	err := EnsureDir(filepath.Join(parent, "output"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPermission)
}
