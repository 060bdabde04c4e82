// Package dts patches device tree sources so the initrd range matches the
// ramdisk image that will be loaded.
package dts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"

	"github.com/sirupsen/logrus"
)

var (
	// ErrInitrdStartMissing is returned when the source has no linux,initrd-start property
	ErrInitrdStartMissing = errors.New("linux,initrd-start not found")
	// ErrFileNotFound is returned when the ramdisk or the device tree source does not exist
	ErrFileNotFound = errors.New("file not found")
)

const cellPair = `\s*=\s*<\s*(0x[0-9a-fA-F]+)\s+(0x[0-9a-fA-F]+)\s*>;`

var (
	initrdStart = regexp.MustCompile(`linux,initrd-start` + cellPair)
	initrdEnd   = regexp.MustCompile(`linux,initrd-end` + cellPair)
)

// Patch is the outcome of rewriting the initrd end address
type Patch struct {
	Start    uint64
	End      uint64
	Replaced int // number of linux,initrd-end properties rewritten
}

// PatchInitrdEnd sets every linux,initrd-end property of src to initrd-start plus size.
// Both properties hold a 64-bit address as a <high low> pair of 32-bit cells.
func PatchInitrdEnd(src string, size int64) (string, Patch, error) {
	if size < 0 {
		return "", Patch{}, fmt.Errorf("invalid ramdisk size %d", size)
	}

	m := initrdStart.FindStringSubmatch(src)
	if m == nil {
		return "", Patch{}, ErrInitrdStartMissing
	}
	high, err := strconv.ParseUint(m[1], 0, 32)
	if err != nil {
		return "", Patch{}, fmt.Errorf("failed to parse initrd-start high cell %s: %w", m[1], err)
	}
	low, err := strconv.ParseUint(m[2], 0, 32)
	if err != nil {
		return "", Patch{}, fmt.Errorf("failed to parse initrd-start low cell %s: %w", m[2], err)
	}

	patch := Patch{Start: high<<32 | low}
	patch.End = patch.Start + uint64(size)
	replacement := fmt.Sprintf("linux,initrd-end = < 0x%08x 0x%08x >;", patch.End>>32, patch.End&0xffffffff)

	patch.Replaced = len(initrdEnd.FindAllStringIndex(src, -1))
	out := initrdEnd.ReplaceAllLiteralString(src, replacement)
	return out, patch, nil
}

// PatchFile rewrites the DTS file at dtsPath in place using the size of the ramdisk image
func PatchFile(dtsPath, ramdiskPath string, log logrus.FieldLogger) (Patch, error) {
	info, err := os.Stat(ramdiskPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Patch{}, fmt.Errorf("%w: %s", ErrFileNotFound, ramdiskPath)
		}
		return Patch{}, fmt.Errorf("failed to stat ramdisk: %w", err)
	}

	data, err := os.ReadFile(dtsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Patch{}, fmt.Errorf("%w: %s", ErrFileNotFound, dtsPath)
		}
		return Patch{}, fmt.Errorf("failed to read DTS file: %w", err)
	}

	out, patch, err := PatchInitrdEnd(string(data), info.Size())
	if err != nil {
		return Patch{}, fmt.Errorf("failed to patch %s: %w", dtsPath, err)
	}

	if err := os.WriteFile(dtsPath, []byte(out), 0o644); err != nil {
		return Patch{}, fmt.Errorf("failed to write DTS file: %w", err)
	}

	if log != nil {
		log.WithFields(logrus.Fields{
			"dts":      dtsPath,
			"ramdisk":  ramdiskPath,
			"size":     fmt.Sprintf("%#x", info.Size()),
			"start":    fmt.Sprintf("%#x", patch.Start),
			"end":      fmt.Sprintf("%#x", patch.End),
			"replaced": patch.Replaced,
		}).Info("patched initrd end")
	}
	return patch, nil
}
