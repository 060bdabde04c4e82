package packing

import "github.com/pyhub-apps/packlist/pkg/block"

// Reposition moves the header and every block after it vertically so the header
// lands gap units below the customer block. It returns a new sequence and the
// applied offset. The offset is recomputed on every call, so a second pass over
// its own output is a no-op.
func Reposition(seq block.Sequence, headerIndex, customerIndex int, gap float64) (block.Sequence, float64) {
	out := seq.Clone()
	if headerIndex < 0 || headerIndex >= len(out) || customerIndex < 0 || customerIndex >= len(out) {
		return out, 0
	}

	offset := (out[customerIndex].Y + gap) - out[headerIndex].Y
	for i := headerIndex; i < len(out); i++ {
		out[i].Y += offset
	}
	return out, offset
}
