package packing

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/pyhub-apps/packlist/pkg/block"
	"github.com/pyhub-apps/packlist/pkg/config"
)

// Classification holds the anchor positions found in an extracted sequence
type Classification struct {
	HeaderIndex   int
	TrailingIndex int // -1 when the trailing rule does not apply
	DeleteAddress bool
}

// Classify locates the header anchor by exact text and the trailing junk block by
// the template's trailing rule. A missing header is an error; the other checks
// only disable the corresponding deletion.
func Classify(seq block.Sequence, tmpl config.Template, log logrus.FieldLogger) (Classification, error) {
	cls := Classification{HeaderIndex: -1, TrailingIndex: -1}

	cls.HeaderIndex = seq.IndexOfText(tmpl.HeaderText)
	if cls.HeaderIndex < 0 {
		return cls, &AnchorError{Role: RoleHeader, Detail: "no block reads " + strconv.Quote(tmpl.HeaderText)}
	}

	if cls.HeaderIndex >= tmpl.MinHeaderIndex {
		cls.DeleteAddress = true
	} else {
		log.WithFields(logrus.Fields{
			"header_index": cls.HeaderIndex,
			"min_index":    tmpl.MinHeaderIndex,
		}).Warn("header anchor sits too early, skipping address deletion")
	}

	rule := tmpl.Trailing
	switch {
	case rule.FromEnd == 0:
		log.WithField("rule", rule.Name).Debug("trailing rule disabled")
	case len(seq) < rule.FromEnd:
		log.WithFields(logrus.Fields{
			"rule":   rule.Name,
			"blocks": len(seq),
		}).Warn("not enough blocks for the trailing rule, skipping trailing deletion")
	case len(seq)-rule.FromEnd <= cls.HeaderIndex:
		log.WithFields(logrus.Fields{
			"rule":         rule.Name,
			"target":       len(seq) - rule.FromEnd,
			"header_index": cls.HeaderIndex,
		}).Warn("trailing rule points at or before the header anchor, skipping trailing deletion")
	default:
		cls.TrailingIndex = len(seq) - rule.FromEnd
	}

	return cls, nil
}
