package packing

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/pyhub-apps/packlist/pkg/block"
	"github.com/pyhub-apps/packlist/pkg/config"
)

// Rewrite replaces the text of the block at Index
type Rewrite struct {
	Index int
	Role  string
	Text  string
}

// Selection lists the block ids to delete and the in-place rewrites
type Selection struct {
	Delete   map[int]bool
	Rewrites []Rewrite
}

// DeleteIDs returns the ids of the delete-set in ascending order
func (s Selection) DeleteIDs() []int {
	ids := make([]int, 0, len(s.Delete))
	for id := range s.Delete {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Select derives the delete-set and rewrites from a classification.
// The address region is the half-open range [AddressStart, header): the header
// itself is never deleted.
func Select(seq block.Sequence, cls Classification, tmpl config.Template) Selection {
	sel := Selection{Delete: make(map[int]bool)}

	if cls.DeleteAddress {
		for i := tmpl.AddressStart; i < cls.HeaderIndex && i < len(seq); i++ {
			sel.Delete[seq[i].ID] = true
		}
	}
	if cls.TrailingIndex >= 0 && cls.TrailingIndex < len(seq) {
		sel.Delete[seq[cls.TrailingIndex].ID] = true
	}

	if i := tmpl.ShipToIndex; i < len(seq) && strings.Contains(seq[i].Text, tmpl.ShipToLabel) {
		sel.Rewrites = append(sel.Rewrites, Rewrite{Index: i, Role: RoleShipTo, Text: tmpl.ShipToLabel})
	}
	if i := tmpl.CustomerIndex; i < len(seq) {
		sel.Rewrites = append(sel.Rewrites, Rewrite{Index: i, Role: RoleCustomer, Text: DedupeName(seq[i].Text)})
	}

	return sel
}

// OrderNumber returns the first number matched by pattern's first group across the
// blocks, or a minute-resolution timestamp when no block matches
func OrderNumber(seq block.Sequence, pattern *regexp.Regexp, now time.Time) string {
	for _, b := range seq {
		if m := pattern.FindStringSubmatch(b.Text); len(m) > 1 {
			return m[1]
		}
	}
	return now.Format("200601021504")
}

func compileOrderPattern(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid order pattern %q: %w", expr, err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("order pattern %q needs a capture group", expr)
	}
	return re, nil
}
