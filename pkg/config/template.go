// Package config holds the label template: the fixed offsets, anchor literals and
// layout constants the packing-list pipeline relies on.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TrailingRule names the heuristic that picks one junk block near the end of the label
type TrailingRule struct {
	Name    string `yaml:"name"`
	FromEnd int    `yaml:"from_end"` // 0 disables the rule
}

// Template describes one packing-list layout
type Template struct {
	Name string `yaml:"name"`

	// Fixed positional anchors, zero-based
	OrderIndex    int `yaml:"order_index"`
	ShipToIndex   int `yaml:"ship_to_index"`
	CustomerIndex int `yaml:"customer_index"`
	AddressStart  int `yaml:"address_start"`

	// Address deletion is skipped when the header sits before this index
	MinHeaderIndex int `yaml:"min_header_index"`

	HeaderText   string `yaml:"header_text"`
	HeaderLabel  string `yaml:"header_label"`
	ShipToLabel  string `yaml:"ship_to_label"`
	RegionLabel  string `yaml:"region_label"`
	OrderPattern string `yaml:"order_pattern"`

	HeaderDX      float64 `yaml:"header_dx"`
	RegionDX      float64 `yaml:"region_dx"`
	CountryDY     float64 `yaml:"country_dy"`
	RepositionGap float64 `yaml:"reposition_gap"`

	Trailing TrailingRule `yaml:"trailing_rule"`
}

// Default returns the Shopify packing-list template
func Default() Template {
	return Template{
		Name:           "shopify",
		OrderIndex:     0,
		ShipToIndex:    2,
		CustomerIndex:  3,
		AddressStart:   4,
		MinHeaderIndex: 4,
		HeaderText:     "ITEMS QUANTITY",
		HeaderLabel:    "ITEMS & QUANTITY",
		ShipToLabel:    "SHIP TO",
		RegionLabel:    "Region or Country",
		OrderPattern:   `Order #(\d+)`,
		HeaderDX:       -5,
		RegionDX:       200,
		CountryDY:      20,
		RepositionGap:  40,
		Trailing: TrailingRule{
			Name:    "third-from-last",
			FromEnd: 3,
		},
	}
}

// Load reads a template from a YAML file. Keys absent from the file keep their default.
func Load(path string) (Template, error) {
	tmpl := Default()
	if path == "" {
		return tmpl, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("failed to read rules file: %w", err)
	}
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return Template{}, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	if err := tmpl.Validate(); err != nil {
		return Template{}, fmt.Errorf("invalid rules file %s: %w", path, err)
	}
	return tmpl, nil
}

// Validate checks that the template can drive the pipeline
func (t Template) Validate() error {
	var errs []error
	if t.HeaderText == "" {
		errs = append(errs, errors.New("header_text must not be empty"))
	}
	if t.HeaderLabel == "" {
		errs = append(errs, errors.New("header_label must not be empty"))
	}
	indices := []struct {
		name  string
		value int
	}{
		{"order_index", t.OrderIndex},
		{"ship_to_index", t.ShipToIndex},
		{"customer_index", t.CustomerIndex},
		{"address_start", t.AddressStart},
		{"min_header_index", t.MinHeaderIndex},
	}
	for _, idx := range indices {
		if idx.value < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", idx.name, idx.value))
		}
	}
	// the address range follows the order, ship-to and customer anchors
	for _, idx := range indices[:3] {
		if t.AddressStart <= idx.value {
			errs = append(errs, fmt.Errorf("address_start (%d) must come after %s (%d)", t.AddressStart, idx.name, idx.value))
		}
	}
	if t.Trailing.FromEnd < 0 {
		errs = append(errs, fmt.Errorf("trailing_rule.from_end must not be negative, got %d", t.Trailing.FromEnd))
	}
	return errors.Join(errs...)
}
