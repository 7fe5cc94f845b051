// Package config provides the persistent defaults of dircontents.
package config

import (
	"fmt"

	"github.com/aki/dircontents/internal/core/entry"
	"github.com/aki/dircontents/internal/core/listing"
)

// Sort values
const (
	SortLexicographic = "lexicographic"
	SortNatural       = "natural"
	SortReversed      = "reversed"
)

// Links values
const (
	LinksSymlink = "symlink"
	LinksTarget  = "target"
)

// Config holds defaults that command-line flags override
type Config struct {
	ShowHidden    bool   `yaml:"show_hidden" json:"show_hidden"`
	Sort          string `yaml:"sort" json:"sort"`
	ShowSize      bool   `yaml:"show_size" json:"show_size"`
	HumanReadable bool   `yaml:"human_readable" json:"human_readable"`
	SizeBase      int    `yaml:"size_base" json:"size_base"`
	Color         string `yaml:"color" json:"color"`
	Links         string `yaml:"links" json:"links"`
	Width         int    `yaml:"width" json:"width"`
}

// DefaultConfig returns the built-in defaults: sorted, hidden files
// excluded, no sizes, colors when the terminal supports them
func DefaultConfig() *Config {
	return &Config{
		Sort:     SortLexicographic,
		SizeBase: int(listing.Base1024),
		Color:    "auto",
		Links:    LinksSymlink,
	}
}

// applyDefaults fills fields left empty by a partial file
func applyDefaults(c *Config) {
	d := DefaultConfig()
	if c.Sort == "" {
		c.Sort = d.Sort
	}
	if c.SizeBase == 0 {
		c.SizeBase = d.SizeBase
	}
	if c.Color == "" {
		c.Color = d.Color
	}
	if c.Links == "" {
		c.Links = d.Links
	}
}

// Options converts the configuration into listing options
func (c *Config) Options() (listing.Options, error) {
	opts := listing.Options{
		ShowHidden:    c.ShowHidden,
		ShowSize:      c.ShowSize,
		HumanReadable: c.HumanReadable,
	}

	switch c.Sort {
	case SortLexicographic, "":
		opts.Sort = listing.SortLexicographic
	case SortNatural:
		opts.Sort = listing.SortNatural
	case SortReversed:
		opts.Sort = listing.SortReversed
	default:
		return listing.Options{}, fmt.Errorf("unknown sort order: %s", c.Sort)
	}

	switch c.SizeBase {
	case int(listing.Base1024), 0:
		opts.SizeBase = listing.Base1024
	case int(listing.Base1000):
		opts.SizeBase = listing.Base1000
	default:
		return listing.Options{}, fmt.Errorf("size base must be 1000 or 1024, got %d", c.SizeBase)
	}

	switch c.Links {
	case LinksSymlink, "":
		opts.Links = entry.LinkAsSymlink
	case LinksTarget:
		opts.Links = entry.LinkAsTarget
	default:
		return listing.Options{}, fmt.Errorf("unknown links policy: %s", c.Links)
	}

	return opts, nil
}
