// Package catalog holds the canonical campaign list the generation service
// recommends from. A Catalog is built once at startup and is read-only afterwards,
// so it is shared between sessions without locking.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"donorjourney/internal/logging"
	"donorjourney/internal/types"

	"gopkg.in/yaml.v3"
)

var (
	// ErrCampaignNotFound is returned by Get when an id is unknown.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrEmptyCatalog is returned when a catalog would contain no campaigns.
	ErrEmptyCatalog = errors.New("catalog is empty")
)

// Catalog is an immutable, id-indexed campaign list.
type Catalog struct {
	campaigns []types.Campaign
	byID      map[string]int
}

// New builds a catalog from campaigns. Ids must be non-empty and unique.
func New(campaigns []types.Campaign) (*Catalog, error) {
	if len(campaigns) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		campaigns: make([]types.Campaign, len(campaigns)),
		byID:      make(map[string]int, len(campaigns)),
	}
	copy(c.campaigns, campaigns)

	for i, cp := range c.campaigns {
		if cp.ID == "" {
			return nil, fmt.Errorf("campaign %d (%q) has no id", i, cp.Name)
		}
		if _, dup := c.byID[cp.ID]; dup {
			return nil, fmt.Errorf("duplicate campaign id %q", cp.ID)
		}
		if cp.CauseArea != "" && !cp.CauseArea.Valid() {
			return nil, fmt.Errorf("campaign %q has unknown cause area %q", cp.ID, cp.CauseArea)
		}
		c.byID[cp.ID] = i
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(builtin())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// file is the on-disk layout of a catalog override.
type file struct {
	Campaigns []types.Campaign `yaml:"campaigns"`
}

// LoadFile reads a YAML campaign list. Campaigns without an id get
// "campaign-N" by position, matching the built-in numbering.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	for i := range f.Campaigns {
		if f.Campaigns[i].ID == "" {
			f.Campaigns[i].ID = fmt.Sprintf("campaign-%d", i+1)
		}
	}

	c, err := New(f.Campaigns)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	logging.Catalog("Loaded %d campaigns from %s", c.Len(), path)
	return c, nil
}

// Open returns the catalog at path, or the built-in one when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		c := Default()
		logging.Catalog("Using built-in catalog (%d campaigns)", c.Len())
		return c, nil
	}
	return LoadFile(path)
}

// All returns a copy of the campaigns in catalog order.
func (c *Catalog) All() []types.Campaign {
	out := make([]types.Campaign, len(c.campaigns))
	copy(out, c.campaigns)
	return out
}

// Len returns the number of campaigns.
func (c *Catalog) Len() int {
	return len(c.campaigns)
}

// Lookup finds a campaign by exact, case-sensitive id.
func (c *Catalog) Lookup(id string) (types.Campaign, bool) {
	i, ok := c.byID[id]
	if !ok {
		return types.Campaign{}, false
	}
	return c.campaigns[i], true
}

// Get is Lookup with an error for callers that report failures.
func (c *Catalog) Get(id string) (types.Campaign, error) {
	cp, ok := c.Lookup(id)
	if !ok {
		return types.Campaign{}, fmt.Errorf("%w: %s", ErrCampaignNotFound, id)
	}
	return cp, nil
}

// ByCause returns the campaigns classified under area, in catalog order.
func (c *Catalog) ByCause(area types.CauseArea) []types.Campaign {
	out := []types.Campaign{}
	for _, cp := range c.campaigns {
		if cp.CauseArea == area {
			out = append(out, cp)
		}
	}
	return out
}
