package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"donorjourney/internal/catalog"
	"donorjourney/internal/generation"
	"donorjourney/internal/journey"
	"donorjourney/internal/types"

	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"
)

// catalog opens the configured campaign catalog.
func (c *cli) catalog() (*catalog.Catalog, error) {
	cat, err := catalog.Open(c.cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return cat, nil
}

// generator wires catalog, generation service and reconciliation policy.
func (c *cli) generator(ctx context.Context) (*journey.Generator, error) {
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	cat, err := c.catalog()
	if err != nil {
		return nil, err
	}
	svc, err := generation.NewService(ctx, c.cfg)
	if err != nil {
		return nil, err
	}
	return journey.NewGenerator(svc, cat,
		journey.WithCanonicalFields(c.cfg.Journey.CanonicalFields),
		journey.WithDropUnmatched(c.cfg.Journey.DropUnmatched),
	), nil
}

// readProfile decodes a donor profile from a YAML (or JSON) file; "-" reads stdin.
func readProfile(path string, stdin io.Reader) (types.DonorProfile, error) {
	var p types.DonorProfile

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return p, fmt.Errorf("failed to read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse profile: %w", err)
	}
	return p, nil
}

// renderMarkdown renders md for the terminal, falling back to the raw text.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
