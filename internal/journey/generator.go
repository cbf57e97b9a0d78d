package journey

import (
	"context"
	"errors"
	"unicode/utf8"

	"donorjourney/internal/catalog"
	"donorjourney/internal/generation"
	"donorjourney/internal/logging"
	"donorjourney/internal/types"
)

// Generator produces PersonalizedJourneys from donor profiles. It holds no
// per-call state and is safe for concurrent use.
type Generator struct {
	service generation.Service
	catalog *catalog.Catalog
	policy  policy
}

// Option configures a Generator.
type Option func(*Generator)

// WithCanonicalFields keeps the catalog's ngo, imageUrl and fundingStatus for
// matched recommendations instead of letting generated values win.
func WithCanonicalFields(on bool) Option {
	return func(g *Generator) { g.policy.canonicalFields = on }
}

// WithDropUnmatched discards recommendations whose id is not in the catalog.
func WithDropUnmatched(on bool) Option {
	return func(g *Generator) { g.policy.dropUnmatched = on }
}

// NewGenerator creates a Generator over service and cat.
func NewGenerator(service generation.Service, cat *catalog.Catalog, opts ...Option) *Generator {
	g := &Generator{service: service, catalog: cat}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Catalog returns the catalog recommendations are reconciled against.
func (g *Generator) Catalog() *catalog.Catalog {
	return g.catalog
}

// Generate runs one generation attempt. Every failure is a *GenerationError;
// there is no retry and no partial result.
func (g *Generator) Generate(ctx context.Context, profile types.DonorProfile) (*types.PersonalizedJourney, error) {
	req, err := BuildRequest(profile, g.catalog)
	if err != nil {
		logging.JourneyWarn("Request build failed: %v", err)
		return nil, fail(KindRequest, err)
	}

	logging.Journey("Generating journey for %q (%d interests, %d campaigns)",
		profile.Name, len(profile.Interests), len(req.Campaigns))

	raw, err := g.service.Invoke(ctx, req)
	if err != nil {
		var se *generation.ServiceError
		if !errors.As(err, &se) {
			se = &generation.ServiceError{Err: err}
		}
		logging.JourneyWarn("Generation service failed: %v", se)
		return nil, fail(KindService, se)
	}

	wire, gerr := parse(raw)
	if gerr != nil {
		logging.JourneyWarn("Generation response rejected (%s): %v", gerr.Kind, gerr.Err)
		logging.JourneyDebug("Rejected response: %s", truncate(raw, 512))
		return nil, gerr
	}

	j := g.assemble(wire)
	for _, f := range Inspect(j, profile) {
		logging.JourneyWarn("Journey check: %s", f)
	}

	logging.Journey("Journey ready: %d campaigns, %d tiers, %d steps",
		len(j.RecommendedCampaigns), len(j.SuggestedDonationTiers), len(j.EngagementPlan))
	return j, nil
}

// Start runs Generate asynchronously.
func (g *Generator) Start(ctx context.Context, profile types.DonorProfile) *Task {
	return Run(func() (*types.PersonalizedJourney, error) {
		return g.Generate(ctx, profile)
	})
}

func (g *Generator) assemble(w *wireJourney) *types.PersonalizedJourney {
	j := &types.PersonalizedJourney{
		WelcomeMessage:       *w.WelcomeMessage,
		RecommendedCampaigns: reconcile(*w.RecommendedCampaigns, g.catalog, g.policy),
	}
	for _, t := range *w.SuggestedDonationTiers {
		j.SuggestedDonationTiers = append(j.SuggestedDonationTiers, t.tier())
	}
	for _, s := range *w.EngagementPlan {
		j.EngagementPlan = append(j.EngagementPlan, s.step())
	}
	return j
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
