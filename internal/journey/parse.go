package journey

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"donorjourney/internal/types"
)

// Wire structs use pointers so an absent field is distinguishable from a zero
// value. Absent fields fail the shape check or are left out of the overlay.

type wireJourney struct {
	WelcomeMessage         *string         `json:"welcomeMessage"`
	RecommendedCampaigns   *[]wireCampaign `json:"recommendedCampaigns"`
	SuggestedDonationTiers *[]wireTier     `json:"suggestedDonationTiers"`
	EngagementPlan         *[]wireStep     `json:"engagementPlan"`
}

type wireCampaign struct {
	ID             *string              `json:"id"`
	Name           *string              `json:"name"`
	NGO            *string              `json:"ngo"`
	CauseArea      *types.CauseArea     `json:"causeArea"`
	Location       *string              `json:"location"`
	Description    *string              `json:"description"`
	FundingStatus  *types.FundingStatus `json:"fundingStatus"`
	TargetAudience *string              `json:"targetAudience"`
	ImageURL       *string              `json:"imageUrl"`
	MatchRationale *string              `json:"matchRationale"`
}

type wireTier struct {
	Level       *types.TierLevel `json:"level"`
	Amount      *float64         `json:"amount"`
	Description *string          `json:"description"`
	Impact      *string          `json:"impact"`
}

type wireStep struct {
	Week           *float64                    `json:"week"`
	Channel        *types.CommunicationChannel `json:"channel"`
	Topic          *string                     `json:"topic"`
	ContentSnippet *string                     `json:"contentSnippet"`
}

// parse decodes the raw service text. Invalid JSON is KindMalformed; JSON
// with a missing or mistyped required field is KindShape.
func parse(raw string) (*wireJourney, *GenerationError) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, fail(KindMalformed, errors.New("empty response"))
	}

	var w wireJourney
	if err := json.Unmarshal([]byte(text), &w); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fail(KindShape, &ShapeError{
				Path:   orRoot(typeErr.Field),
				Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			})
		}
		return nil, fail(KindMalformed, fmt.Errorf("invalid JSON: %w", err))
	}

	if err := w.check(); err != nil {
		return nil, fail(KindShape, err)
	}
	return &w, nil
}

// check verifies every required field is present, at every array item.
func (w *wireJourney) check() *ShapeError {
	switch {
	case w.WelcomeMessage == nil:
		return missing("welcomeMessage")
	case w.RecommendedCampaigns == nil:
		return missing("recommendedCampaigns")
	case w.SuggestedDonationTiers == nil:
		return missing("suggestedDonationTiers")
	case w.EngagementPlan == nil:
		return missing("engagementPlan")
	}

	for i, c := range *w.RecommendedCampaigns {
		present := []bool{c.ID != nil, c.Name != nil, c.NGO != nil, c.CauseArea != nil,
			c.Description != nil, c.ImageURL != nil, c.MatchRationale != nil}
		if err := firstMissing("recommendedCampaigns", i, requiredCampaign, present); err != nil {
			return err
		}
	}
	for i, t := range *w.SuggestedDonationTiers {
		present := []bool{t.Level != nil, t.Amount != nil, t.Description != nil, t.Impact != nil}
		if err := firstMissing("suggestedDonationTiers", i, requiredTier, present); err != nil {
			return err
		}
	}
	for i, s := range *w.EngagementPlan {
		present := []bool{s.Week != nil, s.Channel != nil, s.Topic != nil, s.ContentSnippet != nil}
		if err := firstMissing("engagementPlan", i, requiredStep, present); err != nil {
			return err
		}
	}
	return nil
}

func orRoot(path string) string {
	if path == "" {
		return "$"
	}
	return path
}

func missing(path string) *ShapeError {
	return &ShapeError{Path: path}
}

func firstMissing(array string, index int, fields []string, present []bool) *ShapeError {
	for j, ok := range present {
		if !ok {
			return missing(fmt.Sprintf("%s[%d].%s", array, index, fields[j]))
		}
	}
	return nil
}

func (t wireTier) tier() types.DonationTier {
	return types.DonationTier{
		Level:       *t.Level,
		Amount:      *t.Amount,
		Description: *t.Description,
		Impact:      *t.Impact,
	}
}

func (s wireStep) step() types.JourneyStep {
	return types.JourneyStep{
		Week:           int(math.Round(*s.Week)),
		Channel:        *s.Channel,
		Topic:          *s.Topic,
		ContentSnippet: *s.ContentSnippet,
	}
}
