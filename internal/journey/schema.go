package journey

import (
	"donorjourney/internal/types"

	"google.golang.org/genai"
)

// Counts the response schema asks for.
const (
	MinRecommendations = 3
	MaxRecommendations = 5
	TierCount          = 4
	PlanWeeks          = 4
)

// Required fields per object, shared by the schema and the shape check.
var (
	requiredTopLevel = []string{"welcomeMessage", "recommendedCampaigns", "suggestedDonationTiers", "engagementPlan"}
	requiredCampaign = []string{"id", "name", "ngo", "causeArea", "description", "imageUrl", "matchRationale"}
	requiredTier     = []string{"level", "amount", "description", "impact"}
	requiredStep     = []string{"week", "channel", "topic", "contentSnippet"}
)

// ResponseSchema returns the structured-output schema for a PersonalizedJourney.
// A fresh value is built on every call so callers may not share mutations.
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"welcomeMessage": {
				Type:        genai.TypeString,
				Description: "A warm, personalized welcome message for the donor, mentioning their name and interests.",
			},
			"recommendedCampaigns": {
				Type:        genai.TypeArray,
				Description: "An array of 3 to 5 recommended campaigns that best match the donor's profile. Diversify the recommendations.",
				MinItems:    genai.Ptr[int64](MinRecommendations),
				MaxItems:    genai.Ptr[int64](MaxRecommendations),
				Items:       campaignSchema(),
			},
			"suggestedDonationTiers": {
				Type:        genai.TypeArray,
				Description: "Four suggested donation tiers (Micro, Small, Medium, Macro) with amounts scaled to the donor's capacity. Each tier must have a concrete impact statement.",
				MinItems:    genai.Ptr[int64](TierCount),
				MaxItems:    genai.Ptr[int64](TierCount),
				Items:       tierSchema(),
			},
			"engagementPlan": {
				Type:        genai.TypeArray,
				Description: "A 4-week engagement plan with one step per week. Each step should use one of the donor's preferred communication channels.",
				MinItems:    genai.Ptr[int64](PlanWeeks),
				MaxItems:    genai.Ptr[int64](PlanWeeks),
				Items:       stepSchema(),
			},
		},
		Required:         clone(requiredTopLevel),
		PropertyOrdering: clone(requiredTopLevel),
	}
}

func campaignSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":          {Type: genai.TypeString, Description: "The unique ID of the campaign."},
			"name":        {Type: genai.TypeString, Description: "The name of the campaign."},
			"ngo":         {Type: genai.TypeString, Description: "The NGO running the campaign."},
			"causeArea":   {Type: genai.TypeString, Enum: causeAreaEnum(), Description: "The primary cause area."},
			"description": {Type: genai.TypeString, Description: "A brief description of the campaign."},
			"imageUrl":    {Type: genai.TypeString, Description: "URL for the campaign image."},
			"matchRationale": {
				Type:        genai.TypeString,
				Description: "A concise, user-friendly explanation (1-2 sentences) of why this campaign is a good match for the donor, referencing their specific interests or location.",
			},
		},
		Required:         clone(requiredCampaign),
		PropertyOrdering: clone(requiredCampaign),
	}
}

func tierSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"level":       {Type: genai.TypeString, Enum: tierEnum()},
			"amount":      {Type: genai.TypeNumber, Description: "A suggested donation amount."},
			"description": {Type: genai.TypeString, Description: "A brief, encouraging description for this donation level."},
			"impact": {
				Type:        genai.TypeString,
				Description: "A specific, tangible example of what this donation amount can achieve for a recommended campaign (e.g., 'Provides 10 hot meals for a senior').",
			},
		},
		Required:         clone(requiredTier),
		PropertyOrdering: clone(requiredTier),
	}
}

func stepSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"week":    {Type: genai.TypeInteger},
			"channel": {Type: genai.TypeString, Enum: channelEnum()},
			"topic": {
				Type:        genai.TypeString,
				Description: "The theme or subject of the communication (e.g., 'Impact Story', 'Volunteer Spotlight').",
			},
			"contentSnippet": {Type: genai.TypeString, Description: "A short, engaging snippet of the message content."},
		},
		Required:         clone(requiredStep),
		PropertyOrdering: clone(requiredStep),
	}
}

func causeAreaEnum() []string {
	out := make([]string, len(types.CauseAreas))
	for i, a := range types.CauseAreas {
		out[i] = string(a)
	}
	return out
}

func tierEnum() []string {
	out := make([]string, len(types.TierLevels))
	for i, l := range types.TierLevels {
		out[i] = string(l)
	}
	return out
}

func channelEnum() []string {
	out := make([]string, len(types.Channels))
	for i, ch := range types.Channels {
		out[i] = string(ch)
	}
	return out
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
