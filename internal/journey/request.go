// Package journey turns a donor profile into a PersonalizedJourney: it builds
// the structured generation request, invokes the generation service, checks the
// response shape and reconciles recommendations with the campaign catalog.
package journey

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"donorjourney/internal/catalog"
	"donorjourney/internal/generation"
	"donorjourney/internal/types"
)

// ErrEmptyCatalog is returned when there are no campaigns to recommend from.
var ErrEmptyCatalog = catalog.ErrEmptyCatalog

// BuildRequest assembles the prompt and response schema for one profile.
// It is pure: equal inputs give deep-equal requests.
func BuildRequest(profile types.DonorProfile, cat *catalog.Catalog) (generation.Request, error) {
	if cat == nil || cat.Len() == 0 {
		return generation.Request{}, ErrEmptyCatalog
	}
	campaigns := cat.All()

	listing, err := campaignListing(campaigns)
	if err != nil {
		return generation.Request{}, fmt.Errorf("encode campaigns: %w", err)
	}

	return generation.Request{
		Prompt:    buildPrompt(profile, listing),
		Schema:    ResponseSchema(),
		Profile:   profile.Clone(),
		Campaigns: campaigns,
	}, nil
}

// campaignListing renders the catalog as indented JSON. HTML escaping is off so
// cause areas like "Arts & Heritage" read naturally.
func campaignListing(campaigns []types.Campaign) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(campaigns); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func buildPrompt(p types.DonorProfile, listing string) string {
	var sb strings.Builder

	sb.WriteString("**Objective:** Create a personalized donor journey for a user in Singapore, based on their profile and a list of available social service campaigns.\n\n")
	sb.WriteString("**Context:** The user is interacting with a platform designed to connect them with causes from organizations like MSF (Ministry of Social and Family Development) and NCSS (National Council of Social Service). The tone should be warm, respectful, and encouraging.\n\n")

	sb.WriteString("**Donor Profile:**\n")
	fmt.Fprintf(&sb, "- Name: %s\n", p.Name)
	fmt.Fprintf(&sb, "- Preferred Language: %s\n", p.Language)
	fmt.Fprintf(&sb, "- Location: %s\n", p.Location)
	fmt.Fprintf(&sb, "- Interests (Cause Areas): %s\n", joinCauses(p.Interests))
	fmt.Fprintf(&sb, "- Monthly Donation Capacity: S$%s - S$%s\n", amount(p.DonationCapacity.Min), amount(p.DonationCapacity.Max))
	fmt.Fprintf(&sb, "- Preferred Communication Channels: %s\n\n", joinChannels(p.PreferredChannels))

	sb.WriteString("**Available Campaigns:**\n")
	sb.WriteString(listing)
	sb.WriteString("\n\n")

	sb.WriteString("**Task:**\n")
	sb.WriteString("Based on the donor's profile and the available campaigns, generate a JSON object that strictly follows the provided schema. The journey should be highly personalized and relevant.\n")
	sb.WriteString("1. **Welcome Message:** Craft a welcome message that greets the donor by name and acknowledges their stated interests.\n")
	sb.WriteString("2. **Recommended Campaigns:** Select the 3-5 most relevant campaigns. Prioritize campaigns that directly match the donor's interests. If there's a location match, consider it a bonus. Provide a clear, concise 'matchRationale' for each.\n")
	sb.WriteString("3. **Suggested Donation Tiers:** Create four donation tiers (Micro, Small, Medium, Macro). The 'amount' for each should be reasonable and fall within the donor's donation capacity. The 'Medium' tier should be around the midpoint of their capacity. The 'impact' statement for each tier must be specific and tied to one of the recommended campaigns.\n")
	sb.WriteString("4. **Engagement Plan:** Design a simple 4-week communication plan. Each week should feature a different topic and use one of the donor's preferred channels.\n\n")
	sb.WriteString("Return ONLY the JSON object.\n")

	return sb.String()
}

// amount formats money the way the onboarding form shows it: no trailing zeros.
func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinCauses(areas []types.CauseArea) string {
	names := make([]string, len(areas))
	for i, a := range areas {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}

func joinChannels(channels []types.CommunicationChannel) string {
	names := make([]string, len(channels))
	for i, ch := range channels {
		names[i] = string(ch)
	}
	return strings.Join(names, ", ")
}
