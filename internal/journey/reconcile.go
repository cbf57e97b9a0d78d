package journey

import (
	"donorjourney/internal/catalog"
	"donorjourney/internal/types"
)

// policy controls how generated campaign fields combine with catalog records.
type policy struct {
	canonicalFields bool
	dropUnmatched   bool
}

// reconcile merges each generated recommendation with the catalog record of
// the same id. The catalog record is the base and every field present in the
// payload overlays it, in payload order. Unmatched ids keep only the payload
// fields and Matched=false, unless dropUnmatched is set.
func reconcile(items []wireCampaign, cat *catalog.Catalog, pol policy) []types.RecommendedCampaign {
	out := make([]types.RecommendedCampaign, 0, len(items))
	for _, item := range items {
		base, ok := cat.Lookup(*item.ID)
		if !ok && pol.dropUnmatched {
			continue
		}

		rc := types.RecommendedCampaign{Campaign: base, Matched: ok}
		item.overlay(&rc.Campaign, ok && pol.canonicalFields)
		if item.MatchRationale != nil {
			rc.MatchRationale = *item.MatchRationale
		}
		out = append(out, rc)
	}
	return out
}

// overlay writes every present field onto c. With keepCanonical the
// catalog-owned facts (ngo, imageUrl, fundingStatus) are left alone.
func (w wireCampaign) overlay(c *types.Campaign, keepCanonical bool) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	set(&c.ID, w.ID)
	set(&c.Name, w.Name)
	if w.CauseArea != nil {
		c.CauseArea = *w.CauseArea
	}
	set(&c.Location, w.Location)
	set(&c.Description, w.Description)
	set(&c.TargetAudience, w.TargetAudience)

	if keepCanonical {
		return
	}
	set(&c.NGO, w.NGO)
	set(&c.ImageURL, w.ImageURL)
	if w.FundingStatus != nil {
		c.FundingStatus = *w.FundingStatus
	}
}
