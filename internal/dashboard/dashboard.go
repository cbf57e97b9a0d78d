// Package dashboard serves the NGO analytics view. The figures are static
// sample data; there is no analytics pipeline behind them.
package dashboard

import (
	"encoding/json"
	"fmt"
	"io"
)

// ExportFilename is the download name of the JSON export.
const ExportFilename = "ngo_analytics_export.json"

// Segment is one slice of the donor-interest breakdown.
type Segment struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Performance compares money raised against a campaign's goal. Field names
// are capitalised on the wire to match the chart series labels.
type Performance struct {
	Name      string  `json:"name"`
	Donations float64 `json:"Donations"`
	Goal      float64 `json:"Goal"`
}

// Ratio returns Donations/Goal, or 0 for a zero goal.
func (p Performance) Ratio() float64 {
	if p.Goal <= 0 {
		return 0
	}
	return p.Donations / p.Goal
}

// KPIs are the headline numbers at the top of the dashboard.
type KPIs struct {
	TotalDonors       int     `json:"totalDonors"`
	MonthlyDonations  float64 `json:"monthlyDonations"`
	EngagementRatePct int     `json:"engagementRatePct"`
}

// Dashboard is the full analytics view.
type Dashboard struct {
	KPIs        KPIs          `json:"kpis"`
	Segments    []Segment     `json:"donorSegmentsData"`
	Performance []Performance `json:"campaignPerformanceData"`
}

// Export is the downloadable subset: segments and performance only.
type Export struct {
	DonorSegmentsData       []Segment     `json:"donorSegmentsData"`
	CampaignPerformanceData []Performance `json:"campaignPerformanceData"`
}

// Sample returns the static dashboard. Each call returns fresh slices.
func Sample() Dashboard {
	return Dashboard{
		KPIs: KPIs{
			TotalDonors:       1478,
			MonthlyDonations:  192000,
			EngagementRatePct: 62,
		},
		Segments: []Segment{
			{Name: "Children & Youth", Value: 400, Color: "#8884d8"},
			{Name: "Elderly Care", Value: 300, Color: "#82ca9d"},
			{Name: "Disability Services", Value: 300, Color: "#ffc658"},
			{Name: "Family Support", Value: 200, Color: "#ff8042"},
			{Name: "Other", Value: 278, Color: "#a4de6c"},
		},
		Performance: []Performance{
			{Name: "Bright Start", Donations: 35000, Goal: 100000},
			{Name: "Golden Years", Donations: 15000, Goal: 50000},
			{Name: "Enable & Empower", Donations: 80000, Goal: 150000},
			{Name: "Family Ties", Donations: 22000, Goal: 60000},
			{Name: "Green SG", Donations: 40000, Goal: 120000},
		},
	}
}

// SegmentTotal sums the donor segment counts.
func (d Dashboard) SegmentTotal() int {
	total := 0
	for _, s := range d.Segments {
		total += s.Value
	}
	return total
}

// Export returns the downloadable subset of d.
func (d Dashboard) Export() Export {
	return Export{
		DonorSegmentsData:       d.Segments,
		CampaignPerformanceData: d.Performance,
	}
}

// WriteJSON writes the export document as compact JSON.
func (d Dashboard) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d.Export()); err != nil {
		return fmt.Errorf("encode dashboard export: %w", err)
	}
	return nil
}
