package dashboard

import (
	"fmt"
	"io"

	"donorjourney/internal/logging"

	"github.com/xuri/excelize/v2"
)

// Sheet names in the XLSX export.
const (
	SheetKPIs        = "KPIs"
	SheetSegments    = "Donor Segments"
	SheetPerformance = "Campaign Performance"

	XLSXFilename    = "ngo_analytics_export.xlsx"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// WriteXLSX writes a workbook with one sheet per dataset plus a KPI sheet.
func (d Dashboard) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logging.Get(logging.CategoryDashboard).Warnw("close workbook", "error", err)
		}
	}()

	// The default sheet becomes the KPI sheet.
	if err := f.SetSheetName("Sheet1", SheetKPIs); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	kpis := [][]interface{}{
		{"Metric", "Value"},
		{"Total Donors", d.KPIs.TotalDonors},
		{"Total Donations (This Month)", d.KPIs.MonthlyDonations},
		{"Engagement Rate (%)", d.KPIs.EngagementRatePct},
	}
	if err := writeRows(f, SheetKPIs, kpis); err != nil {
		return err
	}

	segments := [][]interface{}{{"Segment", "Donors", "Color"}}
	for _, s := range d.Segments {
		segments = append(segments, []interface{}{s.Name, s.Value, s.Color})
	}
	if err := addSheet(f, SheetSegments, segments); err != nil {
		return err
	}

	perf := [][]interface{}{{"Campaign", "Donations", "Goal", "Progress"}}
	for _, p := range d.Performance {
		perf = append(perf, []interface{}{p.Name, p.Donations, p.Goal, p.Ratio()})
	}
	if err := addSheet(f, SheetPerformance, perf); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	logging.Dashboard("XLSX export written (%d segments, %d campaigns)", len(d.Segments), len(d.Performance))
	return nil
}

func addSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}
	return writeRows(f, name, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
