package dashboard

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSample(t *testing.T) {
	d := Sample()
	assert.Equal(t, 1478, d.KPIs.TotalDonors)
	assert.Equal(t, 192000.0, d.KPIs.MonthlyDonations)
	assert.Equal(t, 62, d.KPIs.EngagementRatePct)
	assert.Len(t, d.Segments, 5)
	assert.Len(t, d.Performance, 5)
	assert.Equal(t, d.KPIs.TotalDonors, d.SegmentTotal())

	// Fresh slices per call.
	d.Segments[0].Value = 0
	assert.Equal(t, 400, Sample().Segments[0].Value)
}

func TestPerformanceRatio(t *testing.T) {
	assert.InDelta(t, 0.35, Performance{Donations: 35000, Goal: 100000}.Ratio(), 1e-9)
	assert.Zero(t, Performance{Donations: 10}.Ratio())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Sample().WriteJSON(&buf))

	var doc map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc, 2, "export has exactly two datasets")

	segs := doc["donorSegmentsData"]
	require.Len(t, segs, 5)
	assert.Equal(t, map[string]interface{}{"name": "Children & Youth", "value": 400.0, "color": "#8884d8"}, segs[0])

	perf := doc["campaignPerformanceData"]
	require.Len(t, perf, 5)
	assert.Equal(t, map[string]interface{}{"name": "Bright Start", "Donations": 35000.0, "Goal": 100000.0}, perf[0])
	assert.Contains(t, buf.String(), "Enable & Empower", "ampersands are not escaped")
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Sample().WriteXLSX(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetKPIs, SheetSegments, SheetPerformance}, f.GetSheetList())

	kpis, err := f.GetRows(SheetKPIs)
	require.NoError(t, err)
	require.Len(t, kpis, 4)
	assert.Equal(t, []string{"Total Donors", "1478"}, kpis[1])

	segs, err := f.GetRows(SheetSegments)
	require.NoError(t, err)
	require.Len(t, segs, 6)
	assert.Equal(t, []string{"Segment", "Donors", "Color"}, segs[0])
	assert.Equal(t, []string{"Other", "278", "#a4de6c"}, segs[5])

	perf, err := f.GetRows(SheetPerformance)
	require.NoError(t, err)
	require.Len(t, perf, 6)
	assert.Equal(t, "Green SG", perf[5][0])
	assert.Equal(t, "40000", perf[5][1])
}
