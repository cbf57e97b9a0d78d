package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"donorjourney/internal/catalog"
	"donorjourney/internal/dashboard"
	"donorjourney/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const alexYAML = `name: Alex
interests: ["Children & Youth Services"]
donationCapacity: {min: 10, max: 50}
preferredChannels: [Email]
consent: true
`

// execute runs the root command offline against an empty workspace.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return executeWithConfig(t, "", stdin, args...)
}

// executeWithConfig is execute with cfgYAML written as the config file.
func executeWithConfig(t *testing.T, cfgYAML, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"API_KEY", "GEMINI_API_KEY", "JOURNEY_MODEL", "JOURNEY_CATALOG"} {
		t.Setenv(k, "")
	}
	if os.Getenv("JOURNEY_PROVIDER") == "" {
		t.Setenv("JOURNEY_PROVIDER", "offline")
	}
	dir := t.TempDir()
	if cfgYAML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "journey.yaml"), []byte(cfgYAML), 0o644))
	}

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{
		"--config", filepath.Join(dir, "journey.yaml"),
		"--env-file", filepath.Join(dir, ".env"),
	}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "donorjourney 0.3.0 (offline, gemini-2.5-flash)\n", out)
}

func TestGenerateJSON(t *testing.T) {
	out, err := execute(t, "", "generate", "--json", "--profile", writeProfile(t, alexYAML))
	require.NoError(t, err)

	var j types.PersonalizedJourney
	require.NoError(t, json.Unmarshal([]byte(out), &j))
	assert.Len(t, j.RecommendedCampaigns, 3)
	assert.Len(t, j.SuggestedDonationTiers, 4)
	assert.Len(t, j.EngagementPlan, 4)
	for _, rc := range j.RecommendedCampaigns {
		assert.True(t, rc.Matched, rc.ID)
	}
}

func TestGenerateZeroTimeoutMeansNoLimit(t *testing.T) {
	cfg := "llm:\n  provider: offline\n  timeout: 0s\n"
	out, err := executeWithConfig(t, cfg, "", "generate", "--json", "--profile", writeProfile(t, alexYAML))
	require.NoError(t, err)

	var j types.PersonalizedJourney
	require.NoError(t, json.Unmarshal([]byte(out), &j))
	assert.Len(t, j.RecommendedCampaigns, 3)
}

func TestGenerateMarkdownFromStdin(t *testing.T) {
	out, err := execute(t, alexYAML, "generate", "--markdown", "--profile", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "# Your Giving Journey, Alex")
}

func TestGenerateRejectsInvalidProfile(t *testing.T) {
	path := writeProfile(t, strings.Replace(alexYAML, "consent: true", "consent: false", 1))
	_, err := execute(t, "", "generate", "--profile", path)

	var verr *types.ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.True(t, verr.Has("consent"))
}

func TestGenerateRequiresAPIKeyForGemini(t *testing.T) {
	t.Setenv("JOURNEY_PROVIDER", "gemini")
	_, err := execute(t, "", "generate", "--profile", writeProfile(t, alexYAML))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestGenerateMissingProfileFile(t *testing.T) {
	_, err := execute(t, "", "generate", "--profile", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read profile")
}

func TestPromptWithSchema(t *testing.T) {
	out, err := execute(t, "", "prompt", "--schema", "--profile", writeProfile(t, alexYAML))
	require.NoError(t, err)
	assert.Contains(t, out, "Return ONLY the JSON object.")
	assert.Contains(t, out, "Alex")
	assert.Contains(t, out, `"recommendedCampaigns"`)
}

func TestCatalogJSON(t *testing.T) {
	out, err := execute(t, "", "catalog", "--json")
	require.NoError(t, err)

	var campaigns []types.Campaign
	require.NoError(t, json.Unmarshal([]byte(out), &campaigns))
	assert.Len(t, campaigns, catalog.Default().Len())
}

func TestDashboardExportJSON(t *testing.T) {
	out, err := execute(t, "", "dashboard", "export", "--format", "json", "--out", "-")
	require.NoError(t, err)

	var export dashboard.Export
	require.NoError(t, json.Unmarshal([]byte(out), &export))
	assert.Equal(t, dashboard.Sample().Export(), export)
}

func TestDashboardExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xlsx")
	out, err := execute(t, "", "dashboard", "export", "--format", "xlsx", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), dashboard.SheetKPIs)
	assert.Contains(t, f.GetSheetList(), dashboard.SheetSegments)
	assert.Contains(t, f.GetSheetList(), dashboard.SheetPerformance)
}

func TestDashboardExportUnknownFormat(t *testing.T) {
	_, err := execute(t, "", "dashboard", "export", "--format", "csv", "--out", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown export format "csv"`)
}

func TestConfigInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journey.yaml")
	out, err := execute(t, "", "config", "init", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "gemini-2.5-flash")

	_, err = execute(t, "", "config", "init", "--out", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "", "config", "init", "--out", path, "--force")
	require.NoError(t, err)
}
