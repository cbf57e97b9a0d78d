package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"donorjourney/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, 8, c.Len())

	first, ok := c.Lookup("campaign-1")
	require.True(t, ok)
	assert.Equal(t, "Bright Start for Every Child", first.Name)
	assert.Equal(t, types.CauseChildren, first.CauseArea)

	last, ok := c.Lookup("campaign-8")
	require.True(t, ok)
	assert.Equal(t, "Green Singapore", last.Name)

	seen := map[types.CauseArea]bool{}
	for _, cp := range c.All() {
		seen[cp.CauseArea] = true
	}
	assert.Len(t, seen, len(types.CauseAreas), "every cause area has a campaign")
}

func TestLookupIsExactAndCaseSensitive(t *testing.T) {
	c := Default()
	_, ok := c.Lookup("Campaign-1")
	assert.False(t, ok)
	_, ok = c.Lookup("campaign-1 ")
	assert.False(t, ok)

	_, err := c.Get("campaign-99")
	assert.True(t, errors.Is(err, ErrCampaignNotFound))
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].Name = "mutated"

	cp, _ := c.Lookup("campaign-1")
	assert.Equal(t, "Bright Start for Every Child", cp.Name)
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = New([]types.Campaign{{Name: "no id"}})
	assert.Error(t, err)

	_, err = New([]types.Campaign{{ID: "a"}, {ID: "a"}})
	assert.ErrorContains(t, err, "duplicate")

	_, err = New([]types.Campaign{{ID: "a", CauseArea: "Astronomy"}})
	assert.ErrorContains(t, err, "unknown cause area")
}

func TestByCause(t *testing.T) {
	c := Default()
	seniors := c.ByCause(types.CauseSeniors)
	require.Len(t, seniors, 1)
	assert.Equal(t, "campaign-2", seniors[0].ID)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaigns.yaml")
	content := `
campaigns:
  - name: Meals on Wheels
    ngo: Food Bank
    causeArea: Elderly Care
    location: Jurong
    fundingStatus: {current: 100, goal: 1000}
  - id: custom-id
    name: Reading Buddies
    causeArea: Children & Youth Services
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	meals, ok := c.Lookup("campaign-1")
	require.True(t, ok)
	assert.Equal(t, "Food Bank", meals.NGO)
	assert.Equal(t, 1000.0, meals.FundingStatus.Goal)

	_, ok = c.Lookup("custom-id")
	assert.True(t, ok)
}

func TestOpen(t *testing.T) {
	c, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, 8, c.Len())

	_, err = Open(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("campaigns: []\n"), 0644))
	_, err = Open(empty)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}
