package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"donorjourney/internal/catalog"
	"donorjourney/internal/generation"
	"donorjourney/internal/journey"
	"donorjourney/internal/session"
	"donorjourney/internal/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

func keyType(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func newModel(t *testing.T, svc generation.Service) (Model, *session.Controller) {
	t.Helper()
	ctl := session.NewController(journey.NewGenerator(svc, catalog.Default()))
	return New(context.Background(), ctl, NewStyles(LightTheme())), ctl
}

// fillForm walks every step with a valid profile and stops on the channels step.
func fillForm(m Model) Model {
	m = send(m, runes("Alex"), keyType(tea.KeyEnter))
	m = send(m, keyType(tea.KeySpace), keyType(tea.KeyEnter))
	m = send(m, runes("10"), keyType(tea.KeyDown), runes("50"), keyType(tea.KeyEnter))
	m = send(m, keyType(tea.KeySpace))
	for range types.Channels {
		m = send(m, keyType(tea.KeyDown))
	}
	return send(m, keyType(tea.KeySpace))
}

func waitResult(t *testing.T, m Model) Model {
	t.Helper()
	require.NotNil(t, m.task)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	j, err := m.task.Wait(ctx)
	return send(m, journeyMsg{journey: j, err: err})
}

func TestWizardCollectsProfile(t *testing.T) {
	m, _ := newModel(t, generation.NewOfflineService())
	m = fillForm(m)

	assert.Equal(t, stepChannels, m.step)
	p := m.Profile()
	assert.Equal(t, "Alex", p.Name)
	assert.Equal(t, types.LanguageEnglish, p.Language)
	assert.Equal(t, types.DefaultLocation, p.Location)
	assert.Equal(t, []types.CauseArea{types.CauseAreas[0]}, p.Interests)
	assert.Equal(t, types.DonationCapacity{Min: 10, Max: 50}, p.DonationCapacity)
	assert.Equal(t, []types.CommunicationChannel{types.Channels[0]}, p.PreferredChannels)
	assert.True(t, p.Consent)
}

func TestBasicsCyclesLanguageAndLocation(t *testing.T) {
	m, _ := newModel(t, generation.NewOfflineService())
	m = send(m, keyType(tea.KeyDown), keyType(tea.KeyRight))
	assert.Equal(t, types.Languages[1], m.Profile().Language)

	m = send(m, keyType(tea.KeyLeft), keyType(tea.KeyLeft))
	assert.Equal(t, types.Languages[len(types.Languages)-1], m.Profile().Language)

	m = send(m, keyType(tea.KeyDown), keyType(tea.KeyRight))
	assert.Equal(t, types.Regions[1], m.Profile().Location)
}

func TestStepValidationBlocksAdvance(t *testing.T) {
	m, _ := newModel(t, generation.NewOfflineService())

	m = send(m, keyType(tea.KeyEnter))
	assert.Equal(t, stepBasics, m.step)
	assert.Equal(t, "Name is required", m.message)

	m = send(m, runes("Alex"), keyType(tea.KeyEnter))
	assert.Equal(t, stepInterests, m.step)
	assert.Empty(t, m.message)

	m = send(m, keyType(tea.KeyEnter))
	assert.Equal(t, stepInterests, m.step)
	assert.Equal(t, "Interests: select at least one", m.message)

	m = send(m, keyType(tea.KeySpace), keyType(tea.KeyEnter))
	m = send(m, runes("50"), keyType(tea.KeyDown), runes("10"), keyType(tea.KeyEnter))
	assert.Equal(t, stepCapacity, m.step)
	assert.Equal(t, "Maximum must not be less than the minimum", m.message)

	m = send(m, keyType(tea.KeyEsc))
	assert.Equal(t, stepInterests, m.step)
}

func TestConsentRequiredBeforeSubmit(t *testing.T) {
	m, ctl := newModel(t, generation.NewOfflineService())
	m = fillForm(m)
	m = send(m, keyType(tea.KeySpace)) // untick consent
	m = send(m, keyType(tea.KeyEnter))

	assert.Equal(t, stepChannels, m.step)
	assert.Equal(t, "consent must be given before submitting", m.message)
	assert.Nil(t, m.task)
	assert.Equal(t, session.ScreenOnboarding, ctl.Screen())
}

func TestSubmitRendersJourney(t *testing.T) {
	m, ctl := newModel(t, generation.NewOfflineService())
	m = send(fillForm(m), keyType(tea.KeyEnter))
	require.Equal(t, stepLoading, m.step)
	assert.Contains(t, m.View(), "Crafting your personalized journey")

	// Keys are ignored while loading.
	m = send(m, runes("r"))
	assert.Equal(t, stepLoading, m.step)

	m = waitResult(t, m)
	assert.Equal(t, stepResult, m.step)
	assert.Equal(t, session.ScreenJourney, ctl.Screen())
	assert.NotEmpty(t, m.rendered)
	assert.Len(t, ctl.Snapshot().Journey.RecommendedCampaigns, 3)
	assert.Nil(t, m.task)
}

func TestFailureShowsMessageAndStartsOver(t *testing.T) {
	svc := generation.ServiceFunc(func(context.Context, generation.Request) (string, error) {
		return "", errors.New("quota exceeded")
	})
	m, ctl := newModel(t, svc)
	m = waitResult(t, send(fillForm(m), keyType(tea.KeyEnter)))

	assert.Equal(t, stepError, m.step)
	assert.Equal(t, session.UserMessage, m.message)
	assert.True(t, strings.Contains(m.View(), "Oops! Something went wrong."))

	m = send(m, runes("r"))
	assert.Equal(t, stepBasics, m.step)
	assert.Empty(t, m.Profile().Name)
	assert.Equal(t, session.ScreenOnboarding, ctl.Screen())
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t, generation.NewOfflineService())
	next, cmd := m.Update(keyType(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.(Model).View())
}

func TestViewShowsStepProgress(t *testing.T) {
	m, _ := newModel(t, generation.NewOfflineService())
	assert.Contains(t, m.View(), "Step 1 of 4")
	assert.Contains(t, m.View(), "Tell us about yourself")

	m = send(m, runes("Alex"), keyType(tea.KeyEnter))
	v := m.View()
	assert.Contains(t, v, "Step 2 of 4")
	for _, a := range types.CauseAreas {
		assert.Contains(t, v, string(a))
	}
}

func TestDetectTheme(t *testing.T) {
	t.Setenv("JOURNEY_DARK_MODE", "")
	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, DetectTheme().IsDark)

	t.Setenv("COLORFGBG", "0;15")
	assert.False(t, DetectTheme().IsDark)

	t.Setenv("JOURNEY_DARK_MODE", "1")
	assert.True(t, DetectTheme().IsDark)
}
