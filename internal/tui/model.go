// Package tui is the terminal onboarding wizard: four steps collect a donor
// profile, a spinner covers the generation call, and the journey is rendered
// as Markdown with glamour.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"donorjourney/internal/articulation"
	"donorjourney/internal/journey"
	"donorjourney/internal/logging"
	"donorjourney/internal/session"
	"donorjourney/internal/types"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

type step int

const (
	stepBasics step = iota
	stepInterests
	stepCapacity
	stepChannels
	stepLoading
	stepResult
	stepError
)

// formSteps is the number of input steps shown in the progress header.
const formSteps = 4

var stepTitles = map[step]string{
	stepBasics:    "Tell us about yourself",
	stepInterests: "What causes do you care about?",
	stepCapacity:  "How much would you like to give each month?",
	stepChannels:  "How should we keep in touch?",
}

// stepFields lists the profile fields each step is responsible for, so a
// validation failure can be routed back to the right step.
var stepFields = map[step][]string{
	stepBasics:    {"name", "language"},
	stepInterests: {"interests"},
	stepCapacity:  {"donationCapacity.min", "donationCapacity.max"},
	stepChannels:  {"preferredChannels", "consent"},
}

// journeyMsg carries the outcome of an asynchronous generation.
type journeyMsg struct {
	journey *types.PersonalizedJourney
	err     error
}

// Model is the bubbletea model for the onboarding wizard.
type Model struct {
	ctx    context.Context
	ctl    *session.Controller
	styles Styles

	step    step
	cursor  int
	message string

	name     textinput.Model
	min      textinput.Model
	max      textinput.Model
	language int
	location int

	interests map[types.CauseArea]bool
	channels  map[types.CommunicationChannel]bool
	consent   bool

	spinner  spinner.Model
	renderer *glamour.TermRenderer
	task     *journey.Task
	rendered string
	width    int
	quitting bool
}

// New creates the wizard bound to ctl.
func New(ctx context.Context, ctl *session.Controller, styles Styles) Model {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 80
	name.PromptStyle = styles.Prompt
	name.Focus()

	minAmount := textinput.New()
	minAmount.Placeholder = "Minimum (S$)"
	minAmount.CharLimit = 9
	minAmount.PromptStyle = styles.Prompt

	maxAmount := textinput.New()
	maxAmount.Placeholder = "Maximum (S$)"
	maxAmount.CharLimit = 9
	maxAmount.PromptStyle = styles.Prompt

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	stylePath := "light"
	if styles.Theme.IsDark {
		stylePath = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(stylePath),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		logging.TUI("glamour renderer unavailable, falling back to plain Markdown: %v", err)
		renderer = nil
	}

	return Model{
		ctx:       ctx,
		ctl:       ctl,
		styles:    styles,
		name:      name,
		min:       minAmount,
		max:       maxAmount,
		interests: make(map[types.CauseArea]bool),
		channels:  make(map[types.CommunicationChannel]bool),
		spinner:   sp,
		renderer:  renderer,
		width:     80,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Profile assembles the profile from the current form values.
func (m Model) Profile() types.DonorProfile {
	p := types.DonorProfile{
		Name:     strings.TrimSpace(m.name.Value()),
		Language: types.Languages[m.language],
		Location: types.Regions[m.location],
		DonationCapacity: types.DonationCapacity{
			Min: parseAmount(m.min.Value()),
			Max: parseAmount(m.max.Value()),
		},
		Consent: m.consent,
	}
	for _, a := range types.CauseAreas {
		if m.interests[a] {
			p.Interests = append(p.Interests, a)
		}
	}
	for _, ch := range types.Channels {
		if m.channels[ch] {
			p.PreferredChannels = append(p.PreferredChannels, ch)
		}
	}
	return p
}

func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.step != stepLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case journeyMsg:
		return m.handleResult(msg), nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.step {
		case stepLoading:
			return m, nil
		case stepResult, stepError:
			return m.handleDoneKey(msg)
		default:
			return m.handleFormKey(msg)
		}
	}
	return m, nil
}

// =============================================================================
// FORM STEPS
// =============================================================================

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "enter":
		return m.advance()
	case "esc":
		if m.step > stepBasics {
			m.setStep(m.step - 1)
		}
		return m, nil
	case "up", "shift+tab":
		if m.cursor > 0 {
			m.cursor--
		}
		m.syncFocus()
		return m, nil
	case "down", "tab":
		if m.cursor < m.rows()-1 {
			m.cursor++
		}
		m.syncFocus()
		return m, nil
	}

	switch m.step {
	case stepBasics:
		switch {
		case m.cursor == 1 && (key == "left" || key == "right"):
			m.language = cycle(m.language, len(types.Languages), key == "right")
			return m, nil
		case m.cursor == 2 && (key == "left" || key == "right"):
			m.location = cycle(m.location, len(types.Regions), key == "right")
			return m, nil
		case m.cursor == 0:
			var cmd tea.Cmd
			m.name, cmd = m.name.Update(msg)
			return m, cmd
		}

	case stepInterests:
		if key == " " || key == "x" {
			a := types.CauseAreas[m.cursor]
			m.interests[a] = !m.interests[a]
		}

	case stepCapacity:
		var cmd tea.Cmd
		if m.cursor == 0 {
			m.min, cmd = m.min.Update(msg)
		} else {
			m.max, cmd = m.max.Update(msg)
		}
		return m, cmd

	case stepChannels:
		if key == " " || key == "x" {
			if m.cursor < len(types.Channels) {
				ch := types.Channels[m.cursor]
				m.channels[ch] = !m.channels[ch]
			} else {
				m.consent = !m.consent
			}
		}
	}
	return m, nil
}

func cycle(i, n int, forward bool) int {
	if forward {
		return (i + 1) % n
	}
	return (i - 1 + n) % n
}

// rows is the number of focusable rows on the current step.
func (m Model) rows() int {
	switch m.step {
	case stepBasics:
		return 3
	case stepInterests:
		return len(types.CauseAreas)
	case stepCapacity:
		return 2
	case stepChannels:
		return len(types.Channels) + 1
	}
	return 0
}

func (m *Model) setStep(s step) {
	m.step = s
	m.cursor = 0
	m.syncFocus()
}

func (m *Model) syncFocus() {
	m.name.Blur()
	m.min.Blur()
	m.max.Blur()
	switch {
	case m.step == stepBasics && m.cursor == 0:
		m.name.Focus()
	case m.step == stepCapacity && m.cursor == 0:
		m.min.Focus()
	case m.step == stepCapacity && m.cursor == 1:
		m.max.Focus()
	}
}

// advance validates the fields owned by the current step and moves on; the
// last step submits the profile.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if msg := m.stepError(m.step); msg != "" {
		m.message = msg
		return m, nil
	}
	m.message = ""

	if m.step < stepChannels {
		m.setStep(m.step + 1)
		return m, nil
	}
	return m.submit()
}

// stepError returns the first validation message for fields owned by s.
func (m Model) stepError(s step) string {
	var verr *types.ValidationError
	if !errors.As(m.Profile().WithDefaults().Validate(), &verr) {
		return ""
	}
	for _, f := range stepFields[s] {
		if msg, ok := verr.Fields[f]; ok {
			if f == "consent" {
				return msg
			}
			return fmt.Sprintf("%s %s", fieldLabel(f), msg)
		}
	}
	return ""
}

func fieldLabel(field string) string {
	switch field {
	case "donationCapacity.min":
		return "Minimum"
	case "donationCapacity.max":
		return "Maximum"
	case "preferredChannels":
		return "Channels:"
	case "interests":
		return "Interests:"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	task, err := m.ctl.Start(m.ctx, m.Profile())

	var verr *types.ValidationError
	switch {
	case errors.As(err, &verr):
		for s := stepBasics; s <= stepChannels; s++ {
			if msg := m.stepError(s); msg != "" {
				m.setStep(s)
				m.message = msg
				break
			}
		}
		return m, nil
	case err != nil:
		m.message = err.Error()
		return m, nil
	}

	logging.TUI("Profile submitted, waiting for journey")
	m.task = task
	m.step = stepLoading
	return m, tea.Batch(m.spinner.Tick, waitFor(m.ctx, task))
}

func waitFor(ctx context.Context, task *journey.Task) tea.Cmd {
	return func() tea.Msg {
		j, err := task.Wait(ctx)
		return journeyMsg{journey: j, err: err}
	}
}

// =============================================================================
// RESULT
// =============================================================================

func (m Model) handleResult(msg journeyMsg) Model {
	m.task = nil
	state := m.ctl.Snapshot()
	if state.Screen() != session.ScreenJourney {
		m.step = stepError
		m.message = session.UserMessage
		if state.Failure != nil {
			m.message = state.Failure.Message
		}
		logging.TUI("Generation failed: %v", msg.err)
		return m
	}

	name := ""
	if state.Profile != nil {
		name = state.Profile.Name
	}
	md := articulation.Journey(state.Journey, name)
	m.rendered = md
	if m.renderer != nil {
		if out, err := m.renderer.Render(md); err == nil {
			m.rendered = out
		}
	}
	m.step = stepResult
	m.message = ""
	return m
}

func (m Model) handleDoneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "r":
		if err := m.ctl.Reset(); err != nil {
			m.message = err.Error()
			return m, nil
		}
		fresh := New(m.ctx, m.ctl, m.styles)
		fresh.width = m.width
		return fresh, textinput.Blink
	}
	return m, nil
}
