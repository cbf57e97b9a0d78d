package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"donorjourney/internal/dashboard"
	"donorjourney/internal/logging"
	"donorjourney/internal/session"
	"donorjourney/internal/types"

	"github.com/gin-gonic/gin"
)

// screenPath maps a resolved screen to the page that renders it.
func screenPath(sc session.Screen) string {
	switch sc {
	case session.ScreenLoading, session.ScreenError, session.ScreenJourney:
		return "/journey"
	case session.ScreenDashboard:
		return "/dashboard"
	default:
		return "/onboarding"
	}
}

func (s *Server) handleRoot(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, screenPath(controller(c).Screen()))
}

// =============================================================================
// ONBOARDING
// =============================================================================

type formView struct {
	Profile   types.DonorProfile
	Errors    map[string]string
	Causes    []types.CauseArea
	Channels  []types.CommunicationChannel
	Languages []types.Language
	Regions   []string
}

func newFormView(p types.DonorProfile, errs map[string]string) formView {
	return formView{
		Profile:   p.WithDefaults(),
		Errors:    errs,
		Causes:    types.CauseAreas,
		Channels:  types.Channels,
		Languages: types.Languages,
		Regions:   types.Regions,
	}
}

func (f formView) HasInterest(a types.CauseArea) bool {
	return f.Profile.InterestedIn(a)
}

func (f formView) HasChannel(ch types.CommunicationChannel) bool {
	return f.Profile.PrefersChannel(ch)
}

// Amount renders a capacity bound for an input value, blank when unset.
func (f formView) Amount(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (s *Server) handleOnboardingForm(c *gin.Context) {
	ctl := controller(c)
	if err := ctl.Navigate(session.ViewOnboarding); err != nil && !errors.Is(err, session.ErrBusy) {
		_ = c.Error(err)
	}

	state := ctl.Snapshot()
	if sc := state.Screen(); sc != session.ScreenOnboarding {
		c.Redirect(http.StatusSeeOther, screenPath(sc))
		return
	}

	var p types.DonorProfile
	if state.Profile != nil {
		p = *state.Profile
	}
	c.HTML(http.StatusOK, "onboarding.tmpl", newFormView(p, nil))
}

func (s *Server) handleOnboardingSubmit(c *gin.Context) {
	ctl := controller(c)
	profile := profileFromForm(c)

	// The generation outlives this request; the page polls for the result.
	_, err := ctl.Start(context.WithoutCancel(c.Request.Context()), profile)

	var verr *types.ValidationError
	switch {
	case errors.As(err, &verr):
		c.HTML(http.StatusUnprocessableEntity, "onboarding.tmpl", newFormView(profile, verr.Fields))
	case errors.Is(err, session.ErrBusy):
		c.Redirect(http.StatusSeeOther, "/journey")
	case err != nil:
		_ = c.Error(err)
		c.Redirect(http.StatusSeeOther, "/journey")
	default:
		logging.Get(logging.CategoryHTTP).Debugw("generation started", "request_id", c.GetString(ctxRequestID))
		c.Redirect(http.StatusSeeOther, "/journey")
	}
}

func profileFromForm(c *gin.Context) types.DonorProfile {
	p := types.DonorProfile{
		Name:     strings.TrimSpace(c.PostForm("name")),
		Language: types.Language(c.PostForm("language")),
		Location: strings.TrimSpace(c.PostForm("location")),
		DonationCapacity: types.DonationCapacity{
			Min: parseAmount(c.PostForm("min")),
			Max: parseAmount(c.PostForm("max")),
		},
		Consent: isChecked(c.PostForm("consent")),
	}
	for _, v := range c.PostFormArray("interests") {
		p.Interests = append(p.Interests, types.CauseArea(v))
	}
	for _, v := range c.PostFormArray("channels") {
		p.PreferredChannels = append(p.PreferredChannels, types.CommunicationChannel(v))
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

func isChecked(v string) bool {
	switch strings.ToLower(v) {
	case "on", "true", "yes", "1":
		return true
	}
	return false
}

// =============================================================================
// JOURNEY
// =============================================================================

type journeyView struct {
	Name    string
	Journey *types.PersonalizedJourney
}

func (s *Server) handleJourney(c *gin.Context) {
	ctl := controller(c)
	if err := ctl.Navigate(session.ViewJourney); err != nil && !errors.Is(err, session.ErrBusy) {
		_ = c.Error(err)
	}

	state := ctl.Snapshot()
	switch state.Screen() {
	case session.ScreenLoading:
		c.HTML(http.StatusOK, "loading.tmpl", gin.H{})
	case session.ScreenError:
		c.HTML(http.StatusOK, "error.tmpl", gin.H{"Message": state.Failure.Message})
	case session.ScreenJourney:
		view := journeyView{Journey: state.Journey}
		if state.Profile != nil {
			view.Name = state.Profile.Name
		}
		c.HTML(http.StatusOK, "journey.tmpl", view)
	default:
		c.Redirect(http.StatusSeeOther, "/onboarding")
	}
}

// handleReset starts over: the controller is cleared and the session id is
// retired, so the next page gets a fresh session.
func (s *Server) handleReset(c *gin.Context) {
	if err := controller(c).Reset(); err != nil {
		c.Redirect(http.StatusSeeOther, "/journey")
		return
	}
	s.store.Delete(c.GetString(ctxSessionID))
	s.setSessionCookie(c, "", -1)
	c.Redirect(http.StatusSeeOther, "/onboarding")
}

// =============================================================================
// DASHBOARD
// =============================================================================

func (s *Server) handleDashboard(c *gin.Context) {
	ctl := controller(c)
	if err := ctl.Navigate(session.ViewDashboard); err != nil && !errors.Is(err, session.ErrBusy) {
		_ = c.Error(err)
	}
	if sc := ctl.Screen(); sc != session.ScreenDashboard {
		c.Redirect(http.StatusSeeOther, screenPath(sc))
		return
	}
	c.HTML(http.StatusOK, "dashboard.tmpl", s.dashboard)
}

func (s *Server) handleExportJSON(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="`+dashboard.ExportFilename+`"`)
	c.Header("Content-Type", "application/json; charset=utf-8")
	c.Status(http.StatusOK)
	if err := s.dashboard.WriteJSON(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

func (s *Server) handleExportXLSX(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="`+dashboard.XLSXFilename+`"`)
	c.Header("Content-Type", dashboard.XLSXContentType)
	c.Status(http.StatusOK)
	if err := s.dashboard.WriteXLSX(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
