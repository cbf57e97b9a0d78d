package web

import (
	"errors"
	"net/http"

	"donorjourney/internal/catalog"
	"donorjourney/internal/generation"
	"donorjourney/internal/journey"
	"donorjourney/internal/session"
	"donorjourney/internal/types"

	"github.com/gin-gonic/gin"
)

// handleListCampaigns lists the catalog, optionally filtered by ?cause=.
func (s *Server) handleListCampaigns(c *gin.Context) {
	cause, ok := c.GetQuery("cause")
	if !ok {
		c.JSON(http.StatusOK, s.catalog.All())
		return
	}
	area := types.CauseArea(cause)
	if !area.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown cause area: " + cause})
		return
	}
	c.JSON(http.StatusOK, s.catalog.ByCause(area))
}

func (s *Server) handleGetCampaign(c *gin.Context) {
	cp, err := s.catalog.Get(c.Param("id"))
	if errors.Is(err, catalog.ErrCampaignNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cp)
}

// handleCreateJourney generates a journey without touching any session.
func (s *Server) handleCreateJourney(c *gin.Context) {
	var profile types.DonorProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body: " + err.Error()})
		return
	}

	profile = profile.WithDefaults()
	if err := profile.Validate(); err != nil {
		var verr *types.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid profile", "fields": verr.Fields})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	j, err := s.generator.Generate(c.Request.Context(), profile)
	if err != nil {
		_ = c.Error(err)
		kind, ok := journey.KindOf(err)
		if !ok {
			kind = journey.KindService
		}
		var se *generation.ServiceError
		retryable := errors.As(err, &se) && se.Temporary()
		c.JSON(http.StatusBadGateway, gin.H{"error": session.UserMessage, "kind": kind, "retryable": retryable})
		return
	}
	c.JSON(http.StatusOK, j)
}

func (s *Server) handleAPIDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, s.dashboard)
}
