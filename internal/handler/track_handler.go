package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mssas/portfolio/internal/db"
	"github.com/mssas/portfolio/internal/service"
)

// TrackClick logs an outbound CTA click and redirects to the external
// destination. The referring page comes from the "from" query parameter and
// defaults to the home page. Logging failures never block the redirect.
func (a *API) TrackClick(c *gin.Context) {
	var eventType, destination string
	switch c.Param("target") {
	case "telegram":
		eventType, destination = db.EventTelegramClick, a.links.Telegram
	case "github":
		eventType, destination = db.EventGitHubClick, a.links.GitHub
	case "resume":
		eventType, destination = db.EventResumeClick, a.links.Resume
	default:
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	now := time.Now().UTC()

	visitorID, ok := a.resolveVisitorID(c)
	if !ok {
		return
	}
	sessionID, ok := a.resolveSessionID(c, visitorID, now)
	if !ok {
		return
	}

	page := strings.TrimSpace(c.Query("from"))
	if page == "" {
		page = service.PageHome
	}

	if err := a.analytics.TouchSession(sessionID, now); err != nil {
		c.Error(err)
	}
	if err := a.analytics.LogEvent(visitorID, sessionID, page, eventType, destination); err != nil {
		c.Error(err)
	}

	c.Redirect(http.StatusFound, destination)
}
