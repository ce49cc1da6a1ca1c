package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mssas/portfolio/internal/service"
)

// renderContext carries the identities resolved for the current render pass.
type renderContext struct {
	VisitorID string
	SessionID string
}

// trackPageView runs the per-render analytics pass: resolve identities, touch
// the session, then let the page timer close the previous page and log the
// page_view on transitions. Telemetry failures are attached to the context and
// never block rendering; only identity resolution may abort the request.
func (a *API) trackPageView(c *gin.Context, page string) (renderContext, bool) {
	now := time.Now().UTC()

	visitorID, ok := a.resolveVisitorID(c)
	if !ok {
		return renderContext{}, false
	}
	sessionID, ok := a.resolveSessionID(c, visitorID, now)
	if !ok {
		return renderContext{}, false
	}

	if err := a.analytics.TouchSession(sessionID, now); err != nil {
		c.Error(err)
	}

	sess := a.browserSession(c)
	timer := service.PageTimer{}
	if prev, ok := sess.Get(timerPageKey).(string); ok {
		timer.Page = prev
	}
	if entered, ok := sess.Get(timerEnterKey).(int64); ok {
		timer.EnteredAt = entered
	}

	next, err := a.analytics.Transition(visitorID, sessionID, timer, page, now)
	if err != nil {
		c.Error(err)
	}

	if next != timer {
		sess.Set(timerPageKey, next.Page)
		sess.Set(timerEnterKey, next.EnteredAt)
		if err := sess.Save(); err != nil {
			c.Error(err)
		}
	}

	return renderContext{VisitorID: visitorID, SessionID: sessionID}, true
}
