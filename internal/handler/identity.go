package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Session cookie names used by the router middleware.
const (
	VisitorSessionName = "pf_visitor"
	BrowserSessionName = "pf_session"
)

const (
	visitorCookieMaxAge = 365 * 24 * 60 * 60

	visitorIDKey  = "visitor_id"
	sessionIDKey  = "session_id"
	timerPageKey  = "current_page"
	timerEnterKey = "page_enter_ts"
)

// resolveVisitorID returns the durable visitor token from the encrypted cookie,
// generating and persisting a fresh one on first visit. A failure to persist
// aborts the request: rendering with an unstable identity would break the
// one-vote-per-visitor guarantee.
func (a *API) resolveVisitorID(c *gin.Context) (string, bool) {
	sess := sessions.DefaultMany(c, VisitorSessionName)
	if id, ok := sess.Get(visitorIDKey).(string); ok && strings.TrimSpace(id) != "" {
		return id, true
	}

	id := uuid.NewString()
	sess.Options(sessions.Options{
		Path:     "/",
		MaxAge:   visitorCookieMaxAge,
		HttpOnly: true,
		Secure:   c.Request.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	sess.Set(visitorIDKey, id)
	if err := sess.Save(); err != nil {
		c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return "", false
	}

	return id, true
}

// browserSession returns the browsing-context session with cookie options
// applied. The cookie carries no max age, so it dies with the browser tab
// context; options are reapplied on every save path.
func (a *API) browserSession(c *gin.Context) sessions.Session {
	sess := sessions.DefaultMany(c, BrowserSessionName)
	sess.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Request.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

// resolveSessionID returns the per-browsing-session token from the session
// cookie, generating one and registering the session row the first time.
func (a *API) resolveSessionID(c *gin.Context, visitorID string, now time.Time) (string, bool) {
	sess := a.browserSession(c)
	if id, ok := sess.Get(sessionIDKey).(string); ok && id != "" {
		return id, true
	}

	id := uuid.NewString()
	sess.Set(sessionIDKey, id)
	if err := sess.Save(); err != nil {
		c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return "", false
	}

	if err := a.analytics.EnsureSession(visitorID, id, now); err != nil {
		c.Error(err) // 登记失败不阻断渲染
	}

	return id, true
}
