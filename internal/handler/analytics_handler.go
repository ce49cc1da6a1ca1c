package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mssas/portfolio/internal/service"
)

type pageDurationView struct {
	Page  string
	Clock string
}

// ShowSiteAnalytics renders the analytics page: vote block plus the aggregate
// metrics recomputed on every render.
func (a *API) ShowSiteAnalytics(c *gin.Context) {
	rc, ok := a.trackPageView(c, service.PageAnalytics)
	if !ok {
		return
	}

	likes, dislikes, err := a.votes.Counts()
	if err != nil {
		c.Error(err)
	}
	total := likes + dislikes
	approval := 0.0
	if total > 0 {
		approval = float64(likes) / float64(total) * 100
	}

	voted, err := a.votes.HasVoted(rc.VisitorID)
	if err != nil {
		c.Error(err)
	}

	stats, err := a.stats.Overview()
	if err != nil {
		c.Error(err)
	}

	durations := make([]pageDurationView, 0, len(service.KnownPages))
	for _, page := range service.KnownPages {
		durations = append(durations, pageDurationView{
			Page:  page,
			Clock: service.FormatSeconds(stats.Durations[page]),
		})
	}

	c.HTML(http.StatusOK, "analytics.html", gin.H{
		"title":      "Аналитика сайта",
		"page":       service.PageAnalytics,
		"likes":      likes,
		"dislikes":   dislikes,
		"approval":   approval,
		"voted":      voted,
		"voteNotice": c.Query("vote") == "already",
		"stats":      stats,
		"durations":  durations,
		"visitorID":  rc.VisitorID,
		"sessionID":  rc.SessionID,
		"year":       time.Now().Year(),
	})
}

// CastVote records a like/dislike for the current visitor and redirects back
// to the analytics page. A repeat vote is an expected outcome, not an error;
// the redirect flags it so the page can show a notice.
func (a *API) CastVote(c *gin.Context) {
	visitorID, ok := a.resolveVisitorID(c)
	if !ok {
		return
	}

	result, err := a.votes.Cast(visitorID, c.PostForm("choice"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownChoice) {
			respondError(c, http.StatusBadRequest, "неизвестный вариант голоса")
			return
		}
		c.Error(err) // 写入失败按静默降级处理,页面照常渲染
		c.Redirect(http.StatusSeeOther, "/analytics")
		return
	}

	if result == service.VoteAlreadyCast {
		c.Redirect(http.StatusSeeOther, "/analytics?vote=already")
		return
	}
	c.Redirect(http.StatusSeeOther, "/analytics")
}
