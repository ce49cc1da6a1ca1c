package handler

import (
	"github.com/mssas/portfolio/internal/config"
	"github.com/mssas/portfolio/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	pages     *service.PageService
	profiles  *service.ProfileService
	analytics *service.AnalyticsService
	votes     *service.VoteService
	stats     *service.StatsService
	links     config.ExternalLinks
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, links config.ExternalLinks) *API {
	return &API{
		db:        gdb,
		pages:     service.NewPageService(gdb),
		profiles:  service.NewProfileService(gdb),
		analytics: service.NewAnalyticsService(gdb),
		votes:     service.NewVoteService(gdb),
		stats:     service.NewStatsService(gdb),
		links:     links,
	}
}
