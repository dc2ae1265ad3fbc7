// Package router provides radiator module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/karidea/pr.radiator/internal/poller"
	"github.com/karidea/pr.radiator/internal/radiator/handler"
	settingsrepo "github.com/karidea/pr.radiator/internal/settings/repository"
)

// RegisterRoutes registers radiator module routes.
func RegisterRoutes(r *gin.Engine, p *poller.Poller, settings settingsrepo.Repository, logger *zap.SugaredLogger) {
	h := handler.New(p, settings, logger)

	api := r.Group("/api")
	api.GET("/pullrequests", h.OpenPullRequests)
	api.GET("/recent", h.RecentMerges)
	api.GET("/repositories", h.Repositories)
	api.DELETE("/repositories", h.ResetRepositories)
	api.PUT("/repositories/:name/ignore", h.SetIgnored)
	api.POST("/refresh", h.Refresh)
}
