// Package handler provides HTTP handlers for the radiator board endpoints.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/karidea/pr.radiator/internal/poller"
	settingsmodel "github.com/karidea/pr.radiator/internal/settings/model"
	settingsrepo "github.com/karidea/pr.radiator/internal/settings/repository"
)

// Board is the poller surface the handler reads from.
type Board interface {
	Snapshot() poller.Snapshot
	Refresh()
	ResetRepositories()
}

// Handler serves the board from poller snapshots and manages the tracked
// repository settings.
type Handler struct {
	poller   Board
	settings settingsrepo.Repository
	logger   *zap.SugaredLogger
}

// New creates a new radiator handler instance.
func New(board Board, settings settingsrepo.Repository, logger *zap.SugaredLogger) *Handler {
	return &Handler{poller: board, settings: settings, logger: logger}
}

// OpenPullRequests handles GET /api/pullrequests.
// Query parameters dependabot, protected and needs_review toggle display
// filters; fetching is unaffected.
func (h *Handler) OpenPullRequests(c *gin.Context) {
	state := h.poller.Snapshot()
	filters := filtersFromQuery(c)

	c.JSON(http.StatusOK, BoardResponse{
		CycleID:      state.CycleID,
		UpdatedAt:    state.UpdatedAt,
		LastError:    state.LastError,
		PullRequests: viewRows(filters.apply(state.Open), time.Now()),
	})
}

// RecentMerges handles GET /api/recent.
func (h *Handler) RecentMerges(c *gin.Context) {
	state := h.poller.Snapshot()

	c.JSON(http.StatusOK, BoardResponse{
		CycleID:      state.CycleID,
		UpdatedAt:    state.UpdatedAt,
		LastError:    state.LastError,
		PullRequests: viewRows(state.Recent, time.Now()),
	})
}

// Repositories handles GET /api/repositories.
func (h *Handler) Repositories(c *gin.Context) {
	repos, err := h.settings.ListRepos(c.Request.Context())
	if err != nil {
		h.logger.Errorw("listing repositories failed", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"repositories": repos})
}

// IgnoreRequest is the body for the ignore toggle.
type IgnoreRequest struct {
	Ignored *bool `json:"ignored" binding:"required"`
}

// SetIgnored handles PUT /api/repositories/:name/ignore.
func (h *Handler) SetIgnored(c *gin.Context) {
	var req IgnoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "ignored is required", http.StatusBadRequest)
		return
	}

	name := c.Param("name")
	if err := h.settings.SetIgnored(c.Request.Context(), name, *req.Ignored); err != nil {
		if errors.Is(err, settingsmodel.ErrRepositoryNotFound) {
			errorResponse(c, "NOT_FOUND", "repository not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("updating ignore flag failed", "name", name, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	// The next cycle picks up the change; trigger one now.
	h.poller.Refresh()
	c.JSON(http.StatusOK, gin.H{"name": name, "ignored": *req.Ignored})
}

// Refresh handles POST /api/refresh.
func (h *Handler) Refresh(c *gin.Context) {
	h.poller.Refresh()
	c.JSON(http.StatusAccepted, gin.H{"status": "refresh queued"})
}

// ResetRepositories handles DELETE /api/repositories. The cached team
// resolution is discarded and rebuilt on the queued cycle.
func (h *Handler) ResetRepositories(c *gin.Context) {
	h.poller.ResetRepositories()
	c.JSON(http.StatusAccepted, gin.H{"status": "repository resolution queued"})
}
