package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jobwell/jobsync-be/internal/api/dto"
	"github.com/jobwell/jobsync-be/internal/cache"
)

// MarkStale handles POST /api/v1/admin/cleanup/stale
// Flags active postings older than the threshold as stale
func (h *CleanupHandler) MarkStale(c *gin.Context) {
	days, ok := h.parseDays(c, "older_than_days")
	if !ok {
		return
	}

	count, err := h.cleaner.MarkStale(c.Request.Context(), days)
	if err != nil {
		h.logger.Error("Failed to mark stale postings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to mark stale postings",
		})
		return
	}

	c.JSON(http.StatusOK, dto.CleanupResponse{Affected: count})
}

// DeleteExpired handles POST /api/v1/admin/cleanup/expired
// Removes stale postings older than the threshold, unless referenced
func (h *CleanupHandler) DeleteExpired(c *gin.Context) {
	days, ok := h.parseDays(c, "older_than_days")
	if !ok {
		return
	}

	count, err := h.cleaner.DeleteExpired(c.Request.Context(), days)
	if err != nil {
		h.logger.Error("Failed to delete expired postings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete expired postings",
		})
		return
	}

	if count > 0 {
		h.invalidateStats(c)
	}

	c.JSON(http.StatusOK, dto.CleanupResponse{Affected: count})
}

// DeactivateSource handles POST /api/v1/admin/sources/:source/deactivate
// Hides every active posting from a source
func (h *CleanupHandler) DeactivateSource(c *gin.Context) {
	source := c.Param("source")
	if source == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "source is required",
		})
		return
	}

	count, err := h.cleaner.DeactivateSource(c.Request.Context(), source)
	if err != nil {
		h.logger.Error("Failed to deactivate source", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to deactivate source",
		})
		return
	}

	c.JSON(http.StatusOK, dto.CleanupResponse{Affected: count})
}

// ReactivateRecent handles POST /api/v1/admin/cleanup/reactivate
// Restores stale postings that synced again within the window
func (h *CleanupHandler) ReactivateRecent(c *gin.Context) {
	days, ok := h.parseDays(c, "since_days")
	if !ok {
		return
	}

	count, err := h.cleaner.ReactivateRecent(c.Request.Context(), days)
	if err != nil {
		h.logger.Error("Failed to reactivate postings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to reactivate postings",
		})
		return
	}

	c.JSON(http.StatusOK, dto.CleanupResponse{Affected: count})
}

// parseDays reads an optional positive day-count query parameter. Zero means
// "use the cleaner's default".
func (h *CleanupHandler) parseDays(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": name + " must be a positive integer",
		})
		return 0, false
	}

	return days, true
}

func (h *CleanupHandler) invalidateStats(c *gin.Context) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Delete(c.Request.Context(), cache.KeyDedupStats); err != nil {
		h.logger.Warn("Failed to invalidate stats cache", slog.String("error", err.Error()))
	}
}
