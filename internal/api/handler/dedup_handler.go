package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jobwell/jobsync-be/internal/api/dto"
	"github.com/jobwell/jobsync-be/internal/cache"
	"github.com/jobwell/jobsync-be/internal/dedup"
)

const (
	defaultPreviewLimit = 20
	maxPreviewLimit     = 100
)

// RunDedup handles POST /api/v1/admin/dedup/run
// Executes one deduplication pass. A pass already running elsewhere yields 409.
func (h *DedupHandler) RunDedup(c *gin.Context) {
	result, err := h.deduplicator.Run(c.Request.Context())
	if err != nil {
		if errors.Is(err, dedup.ErrAlreadyRunning) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Deduplication already in progress",
			})
			return
		}
		h.logger.Error("Deduplication pass failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Deduplication failed",
		})
		return
	}

	if h.cache != nil {
		if err := h.cache.Delete(c.Request.Context(), cache.KeyDedupStats); err != nil {
			h.logger.Warn("Failed to invalidate stats cache", slog.String("error", err.Error()))
		}
	}

	c.JSON(http.StatusOK, dto.DedupRunResponse{
		Deleted: result.Deleted,
		Kept:    result.Kept,
	})
}

// GetDedupStats handles GET /api/v1/admin/dedup/stats
// Serves cached stats when fresh, recomputing on miss
func (h *DedupHandler) GetDedupStats(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		if raw, ok, err := h.cache.Get(ctx, cache.KeyDedupStats); err != nil {
			h.logger.Warn("Stats cache read failed", slog.String("error", err.Error()))
		} else if ok {
			var stats dedup.Stats
			if err := json.Unmarshal(raw, &stats); err != nil {
				h.logger.Warn("Dropping undecodable stats cache entry", slog.String("error", err.Error()))
			} else {
				c.JSON(http.StatusOK, statsResponse(stats, true))
				return
			}
		}
	}

	stats, err := h.deduplicator.GetStats(ctx)
	if err != nil {
		h.logger.Error("Failed to get dedup stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get deduplication stats",
		})
		return
	}

	if h.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := h.cache.Set(ctx, cache.KeyDedupStats, raw, h.statsCacheTTL); err != nil {
				h.logger.Warn("Stats cache write failed", slog.String("error", err.Error()))
			}
		}
	}

	c.JSON(http.StatusOK, statsResponse(stats, false))
}

// PreviewDuplicates handles GET /api/v1/admin/dedup/preview
// Lists the largest duplicate groups without deleting anything
func (h *DedupHandler) PreviewDuplicates(c *gin.Context) {
	limit := defaultPreviewLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}
	if limit > maxPreviewLimit {
		limit = maxPreviewLimit
	}

	groups, err := h.deduplicator.Preview(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to preview duplicates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to preview duplicates",
		})
		return
	}

	groupResponse := make([]dto.DuplicateGroupDTO, len(groups))
	for i, g := range groups {
		groupResponse[i] = dto.DuplicateGroupDTO{
			Title:          g.Title,
			Company:        g.Company,
			DuplicateCount: g.DuplicateCount,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"groups": groupResponse,
	})
}

func statsResponse(stats dedup.Stats, cached bool) dto.DedupStatsResponse {
	return dto.DedupStatsResponse{
		TotalJobs:               stats.TotalJobs,
		UniqueJobs:              stats.UniqueJobs,
		Duplicates:              stats.Duplicates,
		DuplicatesWithRelations: stats.DuplicatesWithRelations,
		Cached:                  cached,
	}
}
