package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobwell/jobsync-be/internal/api/handler"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "job-api-service",
		})
	})

	jobHandler := handler.NewJobHandler(deps)
	dedupHandler := handler.NewDedupHandler(deps)
	cleanupHandler := handler.NewCleanupHandler(deps)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		jobs := v1.Group("/jobs")
		{
			// GET /api/v1/jobs - List active postings with filtering and pagination
			jobs.GET("", jobHandler.ListJobs)

			// GET /api/v1/jobs/:job_id - Get posting details
			jobs.GET("/:job_id", jobHandler.GetJob)
		}

		admin := v1.Group("/admin")
		{
			dedup := admin.Group("/dedup")
			{
				// POST /api/v1/admin/dedup/run - Execute a deduplication pass
				dedup.POST("/run", dedupHandler.RunDedup)

				// GET /api/v1/admin/dedup/stats - Deduplication statistics
				dedup.GET("/stats", dedupHandler.GetDedupStats)

				// GET /api/v1/admin/dedup/preview - Largest duplicate groups
				dedup.GET("/preview", dedupHandler.PreviewDuplicates)
			}

			cleanup := admin.Group("/cleanup")
			{
				// POST /api/v1/admin/cleanup/stale - Mark aged postings stale
				cleanup.POST("/stale", cleanupHandler.MarkStale)

				// POST /api/v1/admin/cleanup/expired - Remove expired postings
				cleanup.POST("/expired", cleanupHandler.DeleteExpired)

				// POST /api/v1/admin/cleanup/reactivate - Restore recently synced postings
				cleanup.POST("/reactivate", cleanupHandler.ReactivateRecent)
			}

			// POST /api/v1/admin/sources/:source/deactivate - Hide a whole source
			admin.POST("/sources/:source/deactivate", cleanupHandler.DeactivateSource)
		}
	}

	return r
}
