package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jobwell/jobsync-be/internal/api/dto"
	"github.com/jobwell/jobsync-be/internal/api/storage"
	"github.com/jobwell/jobsync-be/internal/model"
)

// ListJobs handles GET /api/v1/jobs
// Lists active job postings with optional filtering and cursor pagination
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Error("Invalid query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	if req.PageSize <= 0 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	cursor, err := DecodeJobCursor(req.Cursor)
	if err != nil {
		h.logger.Error("Invalid cursor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cursor",
		})
		return
	}

	filter := storage.JobFilter{
		Source:     req.Source,
		SyncStatus: req.SyncStatus,
		PageSize:   req.PageSize,
		Cursor:     cursor,
	}

	jobs, err := h.storage.ListActiveJobs(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list job postings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list job postings",
		})
		return
	}

	hasMore := len(jobs) > req.PageSize
	if hasMore {
		jobs = jobs[:req.PageSize]
	}

	jobResponse := make([]dto.JobDTO, len(jobs))
	for i, job := range jobs {
		jobResponse[i] = toJobDTO(&job)
	}

	var nextCursor string
	if hasMore {
		lastJob := jobs[len(jobs)-1]
		nextCursor = EncodeJobCursor(&storage.JobCursor{
			CreatedAt: lastJob.CreatedAt,
			ID:        lastJob.ID,
		})
	}

	c.JSON(http.StatusOK, dto.ListJobsResponse{
		Jobs:       jobResponse,
		NextCursor: nextCursor,
	})
}

// GetJob handles GET /api/v1/jobs/:job_id
// Retrieves a single job posting
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID := c.Param("job_id")

	if _, err := uuid.Parse(jobID); err != nil {
		h.logger.Error("Invalid job_id format", slog.String("job_id", jobID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "job_id must be a valid UUID",
		})
		return
	}

	job, err := h.storage.GetJobByID(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Job posting not found",
			})
			return
		}
		h.logger.Error("Failed to get job posting", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get job posting",
		})
		return
	}

	c.JSON(http.StatusOK, toJobDTO(job))
}

func toJobDTO(job *model.JobPosting) dto.JobDTO {
	d := dto.JobDTO{
		ID:              job.ID,
		ExternalID:      job.ExternalID,
		Source:          job.Source,
		Title:           job.Title,
		Company:         job.Company,
		Location:        job.Location.String,
		Description:     job.Description,
		CompanyLogo:     job.CompanyLogo.String,
		CompanyURL:      job.CompanyURL.String,
		ApplyURL:        job.ApplyURL.String,
		SalaryCurrency:  job.SalaryCurrency.String,
		ExperienceLevel: job.ExperienceLevel.String,
		Tags:            job.Tags,
		SyncStatus:      job.SyncStatus,
		LastSyncedAt:    job.LastSyncedAt.Format(time.RFC3339),
		CreatedAt:       job.CreatedAt.Format(time.RFC3339),
	}

	if job.SalaryMin.Valid {
		min := job.SalaryMin.Int64
		d.SalaryMin = &min
	}
	if job.SalaryMax.Valid {
		max := job.SalaryMax.Int64
		d.SalaryMax = &max
	}
	if job.PublishedAt.Valid {
		d.PublishedAt = job.PublishedAt.Time.Format(time.RFC3339)
	}

	return d
}
