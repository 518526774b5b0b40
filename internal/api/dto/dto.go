package dto

// ListJobsRequest is the query surface of GET /api/v1/jobs.
type ListJobsRequest struct {
	Source     string `form:"source"`
	SyncStatus string `form:"sync_status"`
	PageSize   int    `form:"page_size"`
	Cursor     string `form:"cursor"`
}

// ListJobsResponse pages active postings.
type ListJobsResponse struct {
	Jobs       []JobDTO `json:"jobs"`
	NextCursor string   `json:"next_cursor,omitempty"`
}

// JobDTO is the API shape of a job posting.
type JobDTO struct {
	ID              string   `json:"id"`
	ExternalID      string   `json:"external_id"`
	Source          string   `json:"source"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location,omitempty"`
	Description     string   `json:"description"`
	CompanyLogo     string   `json:"company_logo,omitempty"`
	CompanyURL      string   `json:"company_url,omitempty"`
	ApplyURL        string   `json:"apply_url,omitempty"`
	SalaryMin       *int64   `json:"salary_min,omitempty"`
	SalaryMax       *int64   `json:"salary_max,omitempty"`
	SalaryCurrency  string   `json:"salary_currency,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	SyncStatus      string   `json:"sync_status"`
	PublishedAt     string   `json:"published_at,omitempty"`
	LastSyncedAt    string   `json:"last_synced_at"`
	CreatedAt       string   `json:"created_at"`
}

// DedupRunResponse is the outcome of POST /api/v1/admin/dedup/run.
type DedupRunResponse struct {
	Deleted int `json:"deleted"`
	Kept    int `json:"kept"`
}

// DedupStatsResponse is the payload of GET /api/v1/admin/dedup/stats.
type DedupStatsResponse struct {
	TotalJobs               int  `json:"total_jobs"`
	UniqueJobs              int  `json:"unique_jobs"`
	Duplicates              int  `json:"duplicates"`
	DuplicatesWithRelations int  `json:"duplicates_with_relations"`
	Cached                  bool `json:"cached"`
}

// DuplicateGroupDTO is one row of GET /api/v1/admin/dedup/preview.
type DuplicateGroupDTO struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	DuplicateCount int    `json:"duplicate_count"`
}

// CleanupResponse reports a bulk cleanup outcome.
type CleanupResponse struct {
	Affected int64 `json:"affected"`
}
