package handler

import (
	"log/slog"
	"time"

	"github.com/jobwell/jobsync-be/internal/api/storage"
	"github.com/jobwell/jobsync-be/internal/cache"
	"github.com/jobwell/jobsync-be/internal/cleanup"
	"github.com/jobwell/jobsync-be/internal/dedup"
)

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger        *slog.Logger
	Storage       *storage.Storage
	Deduplicator  *dedup.Deduplicator
	Cleaner       *cleanup.Cleaner
	Cache         cache.Cache
	StatsCacheTTL time.Duration
}

// JobHandler handles job listing and retrieval requests
type JobHandler struct {
	logger  *slog.Logger
	storage *storage.Storage
}

// NewJobHandler creates a new JobHandler instance
func NewJobHandler(deps *Dependencies) *JobHandler {
	return &JobHandler{
		logger:  deps.Logger,
		storage: deps.Storage,
	}
}

// DedupHandler handles deduplication admin requests
type DedupHandler struct {
	logger        *slog.Logger
	deduplicator  *dedup.Deduplicator
	cache         cache.Cache
	statsCacheTTL time.Duration
}

// NewDedupHandler creates a new DedupHandler instance
func NewDedupHandler(deps *Dependencies) *DedupHandler {
	return &DedupHandler{
		logger:        deps.Logger,
		deduplicator:  deps.Deduplicator,
		cache:         deps.Cache,
		statsCacheTTL: deps.StatsCacheTTL,
	}
}

// CleanupHandler handles lifecycle maintenance admin requests
type CleanupHandler struct {
	logger  *slog.Logger
	cleaner *cleanup.Cleaner
	cache   cache.Cache
}

// NewCleanupHandler creates a new CleanupHandler instance
func NewCleanupHandler(deps *Dependencies) *CleanupHandler {
	return &CleanupHandler{
		logger:  deps.Logger,
		cleaner: deps.Cleaner,
		cache:   deps.Cache,
	}
}
