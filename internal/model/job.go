package model

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// Sync status values for a job posting's lifecycle.
const (
	SyncStatusActive  = "active"
	SyncStatusStale   = "stale"
	SyncStatusExpired = "expired"
)

// JobPosting is a row in the job_postings table.
type JobPosting struct {
	ID              string         `db:"id"`
	ExternalID      string         `db:"external_id"`
	Source          string         `db:"source"`
	Title           string         `db:"title"`
	Company         string         `db:"company"`
	Location        sql.NullString `db:"location"`
	Description     string         `db:"description"`
	DescriptionHTML sql.NullString `db:"description_html"`
	CompanyLogo     sql.NullString `db:"company_logo"`
	CompanyURL      sql.NullString `db:"company_url"`
	ApplyURL        sql.NullString `db:"apply_url"`
	Requirements    sql.NullString `db:"requirements"`
	Benefits        sql.NullString `db:"benefits"`
	SalaryMin       sql.NullInt64  `db:"salary_min"`
	SalaryMax       sql.NullInt64  `db:"salary_max"`
	SalaryCurrency  sql.NullString `db:"salary_currency"`
	ExperienceLevel sql.NullString `db:"experience_level"`
	Tags            pq.StringArray `db:"tags"`
	IsActive        bool           `db:"is_active"`
	SyncStatus      string         `db:"sync_status"`
	PublishedAt     sql.NullTime   `db:"published_at"`
	LastSyncedAt    time.Time      `db:"last_synced_at"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

// RawJobPosting is the wire shape of a posting as published by a source
// connector, before any normalization.
type RawJobPosting struct {
	ExternalID      string     `json:"external_id"`
	Title           string     `json:"title"`
	Company         string     `json:"company"`
	Location        string     `json:"location"`
	Description     string     `json:"description"`
	DescriptionHTML string     `json:"description_html"`
	CompanyLogo     string     `json:"company_logo"`
	CompanyURL      string     `json:"company_url"`
	ApplyURL        string     `json:"apply_url"`
	Requirements    string     `json:"requirements"`
	Benefits        string     `json:"benefits"`
	SalaryMin       *float64   `json:"salary_min"`
	SalaryMax       *float64   `json:"salary_max"`
	SalaryCurrency  string     `json:"salary_currency"`
	SalaryPeriod    string     `json:"salary_period"`
	ExperienceLevel string     `json:"experience_level"`
	Tags            []string   `json:"tags"`
	PublishedAt     *time.Time `json:"published_at"`
}
