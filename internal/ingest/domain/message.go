package domain

import "github.com/jobwell/jobsync-be/internal/model"

// BatchMessage is one RabbitMQ message: a batch of raw postings fetched from
// a single source connector.
type BatchMessage struct {
	Source      string                `json:"source"`
	Postings    []model.RawJobPosting `json:"postings"`
	DeliveryTag uint64                `json:"-"`
}
