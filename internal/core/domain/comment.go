package domain

import "time"

// Comment is free text attached to exactly one record.
type Comment struct {
	CommentID   string    `json:"commentID"` // Primary Key (UUID)
	RecordID    string    `json:"recordID"`  // FK -> records.record_id (NON-NULL, immutable)
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
