package dto

import (
	"time"

	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
)

// CreateCommentRequest defines the data needed to attach a comment to a record.
type CreateCommentRequest struct {
	Description string `json:"description" binding:"required,max=1000"`
}

// UpdateCommentRequest defines the data allowed for updating a comment.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateCommentRequest struct {
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// CommentResponse is the API representation of a comment.
type CommentResponse struct {
	CommentID   string    `json:"commentID"`
	RecordID    string    `json:"recordID"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListCommentsResponse wraps the list of comments on a record.
type ListCommentsResponse struct {
	Comments []CommentResponse `json:"comments"`
}

// ToCommentResponse converts a domain.Comment to a CommentResponse DTO
func ToCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID:   comment.CommentID,
		RecordID:    comment.RecordID,
		Description: comment.Description,
		CreatedAt:   comment.CreatedAt,
		UpdatedAt:   comment.UpdatedAt,
	}
}

// ToListCommentsResponse converts a slice of domain.Comment to ListCommentsResponse DTO
func ToListCommentsResponse(comments []domain.Comment) ListCommentsResponse {
	out := make([]CommentResponse, len(comments))
	for i := range comments {
		out[i] = ToCommentResponse(&comments[i])
	}
	return ListCommentsResponse{Comments: out}
}
