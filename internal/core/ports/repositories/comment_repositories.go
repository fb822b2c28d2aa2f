package repositories

import (
	"context"

	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
)

// CommentReader defines read operations for comment data
type CommentReader interface {
	// FindCommentByID retrieves a specific comment by its unique identifier.
	FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error)

	// ListCommentsByRecord retrieves all comments attached to a record,
	// oldest first.
	ListCommentsByRecord(ctx context.Context, recordID string) ([]domain.Comment, error)
}

// CommentWriter defines write operations for comment data
type CommentWriter interface {
	// SaveComment persists a new comment.
	SaveComment(ctx context.Context, comment domain.Comment) error

	// UpdateComment updates an existing comment's description.
	UpdateComment(ctx context.Context, comment domain.Comment) error

	// DeleteComment removes a comment.
	DeleteComment(ctx context.Context, commentID string) error
}

// CommentRepositoryFacade combines all comment-related repository interfaces
type CommentRepositoryFacade interface {
	CommentReader
	CommentWriter
}
