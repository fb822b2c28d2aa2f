package services

import (
	"context"

	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
	"github.com/saiharsha-plivo/money-manager/internal/dto"
)

// Comment operations are authorized by role at the routing boundary, so no
// principal travels into the service. The service only requires the parent
// record (for create and list) or the comment itself to exist.

// CommentReaderSvc defines read operations for comment data
type CommentReaderSvc interface {
	// ListComments returns all comments on a record.
	ListComments(ctx context.Context, recordID string) ([]domain.Comment, error)
}

// CommentWriterSvc defines write operations for comment data
type CommentWriterSvc interface {
	// CreateComment attaches a comment to an existing record.
	CreateComment(ctx context.Context, recordID string, req dto.CreateCommentRequest) (*domain.Comment, error)

	// UpdateComment patches a comment. Omitted fields keep their stored values.
	UpdateComment(ctx context.Context, commentID string, req dto.UpdateCommentRequest) (*domain.Comment, error)

	// DeleteComment removes a comment.
	DeleteComment(ctx context.Context, commentID string) error
}

// CommentSvcFacade combines all comment-related service interfaces
type CommentSvcFacade interface {
	CommentReaderSvc
	CommentWriterSvc
}
