package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
	portsrepo "github.com/saiharsha-plivo/money-manager/internal/core/ports/repositories"
	portssvc "github.com/saiharsha-plivo/money-manager/internal/core/ports/services"
	"github.com/saiharsha-plivo/money-manager/internal/dto"
)

// commentServiceImpl implements the CommentSvcFacade interface. Comments are
// role-gated at the routing boundary, not owner-scoped: the service only
// checks that the parent record exists.
type commentServiceImpl struct {
	BaseService
	commentRepo portsrepo.CommentRepositoryFacade
	recordRepo  portsrepo.RecordReader
}

// NewCommentServiceImpl creates a new comment service
func NewCommentServiceImpl(repo portsrepo.CommentRepositoryFacade, recordRepo portsrepo.RecordReader) portssvc.CommentSvcFacade {
	return &commentServiceImpl{
		commentRepo: repo,
		recordRepo:  recordRepo,
	}
}

// Ensure commentServiceImpl implements the CommentSvcFacade interface
var _ portssvc.CommentSvcFacade = (*commentServiceImpl)(nil)

func (s *commentServiceImpl) CreateComment(ctx context.Context, recordID string, req dto.CreateCommentRequest) (*domain.Comment, error) {
	// The parent record must exist; a missing record surfaces as not found
	// before any write happens. Which user owns the record does not matter
	// here, the role gate already ran at the route.
	if _, err := s.recordRepo.FindRecordByID(ctx, recordID); err != nil {
		return nil, err
	}

	now := time.Now()
	comment := domain.Comment{
		CommentID:   uuid.NewString(),
		RecordID:    recordID,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.commentRepo.SaveComment(ctx, comment); err != nil {
		s.LogError(ctx, err, "Failed to save comment",
			slog.String("record_id", recordID))
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	s.LogInfo(ctx, "Comment created",
		slog.String("comment_id", comment.CommentID),
		slog.String("record_id", recordID))
	return &comment, nil
}

func (s *commentServiceImpl) ListComments(ctx context.Context, recordID string) ([]domain.Comment, error) {
	if _, err := s.recordRepo.FindRecordByID(ctx, recordID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListCommentsByRecord(ctx, recordID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list comments",
			slog.String("record_id", recordID))
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (s *commentServiceImpl) UpdateComment(ctx context.Context, commentID string, req dto.UpdateCommentRequest) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	// Patch semantics: only fields present in the request change.
	if req.Description != nil {
		comment.Description = *req.Description
	}
	comment.UpdatedAt = time.Now()

	if err := s.commentRepo.UpdateComment(ctx, *comment); err != nil {
		s.LogError(ctx, err, "Failed to update comment",
			slog.String("comment_id", commentID))
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, commentID string) error {
	if _, err := s.commentRepo.FindCommentByID(ctx, commentID); err != nil {
		return err
	}

	if err := s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		s.LogError(ctx, err, "Failed to delete comment",
			slog.String("comment_id", commentID))
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.LogInfo(ctx, "Comment deleted", slog.String("comment_id", commentID))
	return nil
}
