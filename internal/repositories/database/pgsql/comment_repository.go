package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/saiharsha-plivo/money-manager/internal/apperrors"
	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
	portsrepo "github.com/saiharsha-plivo/money-manager/internal/core/ports/repositories"
)

type PgxCommentRepository struct {
	BaseRepository
}

func newPgxCommentRepository(db *pgxpool.Pool) *PgxCommentRepository {
	return &PgxCommentRepository{BaseRepository{Pool: db}}
}

// Ensure PgxCommentRepository implements portsrepo.CommentRepositoryFacade
var _ portsrepo.CommentRepositoryFacade = (*PgxCommentRepository)(nil)

func (r *PgxCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	query := `
        INSERT INTO comments (comment_id, record_id, description, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.Pool.Exec(ctx, query,
		comment.CommentID,
		comment.RecordID,
		comment.Description,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return nil
}

func (r *PgxCommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	query := `
        SELECT comment_id, record_id, description, created_at, updated_at
        FROM comments
        WHERE comment_id = $1;
    `
	var comment domain.Comment
	err := r.Pool.QueryRow(ctx, query, commentID).Scan(
		&comment.CommentID,
		&comment.RecordID,
		&comment.Description,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find comment by ID %s: %w", commentID, err)
	}
	return &comment, nil
}

func (r *PgxCommentRepository) ListCommentsByRecord(ctx context.Context, recordID string) ([]domain.Comment, error) {
	query := `
        SELECT comment_id, record_id, description, created_at, updated_at
        FROM comments
        WHERE record_id = $1
        ORDER BY created_at;
    `
	rows, err := r.Pool.Query(ctx, query, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments for record %s: %w", recordID, err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var comment domain.Comment
		err := rows.Scan(
			&comment.CommentID,
			&comment.RecordID,
			&comment.Description,
			&comment.CreatedAt,
			&comment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, comment)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", rows.Err())
	}
	return comments, nil
}

func (r *PgxCommentRepository) UpdateComment(ctx context.Context, comment domain.Comment) error {
	query := `
        UPDATE comments
        SET description = $2, updated_at = $3
        WHERE comment_id = $1;
    `
	tag, err := r.Pool.Exec(ctx, query, comment.CommentID, comment.Description, comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update comment %s: %w", comment.CommentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	query := `DELETE FROM comments WHERE comment_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", commentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
