package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/saiharsha-plivo/money-manager/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    newPgxUserRepository(dbPool),
		AccountRepo: newPgxAccountRepository(dbPool),
		RecordRepo:  newPgxRecordRepository(dbPool),
		CommentRepo: newPgxCommentRepository(dbPool),
	}
}
