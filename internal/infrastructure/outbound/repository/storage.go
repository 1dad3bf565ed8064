package repository

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	ports "blog-service/internal/domain/ports/output"
	account_repository "blog-service/internal/domain/ports/output/account"
	comment_repository "blog-service/internal/domain/ports/output/comment"
	post_repository "blog-service/internal/domain/ports/output/post"
	"blog-service/internal/infrastructure/config"
	account_memory "blog-service/internal/infrastructure/outbound/repository/account/memory"
	account_postgres "blog-service/internal/infrastructure/outbound/repository/account/postgres"
	comment_memory "blog-service/internal/infrastructure/outbound/repository/comment/memory"
	comment_postgres "blog-service/internal/infrastructure/outbound/repository/comment/postgres"
	"blog-service/internal/infrastructure/outbound/repository/memory"
	post_memory "blog-service/internal/infrastructure/outbound/repository/post/memory"
	post_postgres "blog-service/internal/infrastructure/outbound/repository/post/postgres"
	"blog-service/internal/infrastructure/outbound/repository/postgres"
)

// Storage bundles the repositories of one storage driver.
type Storage struct {
	Accounts account_repository.Repository
	Posts    post_repository.Repository
	Comments comment_repository.Repository
	UOW      ports.UnitOfWork

	close func()
}

func (s *Storage) Close() {
	s.close()
}

// Open builds the repositories for the configured driver. The postgres
// driver applies pending migrations first.
func Open(ctx context.Context, cfg *config.Config, log ports.Logger, metrics ports.MetricsProvider) (*Storage, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		log.Warn("Using in-memory storage, data will not survive a restart")
		return NewMemoryStorage(log), nil
	}

	dsn := cfg.Database.DSN()

	migrator, err := postgres.NewMigrator(dsn, log)
	if err != nil {
		return nil, err
	}
	if err := migrator.Up(); err != nil {
		_ = migrator.Close()
		return nil, err
	}
	if err := migrator.Close(); err != nil {
		log.Warn("Failed to close migrator", slog.String("error", err.Error()))
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &Storage{
		Accounts: account_postgres.NewAccountRepository(pool, log, metrics),
		Posts:    post_postgres.NewPostRepository(pool, log, metrics),
		Comments: comment_postgres.NewCommentRepository(pool, log, metrics),
		UOW:      postgres.NewPostgresUOW(pool, log, metrics),
		close:    pool.Close,
	}, nil
}

func NewMemoryStorage(log ports.Logger) *Storage {
	accounts := account_memory.NewAccountRepository(log)
	posts := post_memory.NewPostRepository(log)
	comments := comment_memory.NewCommentRepository(log)
	return &Storage{
		Accounts: accounts,
		Posts:    posts,
		Comments: comments,
		UOW:      memory.NewUnitOfWork(accounts, posts, comments),
		close:    func() {},
	}
}
