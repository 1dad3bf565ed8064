package account_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/outbound/repository/postgres/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	accountColumns = `id, username, password_hash, email, is_superuser, date_joined`

	uniqueViolationCode = "23505"
)

type AccountRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewAccountRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *AccountRepository {
	return &AccountRepository{db: db, log: log, metrics: metrics}
}

func (r *AccountRepository) Create(ctx context.Context, account *model.Account) (*model.Account, error) {
	start := time.Now()
	r.log.Debug("Creating account", slog.String("username", account.Username))

	args := pgx.NamedArgs{
		"username":      account.Username,
		"password_hash": account.PasswordHash,
		"email":         account.Email,
		"is_superuser":  account.IsSuperuser,
		"date_joined":   pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	query := `
		INSERT INTO accounts (username, password_hash, email, is_superuser, date_joined)
		VALUES (@username, @password_hash, @email, @is_superuser, @date_joined)
		RETURNING ` + accountColumns

	created, err := scanAccount(r.db.QueryRow(ctx, query, args))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			r.observe("account_create", start, true)
			r.log.Debug("Username already taken", slog.String("username", account.Username))
			return nil, custom_errors.ErrUsernameTaken
		}
		r.observe("account_create", start, false)
		r.log.Error("Error creating account", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.observe("account_create", start, true)
	return created, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	start := time.Now()
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = @id`

	account, err := scanAccount(r.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.observe("account_get_by_id", start, true)
			r.log.Debug("Account not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		r.observe("account_get_by_id", start, false)
		r.log.Error("Error getting account by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.observe("account_get_by_id", start, true)
	return account, nil
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	start := time.Now()
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE username = @username`

	account, err := scanAccount(r.db.QueryRow(ctx, query, pgx.NamedArgs{"username": username}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.observe("account_get_by_username", start, true)
			r.log.Debug("Account not found by username", slog.String("username", username))
			return nil, custom_errors.ErrUserNotFound
		}
		r.observe("account_get_by_username", start, false)
		r.log.Error("Error getting account by username", slog.String("username", username), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.observe("account_get_by_username", start, true)
	return account, nil
}

func (r *AccountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	start := time.Now()
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE username = @username)`
	if err := r.db.QueryRow(ctx, query, pgx.NamedArgs{"username": username}).Scan(&exists); err != nil {
		r.observe("account_exists", start, false)
		r.log.Error("Error checking username", slog.String("username", username), slog.String("error", err.Error()))
		return false, custom_errors.ErrDatabaseQuery
	}
	r.observe("account_exists", start, true)
	return exists, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]*model.Account, error) {
	start := time.Now()
	rows, err := r.db.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY id`)
	if err != nil {
		r.observe("account_list", start, false)
		r.log.Error("Error listing accounts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			r.observe("account_list", start, false)
			r.log.Error("Error scanning account during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		r.observe("account_list", start, false)
		r.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.observe("account_list", start, true)
	return accounts, nil
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) (*model.Account, error) {
	start := time.Now()
	args := pgx.NamedArgs{"id": id, "password_hash": passwordHash}
	query := `UPDATE accounts SET password_hash = @password_hash WHERE id = @id RETURNING ` + accountColumns

	account, err := scanAccount(r.db.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.observe("account_update_password", start, true)
			return nil, custom_errors.ErrUserNotFound
		}
		r.observe("account_update_password", start, false)
		r.log.Error("Error updating password", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.observe("account_update_password", start, true)
	return account, nil
}

func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	result, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		r.observe("account_delete", start, false)
		r.log.Error("Error deleting account", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	r.observe("account_delete", start, true)
	if result.RowsAffected() == 0 {
		return custom_errors.ErrUserNotFound
	}
	return nil
}

func (r *AccountRepository) observe(queryType string, start time.Time, success bool) {
	r.metrics.IncrementDatabaseQueries(queryType, success)
	r.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func scanAccount(row pgx.Row) (*model.Account, error) {
	var account model.Account
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.Email,
		&account.IsSuperuser,
		&account.DateJoined,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}
