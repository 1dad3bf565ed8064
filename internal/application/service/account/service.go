package account_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	account_repository "blog-service/internal/domain/ports/output/account"
)

type AccountService struct {
	accounts account_repository.Repository
	uow      ports.UnitOfWork
	hasher   ports.PasswordHasher
	log      ports.Logger
	metrics  ports.MetricsProvider
}

func NewAccountService(
	accounts account_repository.Repository,
	uow ports.UnitOfWork,
	hasher ports.PasswordHasher,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *AccountService {
	return &AccountService{
		accounts: accounts,
		uow:      uow,
		hasher:   hasher,
		log:      log,
		metrics:  metrics,
	}
}

func (s *AccountService) Register(ctx context.Context, dto *model.RegisterAccountDTO) (*model.Account, error) {
	exists, err := s.accounts.ExistsByUsername(ctx, dto.Username)
	if err != nil {
		s.metrics.IncrementAccountOperations("register", false)
		return nil, err
	}
	if exists {
		s.log.Debug("Registration rejected, username taken", slog.String("username", dto.Username))
		s.metrics.IncrementAccountOperations("register", false)
		return nil, custom_errors.ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(dto.Password)
	if err != nil {
		s.log.Error("Failed to hash password", slog.String("error", err.Error()))
		s.metrics.IncrementAccountOperations("register", false)
		return nil, custom_errors.ErrPasswordHash
	}

	account, err := s.accounts.Create(ctx, &model.Account{
		Username:     dto.Username,
		PasswordHash: hash,
		Email:        dto.Email,
		IsSuperuser:  dto.IsSuperuser,
	})
	if err != nil {
		s.metrics.IncrementAccountOperations("register", false)
		return nil, err
	}

	s.log.Info("Account registered", slog.Int64("account_id", account.ID), slog.String("username", account.Username))
	s.metrics.IncrementAccountOperations("register", true)
	return account, nil
}

func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*model.Account, error) {
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			return nil, custom_errors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Compare(account.PasswordHash, password) {
		s.log.Debug("Password mismatch", slog.String("username", username))
		return nil, custom_errors.ErrInvalidCredentials
	}
	return account, nil
}

func (s *AccountService) GetAccount(ctx context.Context, id int64) (*model.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

func (s *AccountService) ChangePassword(ctx context.Context, actor *model.Account, targetID int64, password string) (*model.Account, error) {
	target, err := s.accounts.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if !actor.CanModify(target.ID) {
		s.log.Warn("Password change denied",
			slog.Int64("actor_id", actorID(actor)),
			slog.Int64("target_id", targetID))
		s.metrics.IncrementAccountOperations("change_password", false)
		return nil, custom_errors.ErrForbidden
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.log.Error("Failed to hash password", slog.String("error", err.Error()))
		s.metrics.IncrementAccountOperations("change_password", false)
		return nil, custom_errors.ErrPasswordHash
	}

	updated, err := s.accounts.UpdatePassword(ctx, targetID, hash)
	if err != nil {
		s.metrics.IncrementAccountOperations("change_password", false)
		return nil, err
	}

	s.log.Info("Password changed", slog.Int64("actor_id", actor.ID), slog.Int64("target_id", targetID))
	s.metrics.IncrementAccountOperations("change_password", true)
	return updated, nil
}

// DeleteAccount removes the target account together with its posts, the
// comments on those posts and the comments it wrote elsewhere.
func (s *AccountService) DeleteAccount(ctx context.Context, actor *model.Account, targetID int64) (err error) {
	target, err := s.accounts.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if !actor.CanModify(target.ID) {
		s.log.Warn("Account deletion denied",
			slog.Int64("actor_id", actorID(actor)),
			slog.Int64("target_id", targetID))
		s.metrics.IncrementAccountOperations("delete", false)
		return custom_errors.ErrForbidden
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseTransaction
	}

	var committed bool
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !strings.Contains(rbErr.Error(), "tx is closed") {
				s.log.Error("Failed to rollback transaction", slog.String("error", rbErr.Error()))
			}
			s.metrics.IncrementAccountOperations("delete", false)
		}
	}()

	posts, err := tx.PostRepository().GetByAuthor(ctx, targetID)
	if err != nil {
		return err
	}
	for _, post := range posts {
		if err = tx.CommentRepository().DeleteByPost(ctx, post.ID); err != nil {
			return err
		}
		if err = tx.PostRepository().Delete(ctx, post.ID); err != nil {
			return err
		}
	}
	if err = tx.CommentRepository().DeleteByAuthor(ctx, targetID); err != nil {
		return err
	}
	if err = tx.AccountRepository().Delete(ctx, targetID); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit account deletion", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseTransaction
	}
	committed = true

	s.log.Info("Account deleted",
		slog.Int64("actor_id", actor.ID),
		slog.Int64("target_id", targetID),
		slog.Int("posts_removed", len(posts)))
	s.metrics.IncrementAccountOperations("delete", true)
	return nil
}

// DescribeAccounts lists every account for superusers and only the caller
// otherwise.
func (s *AccountService) DescribeAccounts(ctx context.Context, actor *model.Account) (*model.AccountDirectory, error) {
	if actor == nil {
		return nil, custom_errors.ErrUnauthenticated
	}

	directory := &model.AccountDirectory{
		RegisteredUsers: make(map[int64]model.AccountSummary),
		IsAdmin:         actor.IsSuperuser,
	}

	if !actor.IsSuperuser {
		self, err := s.accounts.GetByID(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		directory.RegisteredUsers[self.ID] = model.NewAccountSummary(self)
		return directory, nil
	}

	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, account := range accounts {
		directory.RegisteredUsers[account.ID] = model.NewAccountSummary(account)
	}
	return directory, nil
}

func actorID(actor *model.Account) int64 {
	if actor == nil {
		return 0
	}
	return actor.ID
}
