package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	account_service "blog-service/internal/application/service/account"
	model "blog-service/internal/domain/models"
	prometheus_metrics "blog-service/internal/infrastructure/outbound/metrics/prometheus"
	"blog-service/internal/infrastructure/outbound/repository"
	bcrypt_hasher "blog-service/internal/infrastructure/outbound/security/bcrypt"
)

var superuser struct {
	username string
	password string
	email    string
}

func init() {
	createSuperuserCmd.Flags().StringVar(&superuser.username, "username", "", "login name of the new superuser")
	createSuperuserCmd.Flags().StringVar(&superuser.password, "password", "", "password of the new superuser")
	createSuperuserCmd.Flags().StringVar(&superuser.email, "email", "", "optional email address")
	_ = createSuperuserCmd.MarkFlagRequired("username")
	_ = createSuperuserCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(createSuperuserCmd)
}

var createSuperuserCmd = &cobra.Command{
	Use:   "createsuperuser",
	Short: "Create an account that may modify any post or account",
	Args:  cobra.NoArgs,
	RunE:  createSuperuser,
}

func createSuperuser(cmd *cobra.Command, args []string) error {
	cfg, log := setup()
	ctx := context.Background()
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	store, err := repository.Open(ctx, cfg, log, metrics)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.Close()

	accounts := account_service.NewAccountService(
		store.Accounts,
		store.UOW,
		bcrypt_hasher.NewHasher(cfg.Security.BcryptCost),
		log,
		metrics,
	)

	dto := &model.RegisterAccountDTO{
		Username:    superuser.username,
		Password:    superuser.password,
		IsSuperuser: true,
	}
	if superuser.email != "" {
		dto.Email = &superuser.email
	}

	account, err := accounts.Register(ctx, dto)
	if err != nil {
		return fmt.Errorf("create superuser %q: %w", superuser.username, err)
	}

	log.Info("Superuser created", slog.Int64("id", account.ID), slog.String("username", account.Username))
	return nil
}
