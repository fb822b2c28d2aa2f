package services

import (
	portsrepo "github.com/saiharsha-plivo/money-manager/internal/core/ports/repositories"
	portssvc "github.com/saiharsha-plivo/money-manager/internal/core/ports/services"
	"github.com/saiharsha-plivo/money-manager/internal/mail"
	"github.com/saiharsha-plivo/money-manager/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, mailer mail.Sender) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Token = NewTokenServiceImpl(repos.UserRepo, TokenConfig{
		AccessSecret:  cfg.JWTSecret,
		AccessExpiry:  cfg.JWTExpiryDuration,
		RefreshExpiry: cfg.RefreshTokenExpiryDuration,
		PurposeSecret: cfg.PurposeJWTSecret,
		Issuer:        cfg.JWTIssuer,
	})

	container.User = NewUserServiceImpl(repos.UserRepo, container.Token, mailer, cfg.BaseURL)
	container.Google = NewGoogleAuthServiceImpl(GoogleAuthConfig{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
	})

	// Account service first: the record service rides on its ownership
	// verification. Comments are role-gated at the routes instead and only
	// need the record repo for existence checks.
	container.Account = NewAccountServiceImpl(repos.AccountRepo)
	container.Record = NewRecordServiceImpl(repos.RecordRepo, container.Account)
	container.Comment = NewCommentServiceImpl(repos.CommentRepo, repos.RecordRepo)

	return container
}
