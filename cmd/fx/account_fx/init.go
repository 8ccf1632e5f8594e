package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideResetTokenRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideResetTokenRepo(db *gorm.DB) repositories.ResetTokenRepository {
	return repositories.NewResetTokenRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	tokenRepo repositories.ResetTokenRepository,
	mailService services.IMailService,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokenRepo, mailService)
}
