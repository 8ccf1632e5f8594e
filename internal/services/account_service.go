package services

import (
	"context"
	"log"
	"time"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

const resetTokenTTL = 30 * time.Minute

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetProfile(ctx context.Context, accountID string) (*response_models.AccountResponse, error)
	UpdateProfile(ctx context.Context, accountID string, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokenRepo   repositories.ResetTokenRepository
	mailService IMailService
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	tokenRepo repositories.ResetTokenRepository,
	mailService IMailService,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokenRepo:   tokenRepo,
		mailService: mailService,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Currency:     "USD",
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		if repositories.IsUniqueViolation(err) {
			return utils.ErrEmailAlreadyExists
		}
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	role := "user"
	if account.IsAdmin {
		role = "admin"
	}

	token, err := utils.CreateToken(account.ID, role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token:   token,
		Account: buildAccountResponse(account),
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountID string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	out := buildAccountResponse(account)
	return &out, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, accountID string, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if request.DisplayName != nil {
		if *request.DisplayName == "" {
			return nil, utils.ErrInvalidInput
		}
		account.Name = *request.DisplayName
	}
	if request.Currency != nil {
		account.Currency = *request.Currency
	}
	if request.EmailNotifications != nil {
		account.EmailNotifications = *request.EmailNotifications
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := buildAccountResponse(account)
	return &out, nil
}

// ForgotPassword never reveals whether the email exists; failures after
// the lookup are logged and swallowed for the same reason.
func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return nil
	}

	// opportunistic cleanup of rows past their TTL
	if err := a.tokenRepo.DeleteExpired(ctx); err != nil {
		log.Printf("Failed to purge expired reset tokens: %v", err)
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.tokenRepo.Insert(ctx, account.ID, utils.HashToken(token), resetTokenTTL); err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.mailService.SendPasswordResetMail(account.Email, token); err != nil {
		log.Printf("Failed to send reset mail to %s: %v", account.Email, err)
	}

	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error {
	accountID, ok, err := a.tokenRepo.Consume(ctx, utils.HashToken(request.Token))
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !ok {
		return utils.ErrInvalidResetToken
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdatePasswordHash(ctx, accountID.String(), hashedPassword); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func buildAccountResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:                 account.ID,
		Name:               account.Name,
		Email:              account.Email,
		IsAdmin:            account.IsAdmin,
		Currency:           account.Currency,
		EmailNotifications: account.EmailNotifications,
	}
}
