package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"confreg/internal/models/db_models"
	"confreg/internal/models/request_models"
	"confreg/internal/models/response_models"
	"confreg/internal/repositories"
	mem "confreg/pkg/memcache"
	"confreg/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPasswordWithToken(ctx context.Context, request request_models.ForgotPasswordRequest) error
}

type AccountService struct {
	personRepo repositories.PersonRepository
	mail       IMailService
	resetStore mem.ResetTokenStore
	logger     *zap.Logger
}

func NewAccountService(
	personRepo repositories.PersonRepository,
	mail IMailService,
	resetStore mem.ResetTokenStore,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		personRepo: personRepo,
		mail:       mail,
		resetStore: resetStore,
		logger:     logger,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	person, err := a.personRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if person == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(person.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(person.ID, person.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AccountLoginResponse{
		Token: token,
		Role:  person.Role,
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.personRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	existing, err = a.personRepo.FindByHandle(ctx, request.Handle)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrHandleAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}
	urlHash, err := utils.GenerateSecureToken(16)
	if err != nil {
		return utils.ErrDatabaseError
	}

	person := &db_models.Person{
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Email:        request.Email,
		Handle:       request.Handle,
		PasswordHash: hashedPassword,
		Role:         "attendee",
		URLHash:      urlHash,
	}

	if err := a.personRepo.Insert(ctx, person); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	person, err := a.personRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if person == nil {
		// Do not reveal whether the address exists.
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.resetStore.Set(token, person.Email, 30*time.Minute)

	if err := a.mail.SendMailToResetPassword(person.Email, token); err != nil {
		a.logger.Warn("reset mail failed", zap.String("email", person.Email), zap.Error(err))
	}
	return nil
}

func (a *AccountService) ResetPasswordWithToken(ctx context.Context, request request_models.ForgotPasswordRequest) error {
	email := a.resetStore.Consume(request.Token)
	if email == "" || email != request.Email {
		return utils.ErrInvalidResetToken
	}

	person, err := a.personRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if person == nil {
		return utils.ErrAccountNotFound
	}

	hashed, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	person.PasswordHash = hashed
	if err := a.personRepo.Update(ctx, person); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
