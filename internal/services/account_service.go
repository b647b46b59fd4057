package services

import (
	"context"

	"housebase/internal/models/db_models"
	"housebase/internal/models/request_models"
	"housebase/internal/models/response_models"
	"housebase/internal/repositories"
	"housebase/pkg/utils"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (*response_models.AccountLoginResponse, error)
	CreateAccount(request request_models.SignUpRequest) error
	// Elevate promotes the account to admin and issues a fresh token.
	// The shared admin code is verified by middleware before this runs.
	Elevate(ctx context.Context, accountID string) (*response_models.AccountLoginResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (*response_models.AccountLoginResponse, error) {

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	err = utils.ComparePasswords(account.PasswordHash, request.Password)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	soldierID := ""
	if account.SoldierID != nil {
		soldierID = *account.SoldierID
	}

	token, err := utils.CreateToken(account.ID, soldierID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AccountLoginResponse{
		Token: token,
		Role:  account.Role,
	}, nil
}

func (a *AccountService) CreateAccount(request request_models.SignUpRequest) error {

	existingAccount, err := a.accountRepo.FindByEmail(context.Background(), request.Email)
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
		Role:         "resident", // default role
	}

	if err := a.accountRepo.InsertTx(newAccount, context.Background()); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Elevate(ctx context.Context, accountID string) (*response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if account.Role != "admin" {
		if err := a.accountRepo.UpdateRole(ctx, accountID, "admin"); err != nil {
			return nil, utils.ErrDatabaseError
		}
		account.Role = "admin"
	}

	soldierID := ""
	if account.SoldierID != nil {
		soldierID = *account.SoldierID
	}

	token, err := utils.CreateToken(account.ID, soldierID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AccountLoginResponse{
		Token: token,
		Role:  account.Role,
	}, nil
}
