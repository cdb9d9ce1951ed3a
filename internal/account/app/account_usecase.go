package app

import (
	"context"
	"fmt"

	"short_video_service/internal/account/domain"
	"short_video_service/internal/account/repository"
	errprocess "short_video_service/pkg/err"
	"short_video_service/pkg/logger"

	"go.uber.org/zap"
)

// AccountUseCase 這裡封裝了對外提供的應用服務
type AccountUseCase interface {
	Register(ctx context.Context, username, password string) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (*domain.Account, error)
}

type accountUseCase struct {
	accountRepo repository.AccountRepository
}

// NewAccountUseCase 建立一個新的 AccountUseCase
func NewAccountUseCase(accountRepo repository.AccountRepository) AccountUseCase {
	return &accountUseCase{
		accountRepo: accountRepo,
	}
}

// Register 建立新帳號，username 重複或欄位缺漏時失敗
func (a *accountUseCase) Register(ctx context.Context, username, password string) (*domain.Account, error) {
	if username == "" || password == "" {
		return nil, errprocess.Validation("Username and password are required")
	}

	account := domain.Account{
		Username: username,
		Password: password,
	}

	// 唯一性檢查由 repository 在鎖內完成（check-then-insert 是單一操作）
	if err := a.accountRepo.CreateAccount(ctx, &account); err != nil {
		return nil, err
	}

	logger.Log.Info(fmt.Sprintf("usecase Register : %s", account.Username), zap.String("id", account.ID))
	return &account, nil
}

// Login 驗證帳密，兩者需完全一致
func (a *accountUseCase) Login(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := a.accountRepo.FindByAccount(ctx, &domain.AccountQuery{Username: &username})
	if err != nil {
		return nil, errprocess.Auth("Invalid credentials")
	}

	if !account.IsPasswordMatch(password) {
		logger.Log.Debug("password can't match", zap.String("username", username))
		return nil, errprocess.Auth("Invalid credentials")
	}

	return account, nil
}
