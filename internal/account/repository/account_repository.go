package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"short_video_service/internal/account/domain"
	errprocess "short_video_service/pkg/err"
)

// AccountRepository definition get Account info
type AccountRepository interface {
	CreateAccount(ctx context.Context, account *domain.Account) error
	FindByAccount(ctx context.Context, query *domain.AccountQuery) (*domain.Account, error)
	// 其他查詢 ...
}

// accountRepository 行程內的帳號存放區
// 依規格：資料只存活於行程生命週期，重啟即清空
type accountRepository struct {
	mu         sync.Mutex
	seq        int64
	accounts   []domain.Account
	byUsername map[string]int
}

// NewAccountRepository create an AccountRepository
func NewAccountRepository() AccountRepository {
	return &accountRepository{
		byUsername: make(map[string]int),
	}
}

// CreateAccount 檢查加寫入在同一把鎖內完成，username 唯一性不可因併發破壞
func (r *accountRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[account.Username]; ok {
		return errprocess.Conflict("Username already exists")
	}

	// 遞增序號當 ID，同一毫秒內註冊也能保持單調
	r.seq++
	account.ID = strconv.FormatInt(r.seq, 10)
	account.CreatedAt = time.Now()

	r.accounts = append(r.accounts, *account)
	r.byUsername[account.Username] = len(r.accounts) - 1
	return nil
}

func (r *accountRepository) FindByAccount(ctx context.Context, query *domain.AccountQuery) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if query.Username != nil {
		if idx, ok := r.byUsername[*query.Username]; ok {
			a := r.accounts[idx]
			if query.ID != nil && a.ID != *query.ID {
				return nil, errprocess.NotFound("no account found with given criteria")
			}
			return &a, nil
		}
		return nil, errprocess.NotFound("no account found with given criteria")
	}

	if query.ID != nil {
		for _, a := range r.accounts {
			if a.ID == *query.ID {
				found := a
				return &found, nil
			}
		}
	}

	return nil, errprocess.NotFound("no account found with given criteria")
}
