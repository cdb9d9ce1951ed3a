package domain

import "time"

// Account 用來表示使用者
// Password 不輸出到 JSON，外部视图一律不含密码
type Account struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsPasswordMatch 密碼驗證
// 來源行為：明文逐字比對，不做雜湊（安全性問題另案處理）
func (a *Account) IsPasswordMatch(inputPwd string) bool {
	return a.Password == inputPwd
}

// AccountQuery join conditions are used to query accounts
type AccountQuery struct {
	ID       *string
	Username *string
}
