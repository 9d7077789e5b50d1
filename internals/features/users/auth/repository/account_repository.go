package repository

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	accountModel "quanlycanho_backend/internals/features/users/auth/model"
	"quanlycanho_backend/internals/seeds"
)

var ErrAccountNotFound = errors.New("account not found")

// AccountRepository giữ bảng tài khoản cố định. Password plaintext trong seed
// được hash bcrypt ngay khi nạp; so khớp lúc login luôn đi qua bcrypt.
type AccountRepository struct {
	accounts []accountModel.AccountModel
}

func NewAccountRepository(store *seeds.Store) *AccountRepository {
	accounts := store.Accounts()
	for i := range accounts {
		hashed, err := bcrypt.GenerateFromPassword([]byte(accounts[i].Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("[ERROR] Hash password cho tài khoản %s thất bại: %v", accounts[i].Username, err)
			continue
		}
		accounts[i].Password = string(hashed)
	}
	return &AccountRepository{accounts: accounts}
}

// FindByUsername tra tài khoản theo username.
func (r *AccountRepository) FindByUsername(username string) (*accountModel.AccountModel, error) {
	for i := range r.accounts {
		if r.accounts[i].Username == username {
			acc := r.accounts[i]
			return &acc, nil
		}
	}
	return nil, ErrAccountNotFound
}

// FindByID tra tài khoản theo id.
func (r *AccountRepository) FindByID(id int) (*accountModel.AccountModel, error) {
	for i := range r.accounts {
		if r.accounts[i].ID == id {
			acc := r.accounts[i]
			return &acc, nil
		}
	}
	return nil, ErrAccountNotFound
}

// List trả về toàn bộ tài khoản (password đã hash, không bao giờ serialize).
func (r *AccountRepository) List() []accountModel.AccountModel {
	out := make([]accountModel.AccountModel, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// CheckPassword so khớp mật khẩu plaintext với hash bcrypt của tài khoản.
func (r *AccountRepository) CheckPassword(acc *accountModel.AccountModel, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(acc.Password), []byte(password))
}
