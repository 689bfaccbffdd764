package models

import (
	"errors"
	"strings"
)

const (
	loginLen    = 4
	passwordLen = 5
)

// User Модель оператора консоли.
type User struct {
	ID       int64  `json:"id,omitempty"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Validate Базовая валидация данных.
func (u User) Validate() error {
	if len(u.Login) < loginLen {
		return errors.New("передан слишком короткий логин (менее 4 символов)")
	}

	if len(u.Password) < passwordLen {
		return errors.New("передан слишком короткий пароль (менее 5 символов)")
	}

	if !isAlphaNumericOrSpecial(u.Login) {
		return errors.New("недопустимые символы в логине")
	}

	if !isAlphaNumericOrSpecial(u.Password) {
		return errors.New("недопустимые символы в пароле")
	}

	return nil
}

// Только латиница, цифры и разрешённые спецсимволы.
func isAlphaNumericOrSpecial(s string) bool {
	if len(s) == 0 {
		return false
	}

	const allowedSpecial = "!@#$%^&*()_+-=[]{}|;:'\",.<>?/"

	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			continue
		}
		if strings.ContainsRune(allowedSpecial, r) {
			continue
		}
		return false
	}

	return true
}

// SettingRequest Тело запроса на изменение настройки.
type SettingRequest struct {
	Value string `json:"value"`
}
