package models

// RegisterRequest Тело запроса на регистрацию: данные оператора и регистрационный ключ,
// который нужен, если открытая регистрация выключена.
type RegisterRequest struct {
	User
	RegistrationKey string `json:"registration_key"`
}
