package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/trsv-dev/simple-topology-console/internal/models"
)

// Claims Данные оператора внутри токена.
type Claims struct {
	jwt.RegisteredClaims
	ID    int64
	Login string
}

const (
	TokenExp   = time.Hour * 24
	CookieName = "JWT"
)

// JWTTokenBuilder Создаёт и проверяет токены, подписанные HS256.
type JWTTokenBuilder struct{}

func NewJWTTokenBuilder() *JWTTokenBuilder {
	return &JWTTokenBuilder{}
}

// BuildJWTToken Создание JWT-токена.
func (b *JWTTokenBuilder) BuildJWTToken(user *models.User, JWTSecretKey string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExp)),
		},
		ID:    user.ID,
		Login: user.Login,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("не удалось подписать токен: %w", err)
	}

	return tokenString, nil
}

// GetClaims Распарсивание JWT-токена с проверкой подписи и срока действия.
func (b *JWTTokenBuilder) GetClaims(tokenString, JWTSecretKey string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неверный метод подписи: %v", t.Header["alg"])
		}

		return []byte(JWTSecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("токен недействителен")
	}

	return claims, nil
}

// CreateCookie Создание и установка куки с JWT-токеном.
func CreateCookie(w http.ResponseWriter, tokenString string) {
	cookie := http.Cookie{
		Name:     CookieName,
		Value:    tokenString,
		Expires:  time.Now().Add(TokenExp),
		Path:     "/",
		HttpOnly: true,
	}

	http.SetCookie(w, &cookie)
}
