package auth

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// OIDCVerifier Проверяет ID-токены внешнего провайдера (Keycloak и т.п.).
// ID в возвращаемых claims не заполняется: его находит middleware по логину.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier Получает discovery-документ провайдера и ключи подписи.
func NewOIDCVerifier(ctx context.Context, issuer, clientID string) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить настройки OIDC-провайдера %s: %w", issuer, err)
	}

	return &OIDCVerifier{verifier: provider.Verifier(&oidc.Config{ClientID: clientID})}, nil
}

// NewOIDCVerifierWithKeySet Верификатор с заданным набором ключей, без обращения к провайдеру.
func NewOIDCVerifierWithKeySet(issuer, clientID string, keySet oidc.KeySet) *OIDCVerifier {
	return &OIDCVerifier{verifier: oidc.NewVerifier(issuer, keySet, &oidc.Config{ClientID: clientID})}
}

type oidcClaims struct {
	PreferredUsername string `json:"preferred_username"`
	Email             string `json:"email"`
}

// Verify Проверяет подпись, издателя, аудиторию и срок действия токена.
func (v *OIDCVerifier) Verify(ctx context.Context, rawToken string) (*Claims, error) {
	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("токен OIDC недействителен: %w", err)
	}

	var c oidcClaims
	if err = idToken.Claims(&c); err != nil {
		return nil, fmt.Errorf("не удалось прочитать claims токена OIDC: %w", err)
	}

	login := c.PreferredUsername
	if login == "" {
		login = c.Email
	}
	if login == "" {
		login = idToken.Subject
	}

	return &Claims{Login: login}, nil
}
