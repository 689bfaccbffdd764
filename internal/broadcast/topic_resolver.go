package broadcast

import (
	"errors"
	"net/http"

	"github.com/trsv-dev/simple-topology-console/internal/auth"
)

// MakeJWTTopicResolver Resolver, который пускает только операторов с валидным JWT из cookie.
func MakeJWTTopicResolver(JWTSecretKey string, tokenBuilder auth.TokenBuilder) TopicResolver {
	return func(r *http.Request) (string, error) {
		c, err := r.Cookie(auth.CookieName)
		if err != nil {
			return "", err
		}

		claims, err := tokenBuilder.GetClaims(c.Value, JWTSecretKey)
		if err != nil {
			return "", err
		}
		if claims.ID <= 0 {
			return "", errors.New("неверный id пользователя")
		}

		stream := r.URL.Query().Get("stream")
		if stream == "" {
			return "", errors.New("параметр запроса stream обязателен")
		}

		switch stream {
		case TopologyStream, ServerActionsStream:
			return stream, nil
		default:
			return "", errors.New("неизвестный тип потока")
		}
	}
}
