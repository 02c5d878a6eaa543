package jwt

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/agora-dev/agora/internal/domain"
	internal_errors "github.com/agora-dev/agora/internal/errors"
	"github.com/agora-dev/agora/internal/logger"
)

// TokenService issues and resolves stateless bearer tokens. There is no
// revocation list; expiry is the only invalidation mechanism.
type TokenService interface {
	NewToken(username domain.Username) (string, error)
	DecodeToken(jwtStr string) (domain.Username, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(username domain.Username) (string, error) {
	claims := jwt.MapClaims{}
	claims["username"] = username
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", errors.New("Can't create token")
	}

	return tokenString, nil
}

// DecodeToken verifies the signature and expiry and returns the bound
// username. Callers deciding to treat failures as anonymous is policy, not
// this package's concern.
func (j *Jwt) DecodeToken(jwtStr string) (domain.Username, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{Message: fmt.Sprintf("Unexpected signing method: %v", token.Header["alg"]), StatusCode: http.StatusUnauthorized}
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return "", &internal_errors.ErrorWithStatusCode{Message: "Invalid token signature", StatusCode: http.StatusUnauthorized}
	}

	if !token.Valid {
		return "", &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", &internal_errors.ErrorWithStatusCode{Message: "Invalid token claims", StatusCode: http.StatusUnauthorized}
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", &internal_errors.ErrorWithStatusCode{Message: "Invalid token claims", StatusCode: http.StatusUnauthorized}
	}

	return username, nil
}
