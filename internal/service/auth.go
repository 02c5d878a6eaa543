package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/agora-dev/agora/internal/domain"
	"github.com/agora-dev/agora/internal/errors"
	"github.com/agora-dev/agora/internal/logger"
)

type AuthService interface {
	Register(creds domain.Credentials) (string, error)
	Login(creds domain.Credentials) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	SaveUser(username domain.Username, passHash string) (domain.User, error)
	User(username domain.Username) (domain.User, error)
}

type Jwt interface {
	NewToken(username domain.Username) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

// Register creates a user with a salted bcrypt hash and logs them in by
// returning a fresh access token. Usernames are case-sensitive; the
// pre-insert existence check is backstopped by the unique constraint so a
// registration race still surfaces as a duplicate.
func (a *Auth) Register(creds domain.Credentials) (string, error) {
	_, err := a.storage.User(creds.Username)
	if err == nil {
		return "", errors.DuplicateUsername()
	}
	if !errors.IsNotFound(err) {
		return "", err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return "", err
	}

	user, err := a.storage.SaveUser(creds.Username, string(passHash))
	if err != nil {
		return "", err
	}

	token, err := a.jwt.NewToken(user.Username)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "username", user.Username, "error", err)
		return "", err
	}
	return token, nil
}

// Login checks the credentials and returns an access token. An unknown user
// and a wrong password produce the same error, to not leak existing users.
func (a *Auth) Login(creds domain.Credentials) (string, error) {
	user, err := a.storage.User(creds.Username)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", errors.InvalidCredentials()
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		logger.Log.Debug("password verification failed", "username", creds.Username)
		return "", errors.InvalidCredentials()
	}

	token, err := a.jwt.NewToken(user.Username)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "username", user.Username, "error", err)
		return "", err
	}
	return token, nil
}
