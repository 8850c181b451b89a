package auth

import (
	"errors"

	"biomedico/models"
	"biomedico/repository"

	"golang.org/x/crypto/bcrypt"
)

// Authentication failures are distinct on purpose: the login page shows
// a different notice for each. This discloses whether an identifier is
// registered; kept as an intentional tradeoff carried over from the
// previous system.
var (
	ErrUserNotFound = errors.New("usuario no encontrado")
	// ErrNoCredential marks an account with no stored password. A
	// configuration problem, not a failed login attempt.
	ErrNoCredential = errors.New("usuario sin contraseña configurada")
	ErrBadPassword  = errors.New("contraseña incorrecta")
)

type Authenticator struct {
	Repo repository.UserRepository
}

func NewAuthenticator(repo repository.UserRepository) *Authenticator {
	return &Authenticator{Repo: repo}
}

// Authenticate finds a user by username-or-email and verifies the
// password. When the stored hash is not a valid bcrypt hash, it falls
// back to plaintext equality. Known weakness inherited from the
// previous system: legacy rows store plaintext passwords, so the
// fallback keeps those accounts working. Do not copy this pattern.
func (a *Authenticator) Authenticate(identifier, password string) (*models.Usuario, error) {
	user, err := a.Repo.GetUserByIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Password == "" {
		return nil, ErrNoCredential
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err == nil {
		return user, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, ErrBadPassword
	}

	// Malformed hash: plaintext fallback.
	if user.Password == password {
		return user, nil
	}
	return nil, ErrBadPassword
}
