// Package authn verifies login credentials. Each Authenticator maps an
// email and password to an Identity; the login handler never inspects
// credentials itself.
package authn

import (
	"context"
	"errors"

	"github.com/dalemusser/welfarehub/internal/app/system/normalize"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials means the email/password pair was not accepted.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInactive means the credentials were fine but the account is disabled.
	ErrInactive = errors.New("account is inactive")
)

// Identity is an authenticated user.
type Identity struct {
	ID    string
	UID   string
	Email string
	Role  string
	OrgID string
}

// Authenticator checks one email/password pair.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (Identity, error)
}

// UserLookup finds a user record by email. It returns mongo.ErrNoDocuments
// when there is none.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

func identityOf(u *models.User) Identity {
	return Identity{ID: u.ID.Hex(), UID: u.UID, Email: u.Email, Role: u.Role, OrgID: u.OrgID}
}

func lookupActive(ctx context.Context, users UserLookup, email string) (*models.User, error) {
	u, err := users.GetByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrInactive
	}
	return u, nil
}

// HashPassword returns the bcrypt hash stored in User.PasswordHash.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// LocalAuthenticator checks passwords against bcrypt hashes in the users
// collection.
type LocalAuthenticator struct {
	Users UserLookup
}

func (a LocalAuthenticator) Authenticate(ctx context.Context, email, password string) (Identity, error) {
	u, err := lookupActive(ctx, a.Users, normalize.Email(email))
	if err != nil {
		return Identity{}, err
	}
	if u.PasswordHash == "" {
		return Identity{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return Identity{}, ErrInvalidCredentials
	}
	return identityOf(u), nil
}

// Chain tries each authenticator in order. ErrInvalidCredentials moves on
// to the next one; any other error stops the chain.
type Chain []Authenticator

func (c Chain) Authenticate(ctx context.Context, email, password string) (Identity, error) {
	for _, a := range c {
		id, err := a.Authenticate(ctx, email, password)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, ErrInvalidCredentials) {
			return Identity{}, err
		}
	}
	return Identity{}, ErrInvalidCredentials
}
