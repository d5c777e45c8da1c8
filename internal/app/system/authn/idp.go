package authn

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dalemusser/welfarehub/internal/app/system/normalize"
	"golang.org/x/oauth2"
)

// IdPAuthenticator verifies credentials with an external identity provider
// using the OAuth2 resource-owner password grant, then resolves role and
// organization from the local users collection.
type IdPAuthenticator struct {
	Config oauth2.Config
	Users  UserLookup
	// HTTPClient overrides the client used for the token request.
	HTTPClient *http.Client
}

// NewIdPAuthenticator builds an IdPAuthenticator for a token endpoint.
func NewIdPAuthenticator(tokenURL, clientID, clientSecret string, users UserLookup) *IdPAuthenticator {
	return &IdPAuthenticator{
		Config: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
		},
		Users: users,
	}
}

func (a *IdPAuthenticator) Authenticate(ctx context.Context, email, password string) (Identity, error) {
	email = normalize.Email(email)
	if a.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, a.HTTPClient)
	}
	if _, err := a.Config.PasswordCredentialsToken(ctx, email, password); err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.Response != nil &&
			(re.Response.StatusCode == http.StatusBadRequest || re.Response.StatusCode == http.StatusUnauthorized) {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, fmt.Errorf("identity provider: %w", err)
	}
	u, err := lookupActive(ctx, a.Users, email)
	if err != nil {
		return Identity{}, err
	}
	return identityOf(u), nil
}
