package authn

import (
	"context"

	"github.com/dalemusser/welfarehub/internal/app/system/normalize"
	"github.com/dalemusser/welfarehub/internal/domain/models"
)

// DemoPassword is shared by the demo accounts.
const DemoPassword = "demo12345"

// DemoAccounts are the fixed identities accepted by DemoAuthenticator.
var DemoAccounts = map[string]Identity{
	"demo@hq.com": {ID: "demo-hq-user", UID: "demo-hq-user", Email: "demo@hq.com", Role: models.RoleHQ, OrgID: "hq-org"},
	"demo@fc.com": {ID: "demo-fc-user", UID: "demo-fc-user", Email: "demo@fc.com", Role: models.RoleFC, OrgID: "demo-fc-org"},
}

// DemoAuthenticator accepts the demo accounts without consulting any store.
// It is for demos and tests only and is wired in only when demo login is
// enabled.
type DemoAuthenticator struct{}

func (DemoAuthenticator) Authenticate(_ context.Context, email, password string) (Identity, error) {
	id, ok := DemoAccounts[normalize.Email(email)]
	if !ok || password != DemoPassword {
		return Identity{}, ErrInvalidCredentials
	}
	return id, nil
}
