package telegram

import (
	"fmt"

	"nextgear/internal/domain"
)

// IdentityResolver maps an authenticated WebApp user onto the store's
// Identity value. Admin status is exact equality of the username against the
// configured administrator handle.
type IdentityResolver struct {
	auth          *Authenticator
	botUsername   string
	adminUsername string
}

func NewIdentityResolver(auth *Authenticator, botUsername, adminUsername string) *IdentityResolver {
	return &IdentityResolver{auth: auth, botUsername: botUsername, adminUsername: adminUsername}
}

// Resolve authenticates the raw initData and builds the session identity.
// Users without a public username get a User_<id> display name, as the
// original Mini App does.
func (r *IdentityResolver) Resolve(initData string) (*domain.Identity, error) {
	user, err := r.auth.Authenticate(initData)
	if err != nil {
		return nil, err
	}

	username := user.Username
	if username == "" {
		username = fmt.Sprintf("User_%d", user.ID)
	}

	return &domain.Identity{
		Username:     username,
		IsAdmin:      username == r.adminUsername,
		ReferralLink: ReferralLink(r.botUsername, user.ID),
	}, nil
}
