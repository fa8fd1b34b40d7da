package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"nextgear/internal/domain"
)

// WebAppUser is the subset of the Telegram WebApp user payload the store
// cares about.
type WebAppUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Authenticator validates Telegram WebApp initData and extracts the user.
// With skipVerify set the signature check is bypassed (local development
// without a real bot token).
type Authenticator struct {
	botToken   string
	skipVerify bool
}

func NewAuthenticator(botToken string, skipVerify bool) *Authenticator {
	return &Authenticator{botToken: botToken, skipVerify: skipVerify}
}

// Authenticate parses the raw initData query string, checks its HMAC
// signature against the bot token and returns the embedded user.
func (a *Authenticator) Authenticate(initData string) (WebAppUser, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return WebAppUser{}, fmt.Errorf("parse init data: %w: %v", domain.ErrValidation, err)
	}

	if !a.skipVerify {
		if err := a.verify(values); err != nil {
			return WebAppUser{}, err
		}
	}

	rawUser := values.Get("user")
	if rawUser == "" {
		return WebAppUser{}, fmt.Errorf("init data has no user: %w", domain.ErrValidation)
	}
	var user WebAppUser
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return WebAppUser{}, fmt.Errorf("decode user: %w: %v", domain.ErrValidation, err)
	}
	if user.ID == 0 {
		return WebAppUser{}, fmt.Errorf("init data user has no id: %w", domain.ErrValidation)
	}
	return user, nil
}

// verify implements the check documented for Telegram Mini Apps: the
// data-check string is every field except hash, sorted, joined with newlines;
// the secret key is HMAC-SHA256 of the bot token keyed with "WebAppData".
func (a *Authenticator) verify(values url.Values) error {
	gotHash := values.Get("hash")
	if gotHash == "" {
		return fmt.Errorf("init data has no hash: %w", domain.ErrValidation)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		if k == "hash" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+values.Get(k))
	}
	checkString := strings.Join(pairs, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(a.botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))
	want := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(want), []byte(gotHash)) {
		return fmt.Errorf("init data signature mismatch: %w", domain.ErrValidation)
	}
	return nil
}
