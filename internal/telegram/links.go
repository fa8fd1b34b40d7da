package telegram

import (
	"fmt"
	"net/url"
)

// ReferralLink builds the t.me deep link a user shares to refer friends.
func ReferralLink(botUsername string, userID int64) string {
	return fmt.Sprintf("https://t.me/%s?start=%d", botUsername, userID)
}

// PreOrderLink composes the t.me deep link that opens a chat with the admin
// prefilled with a pre-order request. Pure string formatting, no state.
func PreOrderLink(adminUsername, itemName, photoURL, username string) string {
	if photoURL == "" {
		photoURL = "No photo provided"
	}
	message := fmt.Sprintf(
		"🛍 *NEW PRE-ORDER REQUEST*\n\n📦 *Item:* %s\n📸 *Photo:* %s\n👤 *User:* @%s",
		itemName, photoURL, username,
	)
	return fmt.Sprintf("https://t.me/%s?text=%s", adminUsername, url.QueryEscape(message))
}
