package telegram

import (
	"net/url"
	"strings"
	"testing"
)

func TestReferralLink(t *testing.T) {
	got := ReferralLink("ResellHubBot", 123)
	if got != "https://t.me/ResellHubBot?start=123" {
		t.Fatalf("unexpected link: %s", got)
	}
}

func TestPreOrderLink(t *testing.T) {
	link := PreOrderLink("next_gear_manager", "Jordan 1 Retro High", "https://example.com/p.jpg", "reseller_king")
	if !strings.HasPrefix(link, "https://t.me/next_gear_manager?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link must be a valid URL: %v", err)
	}
	text := u.Query().Get("text")
	for _, want := range []string{"Jordan 1 Retro High", "https://example.com/p.jpg", "@reseller_king"} {
		if !strings.Contains(text, want) {
			t.Fatalf("message missing %q: %s", want, text)
		}
	}
}

func TestPreOrderLinkWithoutPhoto(t *testing.T) {
	link := PreOrderLink("next_gear_manager", "PS5", "", "reseller_king")
	u, _ := url.Parse(link)
	if !strings.Contains(u.Query().Get("text"), "No photo provided") {
		t.Fatalf("missing photo placeholder: %s", link)
	}
}
