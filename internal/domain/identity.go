package domain

// Identity is the actor resolved once per session from the host platform.
// Balance, Referrals and ReferralLink are informational display fields and
// play no part in the order lifecycle.
type Identity struct {
	Username     string `json:"username"`
	IsAdmin      bool   `json:"isAdmin"`
	BalanceCents int64  `json:"balanceCents"`
	Referrals    int    `json:"referrals"`
	ReferralLink string `json:"referralLink,omitempty"`
}
