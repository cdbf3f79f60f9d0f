package member

import "time"

// Member is a registered club member. WalletID is empty until a wallet is
// provisioned for the member.
type Member struct {
	ID           string
	Name         string
	MobileNumber string
	Address      string
	BloodGroup   string
	Nationality  string
	Organization string
	WalletID     string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}
