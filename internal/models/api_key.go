package models

import "time"

// APIKey maps an opaque merchant credential to its owning account. The
// gateway only reads this table; key issuance and revocation happen in the
// merchant dashboard.
type APIKey struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Key           string    `json:"key" gorm:"uniqueIndex"`
	MerchantID    string    `json:"merchant_id" gorm:"index"`
	WalletAddress string    `json:"wallet_address"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}
