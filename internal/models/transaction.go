package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionStatus string

const (
	TxStatusPending   TransactionStatus = "pending"
	TxStatusConfirmed TransactionStatus = "confirmed"
	TxStatusFailed    TransactionStatus = "failed"
)

// Transaction records an on-chain transfer submitted against a payment
// request. AmountWei is a base-10 decimal string; wei values overflow every
// native integer type worth using.
type Transaction struct {
	ID               string            `json:"id" gorm:"primaryKey"`
	PaymentRequestID string            `json:"payment_request_id" gorm:"index"`
	FromAddress      string            `json:"from_address"`
	ToAddress        string            `json:"to_address"`
	AmountWei        string            `json:"amount_wei"`
	Hash             string            `json:"hash" gorm:"index"`
	Status           TransactionStatus `json:"status"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	return
}
