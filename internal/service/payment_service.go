package service

import (
	"context"
	"fmt"
	"time"

	"github.com/chainpay/gateway/internal/chain"
	"github.com/chainpay/gateway/internal/models"
	"github.com/chainpay/gateway/internal/models/dto"
	"github.com/sirupsen/logrus"
)

// PaymentRepo defines the interface for payment request persistence.
// UpdateFields must be a conditional single-row update reporting rows matched;
// the settle path relies on it for compare-and-set semantics.
type PaymentRepo interface {
	Create(ctx context.Context, payment *models.PaymentRequest) error
	GetByID(ctx context.Context, id string) (*models.PaymentRequest, error)
	GetBy(ctx context.Context, query string, args ...interface{}) (*[]models.PaymentRequest, error)
	UpdateFields(ctx context.Context, values map[string]interface{}, query string, args ...interface{}) (int64, error)
}

// TransactionRepo persists on-chain transfer records.
type TransactionRepo interface {
	Create(ctx context.Context, tx *models.Transaction) error
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// PaymentService owns the payment request lifecycle: creation, lookup and the
// single pending -> terminal transition. Status changes fan out to webhook
// subscribers through the event bus; delivery is decoupled from the ledger and
// can never roll a transition back.
type PaymentService struct {
	Repo      PaymentRepo
	TxRepo    TransactionRepo
	Publisher Publisher
	BaseURL   string
}

func NewPaymentService(repo PaymentRepo, txRepo TransactionRepo, publisher Publisher, baseURL string) *PaymentService {
	return &PaymentService{
		Repo:      repo,
		TxRepo:    txRepo,
		Publisher: publisher,
		BaseURL:   baseURL,
	}
}

// Create validates and persists a new pending payment request for the
// authenticated merchant. The payment window is fixed at creation time;
// nothing is written when validation fails.
func (s *PaymentService) Create(ctx context.Context, key *models.APIKey, paymentDTO *dto.CreatePayment) (*models.PaymentRequest, error) {
	paymentDTO.Sanitize()
	payment := paymentDTO.ToEntity()
	payment.MerchantID = key.MerchantID
	payment.MerchantAddress = key.WalletAddress

	if err := payment.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payment.CreatedAt = now
	payment.ExpiresAt = now.Add(models.ExpiryWindow)

	if err := s.Repo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// PaymentURL builds the shareable checkout URL for a payment request.
func (s *PaymentService) PaymentURL(id string) string {
	return fmt.Sprintf("%s/pay/%s", s.BaseURL, id)
}

// Get returns the stored payment request. Expiry stays derived: callers check
// it against the wall clock, the row is never purged or rewritten on read.
func (s *PaymentService) Get(ctx context.Context, id string) (*models.PaymentRequest, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns all payment requests owned by a merchant.
func (s *PaymentService) List(ctx context.Context, merchantID string) (*[]models.PaymentRequest, error) {
	return s.Repo.GetBy(ctx, "merchant_id = ?", merchantID)
}

// Settle finalizes a pending payment request with a terminal outcome.
//
// The transition is a conditional update constrained on the current status
// still being pending, so two concurrent settles on the same id resolve to
// exactly one winner; the loser observes ErrInvalidTransition. A request past
// its expiry window refuses settlement with ErrExpired.
//
// The settled event is published after the transition commits. Publish
// failures are logged and dropped: dispatch is fire-and-forget relative to
// the ledger and never unwinds a persisted status.
func (s *PaymentService) Settle(ctx context.Context, id string, settleDTO *dto.SettlePayment) (*models.PaymentRequest, error) {
	settleDTO.Sanitize()

	outcome := models.PaymentStatus(settleDTO.Outcome)
	if outcome != models.StatusSuccess && outcome != models.StatusFailed {
		return nil, fmt.Errorf("%w: outcome must be success or failed", models.ErrValidation)
	}

	payment, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payment.Terminal() {
		return nil, models.ErrInvalidTransition
	}

	now := time.Now().UTC()
	if now.After(payment.ExpiresAt) {
		return nil, models.ErrExpired
	}

	rows, err := s.Repo.UpdateFields(ctx, map[string]interface{}{
		"status":     outcome,
		"tx_hash":    settleDTO.TxHash,
		"settled_at": now,
	}, "id = ? AND status = ?", id, models.StatusPending)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Another settle won the race.
		return nil, models.ErrInvalidTransition
	}

	payment.Status = outcome
	payment.TxHash = settleDTO.TxHash
	payment.SettledAt = &now

	if settleDTO.TxHash != "" {
		s.recordTransaction(ctx, payment, settleDTO, now)
	}

	event := models.PaymentEvent{
		EventType:  eventTypeFor(outcome),
		PaymentID:  payment.ID,
		MerchantID: payment.MerchantID,
		Amount:     payment.Amount,
		Currency:   string(payment.Currency),
		Status:     string(outcome),
		TxHash:     settleDTO.TxHash,
		Metadata:   payment.Metadata,
		OccurredAt: now,
	}

	if err := s.Publisher.Publish(ctx, models.PaymentSettledEventTopic, event); err != nil {
		logrus.Errorf("failed to publish settled event for payment %s: %s", payment.ID, err.Error())
	}

	return payment, nil
}

func (s *PaymentService) recordTransaction(ctx context.Context, payment *models.PaymentRequest, settleDTO *dto.SettlePayment, now time.Time) {
	txStatus := models.TxStatusConfirmed
	if payment.Status == models.StatusFailed {
		txStatus = models.TxStatusFailed
	}

	tx := &models.Transaction{
		PaymentRequestID: payment.ID,
		FromAddress:      settleDTO.FromAddress,
		ToAddress:        payment.MerchantAddress,
		AmountWei:        chain.EthToWei(payment.Amount).String(),
		Hash:             settleDTO.TxHash,
		Status:           txStatus,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.TxRepo.Create(ctx, tx); err != nil {
		// The settle already committed; a missing audit row is log-worthy
		// but not a reason to fail the caller.
		logrus.Errorf("failed to record transaction %s for payment %s: %s", settleDTO.TxHash, payment.ID, err.Error())
	}
}

func eventTypeFor(status models.PaymentStatus) string {
	if status == models.StatusSuccess {
		return models.EventPaymentSuccess
	}
	return models.EventPaymentFailed
}
