package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"delivery-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
}

// TokenService validates identity tokens issued by the account subsystem.
type TokenService interface {
	Generate(userID uuid.UUID, role string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
	Role   string
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, partnerID string, nonce string, ttl time.Duration) (bool, error)
}

// EventPublisher announces committed wallet events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, evt domain.Event) error
}

// PartnerDirectory lists the partner agents that accept cash-in codes.
type PartnerDirectory interface {
	AcceptedPartners(ctx context.Context) ([]domain.Partner, error)
	// AcceptsCashIn reads the partner from the store, bypassing the cache.
	AcceptsCashIn(ctx context.Context, partnerID uuid.UUID) (bool, error)
}

// --- Service Ports (Business Logic) ---

// MutationRequest describes one debit or credit.
type MutationRequest struct {
	OwnerID   uuid.UUID
	Amount    decimal.Decimal
	Reference domain.Reference
}

// WalletService owns every balance change.
type WalletService interface {
	GetOrCreate(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error)
	GetBalance(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, string, error)
	Debit(ctx context.Context, req MutationRequest) (*domain.Mutation, error)
	Credit(ctx context.Context, req MutationRequest) (*domain.Mutation, error)
	DebitTx(ctx context.Context, tx pgx.Tx, req MutationRequest) (*domain.Mutation, error)
	CreditTx(ctx context.Context, tx pgx.Tx, req MutationRequest) (*domain.Mutation, error)
	// LockTx creates missing wallets and row-locks all of them in ascending
	// owner-id order, so multi-wallet units cannot deadlock each other.
	LockTx(ctx context.Context, tx pgx.Tx, ownerIDs []uuid.UUID) (map[uuid.UUID]*domain.Wallet, error)
	Deactivate(ctx context.Context, ownerID uuid.UUID) error
	ListLedger(ctx context.Context, params LedgerListParams) ([]domain.LedgerEntry, int64, error)
	Reconcile(ctx context.Context, ownerID uuid.UUID) (*Reconciliation, error)
}

// Reconciliation compares a stored balance with its ledger.
type Reconciliation struct {
	OwnerID   uuid.UUID       `json:"owner_id"`
	Balance   decimal.Decimal `json:"balance"`
	LedgerSum decimal.Decimal `json:"ledger_sum"`
	Entries   int64           `json:"entries"`
	Drift     decimal.Decimal `json:"drift"`
	Balanced  bool            `json:"balanced"`
}

// TopupService runs the top-up request lifecycle.
type TopupService interface {
	Create(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, method string) (*TopupCreated, error)
	VerifyAndComplete(ctx context.Context, referenceCode string, confirmerID uuid.UUID) (*domain.TopupRequest, error)
	Get(ctx context.Context, userID uuid.UUID, referenceCode string) (*domain.TopupRequest, error)
	Cancel(ctx context.Context, userID uuid.UUID, referenceCode string) (*domain.TopupRequest, error)
}

// TopupCreated is a new request plus display-only payment instructions.
type TopupCreated struct {
	Request      *domain.TopupRequest
	Instructions string
}

// CashInService runs the external cash-in code flow.
type CashInService interface {
	GenerateCode(ctx context.Context, req CashInCodeRequest) (*CashInCode, error)
	Lookup(ctx context.Context, code string) (*domain.ExternalPayment, error)
	Claim(ctx context.Context, code string, partnerID uuid.UUID) (*domain.ExternalPayment, error)
	Redeem(ctx context.Context, code string, partnerID uuid.UUID) (*domain.ExternalPayment, error)
	Cancel(ctx context.Context, userID uuid.UUID, code string) (*domain.ExternalPayment, error)
}

// CashInCodeRequest asks for a code covering the checkout total of a cart.
// A non-zero Amount must match that total.
type CashInCodeRequest struct {
	UserID uuid.UUID
	CartID uuid.UUID
	Amount decimal.Decimal
}

// CashInCode is an issued code plus the partners that accept it.
type CashInCode struct {
	Payment  *domain.ExternalPayment
	Partners []domain.Partner
}

// CheckoutService computes checkout totals for a user's cart.
type CheckoutService interface {
	Totals(ctx context.Context, userID, cartID uuid.UUID) (*domain.Totals, error)
	// TotalsTx loads the cart inside tx and checks it belongs to userID.
	TotalsTx(ctx context.Context, tx pgx.Tx, userID, cartID uuid.UUID) (*domain.CartSnapshot, *domain.Totals, error)
}

// PaymentService settles a checkout between the payer and the merchant.
type PaymentService interface {
	Process(ctx context.Context, userID, cartID uuid.UUID) (*domain.SettlementResult, error)
}

// AuditService records audit logs asynchronously.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// CodeIssuer issues collision-checked codes in one namespace.
type CodeIssuer interface {
	Issue(ctx context.Context, spec CodeSpec, isLive func(context.Context, string) (bool, error), insert func(context.Context, string) error) (string, error)
}

// CodeSpec configures one code namespace.
type CodeSpec struct {
	Namespace   string
	Alphabet    string
	Length      int
	MaxAttempts int
}
