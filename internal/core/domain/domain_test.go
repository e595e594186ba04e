package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultFees() FeeConfig {
	return NewFeeConfig(1500, 500, 0.02, 0.165)
}

func cartWith(items ...CartItem) *CartSnapshot {
	return &CartSnapshot{ID: uuid.New(), UserID: uuid.New(), MerchantID: uuid.New(), IsActive: true, Items: items}
}

func TestCalculateTotals_Scenario(t *testing.T) {
	cart := cartWith(CartItem{UnitPrice: dec("2500"), Quantity: 4, IsActive: true})

	got, err := CalculateTotals(cart, defaultFees())
	require.NoError(t, err)

	assert.True(t, got.Subtotal.Equal(dec("10000")), got.Subtotal.String())
	assert.True(t, got.AdjustedSubtotal.Equal(dec("10000")))
	assert.True(t, got.DeliveryFee.Equal(dec("1500")))
	assert.True(t, got.ServiceFee.Equal(dec("500")))
	assert.True(t, got.Tax.Equal(dec("1980")), got.Tax.String())
	assert.True(t, got.Total.Equal(dec("13980")), got.Total.String())
	assert.True(t, got.MerchantShare().Add(got.PlatformShare()).Equal(got.Total))
}

func TestCalculateTotals_ServiceFeePercentageAboveMinimum(t *testing.T) {
	cart := cartWith(CartItem{UnitPrice: dec("50000"), Quantity: 1, IsActive: true})

	got, err := CalculateTotals(cart, defaultFees())
	require.NoError(t, err)
	assert.True(t, got.ServiceFee.Equal(dec("1000")))
	// 0.165 * (50000 + 1500 + 1000)
	assert.True(t, got.Tax.Equal(dec("8662.5")), got.Tax.String())
	assert.True(t, got.Total.Equal(dec("61162.5")))
}

func TestCalculateTotals_RoundsEachStage(t *testing.T) {
	cart := cartWith(
		CartItem{UnitPrice: dec("10.335"), Quantity: 3, IsActive: true},
		CartItem{UnitPrice: dec("99"), Quantity: 1, IsActive: false},
	)
	fees := NewFeeConfig(2.5, 1, 0.033, 0.165)

	got, err := CalculateTotals(cart, fees)
	require.NoError(t, err)
	// 31.005 -> 31.01
	assert.Equal(t, "31.01", got.Subtotal.StringFixed(2))
	// max(1, 0.033*31.01=1.02333) -> 1.02
	assert.Equal(t, "1.02", got.ServiceFee.StringFixed(2))
	// 0.165 * 34.53 = 5.69745 -> 5.70
	assert.Equal(t, "5.70", got.Tax.StringFixed(2))
	assert.Equal(t, "40.23", got.Total.StringFixed(2))
}

func TestCalculateTotals_DiscountFloorsAtZero(t *testing.T) {
	cart := cartWith(CartItem{UnitPrice: dec("100"), Quantity: 1, IsActive: true})
	cart.Discount = dec("250")

	got, err := CalculateTotals(cart, defaultFees())
	require.NoError(t, err)
	assert.True(t, got.AdjustedSubtotal.IsZero())
	assert.True(t, got.ServiceFee.Equal(dec("500")))
	assert.True(t, got.Tax.Equal(dec("330")))
	assert.True(t, got.Total.Equal(dec("2330")))
}

func TestCalculateTotals_EmptyCart(t *testing.T) {
	tests := []struct {
		name string
		cart *CartSnapshot
	}{
		{"nil cart", nil},
		{"no items", cartWith()},
		{"only inactive items", cartWith(CartItem{UnitPrice: dec("5"), Quantity: 1, IsActive: false})},
		{"inactive cart", func() *CartSnapshot {
			c := cartWith(CartItem{UnitPrice: dec("5"), Quantity: 1, IsActive: true})
			c.IsActive = false
			return c
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateTotals(tt.cart, defaultFees())
			assert.ErrorIs(t, err, ErrEmptyCart)
		})
	}
}

func TestCalculateTotals_Deterministic(t *testing.T) {
	cart := cartWith(
		CartItem{UnitPrice: dec("12.99"), Quantity: 2, IsActive: true},
		CartItem{UnitPrice: dec("3.49"), Quantity: 5, IsActive: true},
	)
	first, err := CalculateTotals(cart, defaultFees())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := CalculateTotals(cart, defaultFees())
		require.NoError(t, err)
		assert.True(t, first.Total.Equal(again.Total))
	}
}

func TestLedgerEntry_SignedAmount(t *testing.T) {
	credit := &LedgerEntry{Direction: DirectionCredit, Amount: dec("10.50")}
	debit := &LedgerEntry{Direction: DirectionDebit, Amount: dec("10.50")}

	assert.True(t, credit.SignedAmount().Equal(dec("10.50")))
	assert.True(t, debit.SignedAmount().Equal(dec("-10.50")))
}

func TestIsPositiveMoney(t *testing.T) {
	assert.True(t, IsPositiveMoney(dec("0.01")))
	assert.True(t, IsPositiveMoney(dec("250.50")))
	assert.False(t, IsPositiveMoney(dec("0")))
	assert.False(t, IsPositiveMoney(dec("-1")))
	assert.False(t, IsPositiveMoney(dec("1.005")))
}

func TestRoundMoney_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, "0.13", RoundMoney(dec("0.125")).StringFixed(2))
	assert.Equal(t, "-0.13", RoundMoney(dec("-0.125")).StringFixed(2))
}

func TestTopupRequest_Liveness(t *testing.T) {
	now := time.Now()
	req := &TopupRequest{Status: TopupStatusPending, ExpiresAt: now.Add(time.Minute)}
	assert.True(t, req.IsLive(now))
	assert.Equal(t, TopupStatusPending, req.EffectiveStatus(now))

	req.ExpiresAt = now
	assert.False(t, req.IsLive(now))
	assert.Equal(t, TopupStatusExpired, req.EffectiveStatus(now))

	req.Status = TopupStatusCompleted
	assert.Equal(t, TopupStatusCompleted, req.EffectiveStatus(now))
}

func TestExternalPayment_Liveness(t *testing.T) {
	now := time.Now()
	tests := []struct {
		status ExternalPaymentStatus
		expiry time.Time
		live   bool
	}{
		{ExternalPaymentPending, now.Add(time.Minute), true},
		{ExternalPaymentProcessing, now.Add(time.Minute), true},
		{ExternalPaymentPending, now.Add(-time.Second), false},
		{ExternalPaymentCompleted, now.Add(time.Minute), false},
		{ExternalPaymentCancelled, now.Add(time.Minute), false},
	}
	for _, tt := range tests {
		p := &ExternalPayment{Status: tt.status, ExpiresAt: tt.expiry}
		assert.Equal(t, tt.live, p.IsLive(now), tt.status)
	}
}

func TestPartner_IsActive(t *testing.T) {
	assert.True(t, (&Partner{Status: PartnerStatusActive}).IsActive())
	assert.False(t, (&Partner{Status: PartnerStatusSuspended}).IsActive())
}

func TestAttemptStatus_IsTerminal(t *testing.T) {
	assert.False(t, AttemptInitiated.IsTerminal())
	assert.False(t, AttemptAuthorized.IsTerminal())
	assert.True(t, AttemptSettled.IsTerminal())
	assert.True(t, AttemptFailed.IsTerminal())
}

func TestCodeAlphabet_HasNoAmbiguousCharacters(t *testing.T) {
	assert.Len(t, CodeAlphabet, 32)
	for _, c := range "0O1I" {
		assert.False(t, strings.ContainsRune(CodeAlphabet, c), string(c))
	}
}

func TestBuildSettlementKey(t *testing.T) {
	payer := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	cart := uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")
	assert.Equal(t, "settlement:550e8400-e29b-41d4-a716-446655440000:7c9e6679-7425-40de-944b-e07fc1f90ae7",
		BuildSettlementKey(payer, cart))
}
