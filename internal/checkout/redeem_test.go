package checkout

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/MatyAlts/synapsse-storefront/internal/domain"
	"github.com/MatyAlts/synapsse-storefront/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMarker struct {
	m     sync.Mutex
	err   error
	calls []string
}

func (mm *mockMarker) MarkUsed(_ context.Context, code string) error {
	mm.m.Lock()
	defer mm.m.Unlock()
	mm.calls = append(mm.calls, code)
	return mm.err
}

func TestRedeem_ConsumesAndClears(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "sess-1", &domain.AppliedCoupon{Code: "SAVE20", Discount: 20}))
	marker := &mockMarker{}
	sut := NewRedeemer(store, marker)

	code, ok := sut.Redeem(ctx, "sess-1")

	assert.True(t, ok)
	assert.Equal(t, "SAVE20", code)
	assert.Equal(t, []string{"SAVE20"}, marker.calls)

	_, err := store.Get(ctx, "sess-1")
	require.ErrorIs(t, err, session.ErrNotFound)
}

func TestRedeem_SecondCallIsNoOp(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "sess-1", &domain.AppliedCoupon{Code: "SAVE20", Discount: 20}))
	marker := &mockMarker{}
	sut := NewRedeemer(store, marker)

	_, ok := sut.Redeem(ctx, "sess-1")
	require.True(t, ok)
	_, ok = sut.Redeem(ctx, "sess-1")

	assert.False(t, ok)
	assert.Len(t, marker.calls, 1)
}

func TestRedeem_NoCouponInSession(t *testing.T) {
	store := session.NewMemoryStore()
	marker := &mockMarker{}
	sut := NewRedeemer(store, marker)

	_, ok := sut.Redeem(context.Background(), "sess-1")

	assert.False(t, ok)
	assert.Empty(t, marker.calls)
}

func TestRedeem_MarkFailureKeepsRecord(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "sess-1", &domain.AppliedCoupon{Code: "SAVE20", Discount: 20}))
	marker := &mockMarker{err: fmt.Errorf("coupon service down")}
	sut := NewRedeemer(store, marker)

	_, ok := sut.Redeem(ctx, "sess-1")

	assert.False(t, ok)
	_, err := store.Get(ctx, "sess-1")
	require.NoError(t, err, "record must survive a failed mark-used")
}
