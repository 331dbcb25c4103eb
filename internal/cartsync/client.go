package cartsync

import (
	"context"
	"log"
	"time"

	"github.com/MatyAlts/synapsse-storefront/internal/cart"
	"github.com/MatyAlts/synapsse-storefront/internal/domain"
	"github.com/sony/gobreaker/v2"
)

// RemoteItem is a line of the server-side cart. The server keys lines
// by its own item id, which is what its update/remove calls want.
type RemoteItem struct {
	ID       int64
	Product  domain.Product
	Quantity int
}

type RemoteCartView struct {
	Items []RemoteItem
}

func (v *RemoteCartView) Find(productID string) (RemoteItem, bool) {
	for _, it := range v.Items {
		if it.Product.ID == productID {
			return it, true
		}
	}
	return RemoteItem{}, false
}

func (v *RemoteCartView) CartItems() []domain.CartItem {
	items := make([]domain.CartItem, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, domain.CartItem{Product: it.Product, Quantity: it.Quantity})
	}
	return items
}

// RemoteCart is the remote cart service as this package needs it.
// Consumers define this interface, not the HTTP implementation.
type RemoteCart interface {
	GetCart(ctx context.Context) (*RemoteCartView, error)
	UpdateItem(ctx context.Context, itemID int64, quantity int) (*RemoteCartView, error)
	RemoveItem(ctx context.Context, itemID int64) (*RemoteCartView, error)
}

type tokenKey struct{}

// WithToken carries the bearer session token to the remote client.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFrom(ctx context.Context) string {
	if token, ok := ctx.Value(tokenKey{}).(string); ok {
		return token
	}
	return ""
}

// Client mirrors local cart mutations against the remote cart for
// authenticated sessions. The server is authoritative: a successful
// remote mutation replaces the local cart wholesale with the server's
// response. Any remote failure degrades to a local-only mutation with
// no retry; the journal keeps the audit trail of which branch each
// intent took. A circuit breaker makes a dead backend fail fast into
// the local branch instead of stalling every mutation.
type Client struct {
	store   *cart.Store
	remote  RemoteCart
	journal *Journal
	cb      *gobreaker.CircuitBreaker[*RemoteCartView]
}

func NewClient(store *cart.Store, remote RemoteCart) *Client {
	cb := gobreaker.NewCircuitBreaker[*RemoteCartView](gobreaker.Settings{
		Name:    "remote-cart",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &Client{
		store:   store,
		remote:  remote,
		journal: NewJournal(),
		cb:      cb,
	}
}

func (c *Client) Journal() *Journal {
	return c.journal
}

// Add puts qty units of product into the cart. With a session, an item
// the server already knows gets its remote quantity raised; otherwise
// the add stays local.
func (c *Client) Add(ctx context.Context, token string, product domain.Product, qty int) (domain.Cart, Outcome, error) {
	return c.mutate(ctx, token, OpAdd, product.ID,
		func() (domain.Cart, error) { return c.store.Add(product, qty) },
		func(current int) int { return current + qty },
	)
}

func (c *Client) Increase(ctx context.Context, token, productID string, amount int) (domain.Cart, Outcome, error) {
	return c.mutate(ctx, token, OpIncrease, productID,
		func() (domain.Cart, error) { return c.store.Increase(productID, amount) },
		func(current int) int { return current + amount },
	)
}

func (c *Client) Decrease(ctx context.Context, token, productID string, amount int) (domain.Cart, Outcome, error) {
	return c.mutate(ctx, token, OpDecrease, productID,
		func() (domain.Cart, error) { return c.store.Decrease(productID, amount) },
		func(current int) int { return current - amount },
	)
}

func (c *Client) Remove(ctx context.Context, token, productID string) (domain.Cart, Outcome, error) {
	return c.mutate(ctx, token, OpRemove, productID,
		func() (domain.Cart, error) { return c.store.Remove(productID), nil },
		func(int) int { return 0 },
	)
}

// Refresh replaces the local cart with the server's. Used after login
// and to close the divergence window once a fallback was taken.
func (c *Client) Refresh(ctx context.Context, token string) (domain.Cart, error) {
	if token == "" {
		return c.store.Snapshot(), nil
	}

	ctx = WithToken(ctx, token)
	view, err := c.cb.Execute(func() (*RemoteCartView, error) {
		return c.remote.GetCart(ctx)
	})
	if err != nil {
		log.Printf("cart refresh failed, keeping local state: %v", err)
		return c.store.Snapshot(), err
	}

	snap := c.store.Replace(view.CartItems())
	c.journal.record(synced(Op("REFRESH"), ""), true)
	return snap, nil
}

// mutate runs one intent through the sync algorithm: no session means
// local-only; with a session it is a read-modify-write against the
// remote cart, and the server's returned cart wins. Local validation
// errors (unknown item, bad amount) are the only errors that escape.
func (c *Client) mutate(
	ctx context.Context,
	token string,
	op Op,
	productID string,
	local func() (domain.Cart, error),
	next func(current int) int,
) (domain.Cart, Outcome, error) {
	if token == "" {
		snap, err := local()
		out := localOnly(op, productID, "no session")
		c.journal.record(out, false)
		return snap, out, err
	}

	ctx = WithToken(ctx, token)

	view, err := c.cb.Execute(func() (*RemoteCartView, error) {
		return c.remote.GetCart(ctx)
	})
	if err != nil {
		return c.fallback(op, productID, "remote cart fetch failed: "+err.Error(), local)
	}

	item, ok := view.Find(productID)
	if !ok {
		// remote cart predates this item, mutate locally
		return c.fallback(op, productID, "item not in remote cart", local)
	}

	quantity := next(item.Quantity)
	var updated *RemoteCartView
	if quantity <= 0 {
		updated, err = c.cb.Execute(func() (*RemoteCartView, error) {
			return c.remote.RemoveItem(ctx, item.ID)
		})
	} else {
		updated, err = c.cb.Execute(func() (*RemoteCartView, error) {
			return c.remote.UpdateItem(ctx, item.ID, quantity)
		})
	}
	if err != nil {
		return c.fallback(op, productID, "remote cart mutation failed: "+err.Error(), local)
	}

	snap := c.store.Replace(updated.CartItems())
	out := synced(op, productID)
	c.journal.record(out, true)
	return snap, out, nil
}

func (c *Client) fallback(op Op, productID, reason string, local func() (domain.Cart, error)) (domain.Cart, Outcome, error) {
	log.Printf("cart sync %s for product %s fell back to local: %s", op, productID, reason)
	snap, err := local()
	out := localOnly(op, productID, reason)
	c.journal.record(out, true)
	return snap, out, err
}
