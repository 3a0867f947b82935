package tests

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"restman/internal/domain"
	"restman/internal/mocks"
	"restman/internal/service"
	"restman/internal/storage"
)

func setupSessionService(t *testing.T) (*service.SessionService, *mocks.MenuRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	menu := mocks.NewMenuRepository(t)
	return service.NewSessionService(storage.NewRedisSessionStore(client), menu), menu, mr
}

func TestSessionService_AddAndAdjust(t *testing.T) {
	svc, menu, _ := setupSessionService(t)
	ctx := context.Background()
	guest := domain.GuestIdentity("sess-1")

	menu.On("GetDish", 7).Return(&domain.Dish{ID: 7, Name: "Pho Bo", Price: 50000}, nil)

	cart, err := svc.AddItem(ctx, guest, 7)
	assert.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
	assert.Equal(t, int64(50000), cart.Lines[0].UnitPrice)

	// Adding the same dish increments the existing line.
	cart, err = svc.AddItem(ctx, guest, 7)
	assert.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)

	cart, err = svc.SetQuantity(ctx, guest, 7, 5)
	assert.NoError(t, err)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.Equal(t, int64(250000), cart.Total())

	// Quantity zero removes the line rather than keeping it at zero.
	cart, err = svc.SetQuantity(ctx, guest, 7, 0)
	assert.NoError(t, err)
	assert.True(t, cart.Empty())

	// Re-adding after removal starts over at quantity one.
	cart, err = svc.AddItem(ctx, guest, 7)
	assert.NoError(t, err)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestSessionService_UnknownDishAndLine(t *testing.T) {
	svc, menu, _ := setupSessionService(t)
	ctx := context.Background()
	guest := domain.GuestIdentity("sess-1")

	menu.On("GetDish", 999).Return(nil, assert.AnError)
	_, err := svc.AddItem(ctx, guest, 999)
	assert.ErrorIs(t, err, service.ErrDishNotFound)

	_, err = svc.SetQuantity(ctx, guest, 5, 2)
	assert.ErrorIs(t, err, service.ErrLineNotInCart)
}

func TestSessionService_CartIsolation(t *testing.T) {
	svc, menu, _ := setupSessionService(t)
	ctx := context.Background()

	guest := domain.GuestIdentity("sess-1")
	user := domain.UserIdentity(42, "sess-1")

	menu.On("GetDish", 1).Return(&domain.Dish{ID: 1, Name: "Goi Cuon", Price: 30000, CategoryID: 2}, nil)

	_, err := svc.AddItem(ctx, guest, 1)
	assert.NoError(t, err)

	// Same browsing session, different identity: the user cart is its own
	// snapshot, not the guest's.
	userCart, err := svc.GetCart(ctx, user)
	assert.NoError(t, err)
	assert.True(t, userCart.Empty())

	guestCart, err := svc.GetCart(ctx, guest)
	assert.NoError(t, err)
	assert.Len(t, guestCart.Lines, 1)
}

func TestSessionService_LogoutDiscardsGuestCart(t *testing.T) {
	svc, menu, _ := setupSessionService(t)
	ctx := context.Background()
	guest := domain.GuestIdentity("sess-1")

	menu.On("GetDish", 1).Return(&domain.Dish{ID: 1, Name: "Goi Cuon", Price: 30000}, nil)
	_, err := svc.AddItem(ctx, guest, 1)
	assert.NoError(t, err)

	// Dropping back to the guest identity clears its cart so nothing
	// placed before the switch resurfaces.
	assert.NoError(t, svc.OnIdentityChange(ctx, guest))

	cart, err := svc.GetCart(ctx, guest)
	assert.NoError(t, err)
	assert.True(t, cart.Empty())

	// Switching to a user identity touches nothing.
	assert.NoError(t, svc.OnIdentityChange(ctx, domain.UserIdentity(42, "sess-1")))
}

func TestSessionService_CorruptSnapshotReadsEmpty(t *testing.T) {
	svc, _, mr := setupSessionService(t)
	ctx := context.Background()
	guest := domain.GuestIdentity("sess-1")

	mr.Set(guest.CartKey(), "{not json")

	cart, err := svc.GetCart(ctx, guest)
	assert.NoError(t, err)
	assert.True(t, cart.Empty())
}

func TestSessionService_ActiveTable(t *testing.T) {
	svc, _, _ := setupSessionService(t)
	ctx := context.Background()

	tableID, err := svc.ActiveTable(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, tableID)

	assert.NoError(t, svc.SetActiveTable(ctx, "sess-1", 7))

	tableID, err = svc.ActiveTable(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, 7, tableID)

	// A new table scan replaces the old one; there is only one slot.
	assert.NoError(t, svc.SetActiveTable(ctx, "sess-1", 9))
	tableID, _ = svc.ActiveTable(ctx, "sess-1")
	assert.Equal(t, 9, tableID)

	assert.NoError(t, svc.SetActiveTable(ctx, "sess-1", 0))
	tableID, _ = svc.ActiveTable(ctx, "sess-1")
	assert.Equal(t, 0, tableID)
}
