package service

import (
	"context"
	"errors"
	"fmt"

	"restman/internal/domain"
)

var (
	ErrDishNotFound  = errors.New("dish not found")
	ErrLineNotInCart = errors.New("dish is not in the cart")
)

// SessionService owns the client session state: one cart snapshot per
// identity key and one active-table slot per browsing session. Every
// mutation re-persists the whole snapshot before returning, so the stored
// state is never behind the returned state.
type SessionService struct {
	store  SessionStore
	dishes MenuRepository
}

func NewSessionService(store SessionStore, dishes MenuRepository) *SessionService {
	return &SessionService{store: store, dishes: dishes}
}

func (s *SessionService) GetCart(ctx context.Context, id domain.Identity) (domain.Cart, error) {
	return s.store.LoadCart(ctx, id.CartKey())
}

func (s *SessionService) AddItem(ctx context.Context, id domain.Identity, dishID int) (domain.Cart, error) {
	dish, err := s.dishes.GetDish(dishID)
	if err != nil {
		return domain.Cart{}, ErrDishNotFound
	}

	cart, err := s.store.LoadCart(ctx, id.CartKey())
	if err != nil {
		return domain.Cart{}, err
	}

	cart.Add(domain.CartLine{DishID: dish.ID, Name: dish.Name, UnitPrice: dish.Price})
	if err := s.store.SaveCart(ctx, id.CartKey(), cart); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to persist cart: %w", err)
	}
	return cart, nil
}

func (s *SessionService) SetQuantity(ctx context.Context, id domain.Identity, dishID, quantity int) (domain.Cart, error) {
	cart, err := s.store.LoadCart(ctx, id.CartKey())
	if err != nil {
		return domain.Cart{}, err
	}
	if !cart.Has(dishID) {
		return cart, ErrLineNotInCart
	}

	cart.SetQuantity(dishID, quantity)
	if err := s.store.SaveCart(ctx, id.CartKey(), cart); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to persist cart: %w", err)
	}
	return cart, nil
}

func (s *SessionService) RemoveItem(ctx context.Context, id domain.Identity, dishID int) (domain.Cart, error) {
	return s.SetQuantity(ctx, id, dishID, 0)
}

func (s *SessionService) ClearCart(ctx context.Context, id domain.Identity) error {
	return s.store.DeleteCart(ctx, id.CartKey())
}

// OnIdentityChange reconciles session state after login or logout. Carts
// are swapped by key, never merged. On logout the now-active guest cart is
// cleared: the logged-out user's dishes are discarded rather than carried
// into the guest session.
func (s *SessionService) OnIdentityChange(ctx context.Context, newID domain.Identity) error {
	if newID.IsGuest() {
		return s.store.DeleteCart(ctx, newID.CartKey())
	}
	return nil
}

func (s *SessionService) ActiveTable(ctx context.Context, sessionID string) (int, error) {
	return s.store.ActiveTable(ctx, sessionID)
}

func (s *SessionService) SetActiveTable(ctx context.Context, sessionID string, tableID int) error {
	return s.store.SetActiveTable(ctx, sessionID, tableID)
}
