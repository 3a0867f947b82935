package service

import (
	"context"
	"errors"
	"log"

	"restman/internal/domain"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrCheckoutBlocked = errors.New("checkout requires an active table or a logged-in user")
)

// CheckoutService routes a cart submission to the dine-in or online order
// path and transitions session state on success.
type CheckoutService struct {
	sessions SessionServiceInterface
	orders   OrderServiceInterface
}

func NewCheckoutService(sessions SessionServiceInterface, orders OrderServiceInterface) *CheckoutService {
	return &CheckoutService{sessions: sessions, orders: orders}
}

// Decide picks the checkout path from session state. An active table wins
// over a logged-in user; with neither, checkout is blocked and the cart is
// left untouched.
func (s *CheckoutService) Decide(ctx context.Context, id domain.Identity) (domain.CheckoutPlan, error) {
	tableID, err := s.sessions.ActiveTable(ctx, id.SessionID)
	if err != nil {
		return domain.CheckoutPlan{}, err
	}
	if tableID != 0 {
		return domain.CheckoutPlan{Kind: domain.PlanDineIn, TableID: tableID}, nil
	}
	if !id.IsGuest() {
		return domain.CheckoutPlan{Kind: domain.PlanOnline, UserID: id.UserID}, nil
	}
	return domain.CheckoutPlan{Kind: domain.PlanBlocked}, nil
}

// Submit executes the plan for the identity's current cart. The returned
// string is a payment redirect URL, empty unless the method is redirect
// based. The cart is cleared only after the step that makes it safe to
// lose: order creation for dine-in and cash, redirect URL issuance for
// MoMo and VNPay.
func (s *CheckoutService) Submit(ctx context.Context, id domain.Identity, method domain.PaymentMethod) (*domain.Order, string, error) {
	cart, err := s.sessions.GetCart(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if cart.Empty() {
		return nil, "", ErrEmptyCart
	}

	plan, err := s.Decide(ctx, id)
	if err != nil {
		return nil, "", err
	}

	switch plan.Kind {
	case domain.PlanDineIn:
		order, err := s.orders.PlaceAtTable(ctx, plan.TableID, cart.Lines)
		if err != nil {
			return nil, "", err
		}
		if err := s.sessions.ClearCart(ctx, id); err != nil {
			log.Printf("[restman] failed to clear cart after dine-in order %d: %v", order.ID, err)
		}
		if err := s.sessions.SetActiveTable(ctx, id.SessionID, 0); err != nil {
			log.Printf("[restman] failed to clear table session after order %d: %v", order.ID, err)
		}
		return order, "", nil

	case domain.PlanOnline:
		order, err := s.orders.CreateOnline(ctx, plan.UserID, method, cart.Lines)
		if err != nil {
			return nil, "", err
		}
		if !method.RedirectBased() {
			if err := s.sessions.ClearCart(ctx, id); err != nil {
				log.Printf("[restman] failed to clear cart after order %d: %v", order.ID, err)
			}
			return order, "", nil
		}

		// The cart survives a failed payment initiation so the customer
		// can retry from the persisted snapshot.
		redirect, err := s.orders.InitiatePayment(ctx, order.ID, method)
		if err != nil {
			return order, "", err
		}
		if err := s.sessions.ClearCart(ctx, id); err != nil {
			log.Printf("[restman] failed to clear cart after payment init for order %d: %v", order.ID, err)
		}
		return order, redirect, nil

	default:
		return nil, "", ErrCheckoutBlocked
	}
}
