package domain

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleWaiter   Role = "WAITER"
	RoleCustomer Role = "CUSTOMER"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleWaiter, RoleCustomer:
		return true
	}
	return false
}

// Capability checks replace ad hoc role-list membership tests at call sites.

func (r Role) CanManageBookings() bool {
	return r == RoleAdmin || r == RoleManager
}

func (r Role) CanManageOrders() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleWaiter
}

func (r Role) CanManageTables() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleWaiter
}

func (r Role) CanViewStatistics() bool {
	return r == RoleAdmin || r == RoleManager
}

func (r Role) CanModerateReviews() bool {
	return r == RoleAdmin || r == RoleManager
}

// IsStaff reports whether the role sees all bookings and orders rather
// than only its own.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleWaiter
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Cancellable reports whether the requester may still cancel the booking.
// COMPLETED and CANCELLED are terminal for the requester; the check runs
// before any network or storage call is made.
func (s BookingStatus) Cancellable() bool {
	return s == BookingPending || s == BookingConfirmed
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPaid      OrderStatus = "PAID"
	OrderShipping  OrderStatus = "SHIPPING"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderPaid, OrderShipping, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

type OrderOrigin string

const (
	OriginOnline OrderOrigin = "ONLINE"
	OriginDineIn OrderOrigin = "DINE_IN"
)

// AllowsStatus restricts dine-in orders to the pay-at-table states; the
// online PAID and SHIPPING stages never apply to them.
func (o OrderOrigin) AllowsStatus(s OrderStatus) bool {
	if o != OriginDineIn {
		return true
	}
	return s == OrderPending || s == OrderCompleted || s == OrderCancelled
}

type PaymentMethod string

const (
	PayCash  PaymentMethod = "CASH"
	PayMoMo  PaymentMethod = "MOMO"
	PayVNPay PaymentMethod = "VNPAY"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PayCash, PayMoMo, PayVNPay:
		return true
	}
	return false
}

// RedirectBased reports whether the method hands the customer off to an
// external provider URL after order creation.
func (m PaymentMethod) RedirectBased() bool {
	return m == PayMoMo || m == PayVNPay
}

type TableStatus string

const (
	TableAvailable TableStatus = "AVAILABLE"
	TableOccupied  TableStatus = "OCCUPIED"
	TableCleaning  TableStatus = "CLEANING"
)

func ValidTableStatus(s TableStatus) bool {
	switch s {
	case TableAvailable, TableOccupied, TableCleaning:
		return true
	}
	return false
}
