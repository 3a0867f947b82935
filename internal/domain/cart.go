package domain

import "strconv"

// Identity is the owner of a cart session: either an authenticated user or
// an anonymous browsing session.
type Identity struct {
	UserID    int
	SessionID string
}

func GuestIdentity(sessionID string) Identity {
	return Identity{SessionID: sessionID}
}

func UserIdentity(userID int, sessionID string) Identity {
	return Identity{UserID: userID, SessionID: sessionID}
}

func (id Identity) IsGuest() bool {
	return id.UserID == 0
}

// CartKey is the storage key for the identity's cart snapshot. Guest and
// user carts never share a key, so switching identities can never expose
// one cart under the other's key.
func (id Identity) CartKey() string {
	if id.IsGuest() {
		return "cart:guest:" + id.SessionID
	}
	return "cart:user:" + strconv.Itoa(id.UserID)
}

// CartLine is one dish in a cart. Lines are unique by dish id; quantity
// zero removes the line.
type CartLine struct {
	DishID    int    `json:"dish_id"`
	Name      string `json:"name,omitempty"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// Cart keeps lines in insertion order and unique by dish id. The zero
// value is an empty cart.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c *Cart) find(dishID int) int {
	for i, l := range c.Lines {
		if l.DishID == dishID {
			return i
		}
	}
	return -1
}

// Has reports whether the cart holds a line for the dish.
func (c *Cart) Has(dishID int) bool {
	return c.find(dishID) >= 0
}

// Add inserts the dish at quantity 1 or increments the existing line.
func (c *Cart) Add(line CartLine) {
	if i := c.find(line.DishID); i >= 0 {
		c.Lines[i].Quantity++
		return
	}
	line.Quantity = 1
	c.Lines = append(c.Lines, line)
}

// SetQuantity overwrites a line's quantity; zero or negative removes the
// line entirely.
func (c *Cart) SetQuantity(dishID, quantity int) {
	i := c.find(dishID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		return
	}
	c.Lines[i].Quantity = quantity
}

func (c *Cart) Remove(dishID int) {
	c.SetQuantity(dishID, 0)
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Total sums unit price times quantity in integer minor units.
func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.UnitPrice * int64(l.Quantity)
	}
	return total
}

type PlanKind string

const (
	PlanDineIn  PlanKind = "DINE_IN"
	PlanOnline  PlanKind = "ONLINE"
	PlanBlocked PlanKind = "BLOCKED"
)

// CheckoutPlan is the routing decision for a cart submission. An active
// table always wins over a logged-in user, so a logged-in customer who
// scanned a table QR code places a dine-in order.
type CheckoutPlan struct {
	Kind          PlanKind      `json:"kind"`
	TableID       int           `json:"table_id,omitempty"`
	UserID        int           `json:"user_id,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
}
