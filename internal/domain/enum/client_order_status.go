package enum

// ClientOrderStatus tracks an online storefront order through the kitchen.
type ClientOrderStatus string

const (
	ClientOrderNew       ClientOrderStatus = "new"
	ClientOrderConfirmed ClientOrderStatus = "confirmed"
	ClientOrderCompleted ClientOrderStatus = "completed"
	ClientOrderCancelled ClientOrderStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s ClientOrderStatus) Valid() bool {
	switch s {
	case ClientOrderNew, ClientOrderConfirmed, ClientOrderCompleted, ClientOrderCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status change is allowed: a new order is
// confirmed or cancelled, a confirmed order is completed or cancelled, and
// completed or cancelled orders are final.
func (s ClientOrderStatus) CanTransitionTo(next ClientOrderStatus) bool {
	switch s {
	case ClientOrderNew:
		return next == ClientOrderConfirmed || next == ClientOrderCancelled
	case ClientOrderConfirmed:
		return next == ClientOrderCompleted || next == ClientOrderCancelled
	}
	return false
}

func (s ClientOrderStatus) String() string {
	return string(s)
}
