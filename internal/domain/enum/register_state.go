package enum

// RegisterState is the system-wide gate observed by the register front-end.
// It is always derived by querying for open day/session rows, never cached,
// so concurrent terminals see a consistent view.
type RegisterState string

const (
	// RegisterDayClosed: no open operational day. Only opening a day is allowed.
	RegisterDayClosed RegisterState = "DAY_CLOSED"
	// RegisterDayOpenNoShift: a day is open but no cashier holds the register
	// (pending handoff). Sales are blocked until a shift starts.
	RegisterDayOpenNoShift RegisterState = "DAY_OPEN_NO_SHIFT"
	// RegisterShiftOpen: open day with exactly one open shift. Sales may be
	// recorded.
	RegisterShiftOpen RegisterState = "DAY_OPEN_SHIFT_OPEN"
)

func (s RegisterState) String() string {
	return string(s)
}

// CanSell reports whether recording a sale is permitted in this state.
func (s RegisterState) CanSell() bool {
	return s == RegisterShiftOpen
}
