package enum

// SessionStatus is the lifecycle state of a cash session. The string values
// are stored as-is so the partial unique index (WHERE status = 'open') can
// enforce the one-open-session-per-day invariant at the storage layer.
type SessionStatus string

const (
	SessionStatusOpen   SessionStatus = "open"
	SessionStatusClosed SessionStatus = "closed"
)

func (s SessionStatus) String() string {
	return string(s)
}

// DayStatus is the lifecycle state of an operational day. Same storage
// convention as SessionStatus; a partial unique index on status='open'
// guarantees at most one open day system-wide.
type DayStatus string

const (
	DayStatusOpen   DayStatus = "open"
	DayStatusClosed DayStatus = "closed"
)

func (s DayStatus) String() string {
	return string(s)
}
