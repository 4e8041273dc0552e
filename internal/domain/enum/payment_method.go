package enum

// PaymentMethod is how a register order was settled. All methods are manually
// entered amounts; there is no payment-processor integration.
type PaymentMethod string

const (
	PaymentEspeces     PaymentMethod = "especes" // cash
	PaymentWave        PaymentMethod = "wave"
	PaymentOrangeMoney PaymentMethod = "orange"
)

// Valid reports whether m is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentEspeces, PaymentWave, PaymentOrangeMoney:
		return true
	}
	return false
}

func (m PaymentMethod) String() string {
	return string(m)
}

// Label returns the customer-facing French label printed on tickets.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentEspeces:
		return "Espèces"
	case PaymentWave:
		return "Wave"
	case PaymentOrangeMoney:
		return "Orange Money"
	}
	return string(m)
}
