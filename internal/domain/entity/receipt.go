package entity

// ReceiptHeader holds the store identity printed at the top of every ticket.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// ReceiptItem represents a single line item on a customer ticket.
type ReceiptItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Total     int64  `json:"total"`
}

// Receipt is a value object representing a printable customer ticket.
// It is NOT a database entity — it is composed from an order at print time.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	OrderNumber   string        `json:"order_number"`
	TicketCode    string        `json:"ticket_code,omitempty"`
	Date          string        `json:"date"`
	ServedBy      string        `json:"served_by,omitempty"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Items         []ReceiptItem `json:"items"`
	Total         int64         `json:"total"`
	AmountPaid    int64         `json:"amount_paid"`
	ChangeAmount  int64         `json:"change_amount"`
}
