package request

// OpenDayRequest opens the operational day with its first cashier
type OpenDayRequest struct {
	CashierName string `json:"cashier_name" binding:"required,min=1,max=100"`
}

// StartShiftRequest opens a new cash session after a handoff
type StartShiftRequest struct {
	CashierName string `json:"cashier_name" binding:"required,min=1,max=100"`
}

// SaleItemRequest is one line of a register sale
type SaleItemRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	UnitPrice int64  `json:"unit_price" binding:"required,min=1"`
}

// RecordSaleRequest records a sale at the register
type RecordSaleRequest struct {
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	AmountPaid    int64             `json:"amount_paid" binding:"required,min=1"`
}
