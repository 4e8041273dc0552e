package entity

// Report value objects. Like Receipt, these are never persisted: they are
// composed from a closed session or day plus the orders attributed to its time
// range, and handed to the printer or returned as JSON for reprint.

// ReportItemRow is one aggregated product line in a sales breakdown: the same
// product name summed across every order in the range.
type ReportItemRow struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  int64  `json:"revenue"`
}

// ReportInvoiceRow is one order line in the ticket enumeration of a report.
type ReportInvoiceRow struct {
	Reference string `json:"reference"` // ticket code, falling back to order number
	Total     int64  `json:"total"`
}

// ReportSessionRow is one shift line in an end-of-day report.
type ReportSessionRow struct {
	SessionCode string `json:"session_code"`
	CashierName string `json:"cashier_name"`
	OpenedAt    string `json:"opened_at"`
	ClosedAt    string `json:"closed_at"`
	TotalSales  int64  `json:"total_sales"`
	TotalOrders int    `json:"total_orders"`
}

// SessionReport is the shift handoff summary (X report), printed when a
// cashier hands the register over.
type SessionReport struct {
	Header      ReceiptHeader      `json:"header"`
	SessionCode string             `json:"session_code"`
	CashierName string             `json:"cashier_name"`
	OpenedAt    string             `json:"opened_at"`
	ClosedAt    string             `json:"closed_at"`
	Items       []ReportItemRow    `json:"items"`
	Invoices    []ReportInvoiceRow `json:"invoices"`
	TotalSales  int64              `json:"total_sales"`
	TotalOrders int                `json:"total_orders"`
	TotalItems  int                `json:"total_items"`
}

// DayReport is the end-of-day summary (Z report), covering every session under
// the day alongside the independently recomputed day totals.
type DayReport struct {
	Header      ReceiptHeader      `json:"header"`
	DayCode     string             `json:"day_code"`
	Date        string             `json:"date"`
	OpenedAt    string             `json:"opened_at"`
	ClosedAt    string             `json:"closed_at"`
	Sessions    []ReportSessionRow `json:"sessions"`
	Items       []ReportItemRow    `json:"items"`
	Invoices    []ReportInvoiceRow `json:"invoices"`
	TotalSales  int64              `json:"total_sales"`
	TotalOrders int                `json:"total_orders"`
	TotalItems  int                `json:"total_items"`
}
