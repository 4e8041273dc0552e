package service

import (
	"fmt"
	"sort"

	"github.com/jamaney/mmtacos-api/internal/config"
	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	"github.com/jamaney/mmtacos-api/pkg/printer"
)

const reportTimeLayout = "02/01/2006 15:04"

// ReportService turns closed sessions and days into printable summaries. The
// builders are pure functions of their inputs; only the Print methods touch
// the printer, and a print failure never affects business state.
type ReportService struct {
	printer     printer.Printer
	printerType string
	header      entity.ReceiptHeader
}

// NewReportService creates a new report service
func NewReportService(p printer.Printer, printerType string, store config.StoreConfig) *ReportService {
	return &ReportService{
		printer:     p,
		printerType: printerType,
		header: entity.ReceiptHeader{
			StoreName: store.Name,
			Address:   store.Address,
			Phone:     store.Phone,
			Email:     store.Email,
		},
	}
}

// BuildSessionReport composes the shift handoff summary (X report) from a
// closed session and the orders attributed to its time range. Zero orders is
// a valid input and yields a zero-valued report.
func (s *ReportService) BuildSessionReport(session *entity.CashSession, orders []entity.Order) *entity.SessionReport {
	items, totalItems := aggregateItems(orders)
	totalSales, totalOrders := ledgerTotals(orders)

	report := &entity.SessionReport{
		Header:      s.header,
		SessionCode: session.SessionCode,
		CashierName: session.CashierName,
		OpenedAt:    session.OpenedAt.Format(reportTimeLayout),
		Items:       items,
		Invoices:    invoiceRows(orders),
		TotalSales:  totalSales,
		TotalOrders: totalOrders,
		TotalItems:  totalItems,
	}
	if session.ClosedAt != nil {
		report.ClosedAt = session.ClosedAt.Format(reportTimeLayout)
	}
	return report
}

// BuildDayReport composes the end-of-day summary (Z report): the aggregated
// sales breakdown over the whole day range plus one row per session ordered
// by opening time.
func (s *ReportService) BuildDayReport(day *entity.OperationalDay, sessions []entity.CashSession, orders []entity.Order) *entity.DayReport {
	items, totalItems := aggregateItems(orders)
	totalSales, totalOrders := ledgerTotals(orders)

	// Sort on the timestamp, not the formatted row, so a day that runs past
	// midnight still lists its shifts in opening order.
	ordered := make([]entity.CashSession, len(sessions))
	copy(ordered, sessions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OpenedAt.Before(ordered[j].OpenedAt)
	})

	sessionRows := make([]entity.ReportSessionRow, len(ordered))
	for i, sess := range ordered {
		row := entity.ReportSessionRow{
			SessionCode: sess.SessionCode,
			CashierName: sess.CashierName,
			OpenedAt:    sess.OpenedAt.Format(reportTimeLayout),
			TotalSales:  sess.TotalSales,
			TotalOrders: sess.TotalOrders,
		}
		if sess.ClosedAt != nil {
			row.ClosedAt = sess.ClosedAt.Format(reportTimeLayout)
		}
		sessionRows[i] = row
	}

	report := &entity.DayReport{
		Header:      s.header,
		DayCode:     day.DayCode,
		Date:        day.OpenedAt.Format("02/01/2006"),
		OpenedAt:    day.OpenedAt.Format(reportTimeLayout),
		Sessions:    sessionRows,
		Items:       items,
		Invoices:    invoiceRows(orders),
		TotalSales:  totalSales,
		TotalOrders: totalOrders,
		TotalItems:  totalItems,
	}
	if day.ClosedAt != nil {
		report.ClosedAt = day.ClosedAt.Format(reportTimeLayout)
	}
	return report
}

// BuildReceipt composes the customer ticket for an order.
func (s *ReportService) BuildReceipt(order *entity.Order) *entity.Receipt {
	items := make([]entity.ReceiptItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = entity.ReceiptItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.LineTotal(),
		}
	}
	return &entity.Receipt{
		Header:        s.header,
		OrderNumber:   order.OrderNumber,
		TicketCode:    order.TicketCode,
		Date:          order.CreatedAt.Format(reportTimeLayout),
		PaymentMethod: order.PaymentMethod.Label(),
		Items:         items,
		Total:         order.Total,
		AmountPaid:    order.AmountPaid,
		ChangeAmount:  order.ChangeAmount,
	}
}

// PrintSessionReport formats and prints a shift handoff slip.
func (s *ReportService) PrintSessionReport(report *entity.SessionReport) error {
	return s.printer.Print(FormatSessionReport(report))
}

// PrintDayReport formats and prints an end-of-day summary.
func (s *ReportService) PrintDayReport(report *entity.DayReport) error {
	return s.printer.Print(FormatDayReport(report))
}

// PrintReceipt formats and prints the customer ticket for an order.
func (s *ReportService) PrintReceipt(order *entity.Order) error {
	return s.printer.Print(FormatReceipt(s.BuildReceipt(order)))
}

// PrinterStatus describes the configured printer and its connection state.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// PrinterStatus returns the current printer connection status.
func (s *ReportService) PrinterStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "" && s.printerType != "none",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a sample ticket to the printer. The receipt is returned
// either way so the caller can show it when the printer is disabled.
func (s *ReportService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header:        s.header,
		OrderNumber:   "000",
		TicketCode:    "TK-TEST0000",
		Date:          "01/01/2026 12:00",
		PaymentMethod: "Especes",
		Items: []entity.ReceiptItem{
			{Name: "Tacos Viande Hachee", Quantity: 1, UnitPrice: 3000, Total: 3000},
			{Name: "Boisson", Quantity: 2, UnitPrice: 500, Total: 1000},
		},
		Total:        4000,
		AmountPaid:   5000,
		ChangeAmount: 1000,
	}

	if err := s.printer.Print(FormatReceipt(receipt)); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}
	return receipt, nil
}

// aggregateItems merges line items across orders by product name, summing
// quantity and revenue, independent of how each order structured its lines.
// Rows come back sorted alphabetically for the sales breakdown.
func aggregateItems(orders []entity.Order) ([]entity.ReportItemRow, int) {
	agg := make(map[string]*entity.ReportItemRow)
	var totalItems int
	for _, order := range orders {
		for _, item := range order.Items {
			row, ok := agg[item.Name]
			if !ok {
				row = &entity.ReportItemRow{Name: item.Name}
				agg[item.Name] = row
			}
			row.Quantity += item.Quantity
			row.Revenue += item.LineTotal()
			totalItems += item.Quantity
		}
	}

	rows := make([]entity.ReportItemRow, 0, len(agg))
	for _, row := range agg {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, totalItems
}

// invoiceRows enumerates the orders in the slice's own order, which for a
// ledger range query is created_at then daily sequence: stable insertion
// order even for orders sharing a timestamp.
func invoiceRows(orders []entity.Order) []entity.ReportInvoiceRow {
	rows := make([]entity.ReportInvoiceRow, len(orders))
	for i, order := range orders {
		ref := order.TicketCode
		if ref == "" {
			ref = order.OrderNumber
		}
		rows[i] = entity.ReportInvoiceRow{Reference: ref, Total: order.Total}
	}
	return rows
}
