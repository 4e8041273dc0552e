package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	"github.com/jamaney/mmtacos-api/internal/domain/enum"
)

func TestFormatCFA(t *testing.T) {
	assert.Equal(t, "0 CFA", formatCFA(0))
	assert.Equal(t, "500 CFA", formatCFA(500))
	assert.Equal(t, "2 500 CFA", formatCFA(2500))
	assert.Equal(t, "12 500 CFA", formatCFA(12500))
	assert.Equal(t, "1 250 000 CFA", formatCFA(1250000))
	assert.Equal(t, "-7 500 CFA", formatCFA(-7500))
}

func TestAggregateItemsMergesByNameSorted(t *testing.T) {
	orders := []entity.Order{
		ledgerOrder(0,
			entity.OrderItem{Name: "Tacos Poulet", Quantity: 2, UnitPrice: 2500},
			entity.OrderItem{Name: "Boisson", Quantity: 1, UnitPrice: 500},
		),
		ledgerOrder(0,
			entity.OrderItem{Name: "Tacos Poulet", Quantity: 1, UnitPrice: 3000},
		),
	}

	rows, totalItems := aggregateItems(orders)
	require.Len(t, rows, 2)
	assert.Equal(t, 4, totalItems)

	assert.Equal(t, "Boisson", rows[0].Name)
	assert.Equal(t, 1, rows[0].Quantity)
	assert.Equal(t, int64(500), rows[0].Revenue)

	assert.Equal(t, "Tacos Poulet", rows[1].Name)
	assert.Equal(t, 3, rows[1].Quantity)
	assert.Equal(t, int64(8000), rows[1].Revenue)
}

func TestInvoiceRowsFallBackToOrderNumber(t *testing.T) {
	withCode := ledgerOrder(3000)
	noCode := ledgerOrder(1500)
	noCode.TicketCode = ""
	noCode.OrderNumber = "015"

	rows := invoiceRows([]entity.Order{withCode, noCode})
	require.Len(t, rows, 2)
	assert.Equal(t, withCode.TicketCode, rows[0].Reference)
	assert.Equal(t, int64(3000), rows[0].Total)
	assert.Equal(t, "015", rows[1].Reference)
}

func TestBuildSessionReportOpenSession(t *testing.T) {
	svc := testReportService()
	session := openSessionRow(uuid.New())

	report := svc.BuildSessionReport(session, nil)
	assert.Equal(t, "MM TACOS", report.Header.StoreName)
	assert.Equal(t, session.SessionCode, report.SessionCode)
	assert.Equal(t, "14/03/2026 09:00", report.OpenedAt)
	assert.Empty(t, report.ClosedAt)
	assert.Zero(t, report.TotalSales)
	assert.Empty(t, report.Items)
	assert.Empty(t, report.Invoices)
}

func TestBuildDayReportOrdersSessionsByOpeningTime(t *testing.T) {
	svc := testReportService()
	day := openDayRow()

	evening := *openSessionRow(day.ID)
	evening.SessionCode = "MM-260314-0002"
	evening.CashierName = "Soir"
	evening.OpenedAt = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	morning := *openSessionRow(day.ID)
	morning.SessionCode = "MM-260314-0001"

	report := svc.BuildDayReport(day, []entity.CashSession{evening, morning}, nil)
	require.Len(t, report.Sessions, 2)
	assert.Equal(t, "MM-260314-0001", report.Sessions[0].SessionCode)
	assert.Equal(t, "MM-260314-0002", report.Sessions[1].SessionCode)
	assert.Equal(t, "14/03/2026", report.Date)
}

func TestBuildDayReportSessionOrderAcrossMidnight(t *testing.T) {
	svc := testReportService()
	day := openDayRow()
	day.OpenedAt = time.Date(2026, 12, 31, 21, 0, 0, 0, time.UTC)

	// A new-year's day runs past midnight, so the formatted timestamps
	// compare backwards ("01/01" < "31/12") while the real order does not.
	late := *openSessionRow(day.ID)
	late.SessionCode = "MM-261231-0001"
	late.OpenedAt = time.Date(2026, 12, 31, 22, 0, 0, 0, time.UTC)
	afterMidnight := *openSessionRow(day.ID)
	afterMidnight.SessionCode = "MM-261231-0002"
	afterMidnight.OpenedAt = time.Date(2027, 1, 1, 1, 0, 0, 0, time.UTC)

	report := svc.BuildDayReport(day, []entity.CashSession{afterMidnight, late}, nil)
	require.Len(t, report.Sessions, 2)
	assert.Equal(t, "MM-261231-0001", report.Sessions[0].SessionCode)
	assert.Equal(t, "MM-261231-0002", report.Sessions[1].SessionCode)
}

func TestBuildDayReportCrossChecksLedger(t *testing.T) {
	svc := testReportService()
	day := openDayRow()
	closedAt := day.OpenedAt.Add(13 * time.Hour)
	day.ClosedAt = &closedAt
	day.TotalSales = 9000
	day.TotalOrders = 2

	session := *openSessionRow(day.ID)
	session.TotalSales = 9000
	session.TotalOrders = 2

	orders := []entity.Order{
		ledgerOrder(5000, entity.OrderItem{Name: "Tacos Viande", Quantity: 2, UnitPrice: 2500}),
		ledgerOrder(4000, entity.OrderItem{Name: "Boisson", Quantity: 8, UnitPrice: 500}),
	}

	report := svc.BuildDayReport(day, []entity.CashSession{session}, orders)
	// day totals come from the ledger, not the session rows
	assert.Equal(t, int64(9000), report.TotalSales)
	assert.Equal(t, 2, report.TotalOrders)
	assert.Equal(t, 10, report.TotalItems)
	assert.Equal(t, int64(9000), report.Sessions[0].TotalSales)
}

func TestBuildReceipt(t *testing.T) {
	svc := testReportService()
	order := &entity.Order{
		ID:          uuid.New(),
		OrderNumber: "012",
		TicketCode:  "TK-A1B2C3D4",
		Items: []entity.OrderItem{
			{Name: "Tacos Poulet", Quantity: 2, UnitPrice: 2500},
		},
		Total:         5000,
		PaymentMethod: enum.PaymentOrangeMoney,
		AmountPaid:    5000,
		CreatedAt:     time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC),
	}

	receipt := svc.BuildReceipt(order)
	assert.Equal(t, "012", receipt.OrderNumber)
	assert.Equal(t, "TK-A1B2C3D4", receipt.TicketCode)
	assert.Equal(t, "14/03/2026 12:30", receipt.Date)
	assert.Equal(t, "Orange Money", receipt.PaymentMethod)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, int64(5000), receipt.Items[0].Total)
	assert.Zero(t, receipt.ChangeAmount)
}

func TestFormatSessionReportContainsSections(t *testing.T) {
	report := &entity.SessionReport{
		Header:      entity.ReceiptHeader{StoreName: "MM TACOS"},
		SessionCode: "MM-260314-0001",
		CashierName: "Matin",
		OpenedAt:    "14/03/2026 09:00",
		ClosedAt:    "14/03/2026 15:00",
		Items:       []entity.ReportItemRow{{Name: "Tacos Poulet", Quantity: 3, Revenue: 7500}},
		Invoices:    []entity.ReportInvoiceRow{{Reference: "TK-A1B2C3D4", Total: 7500}},
		TotalSales:  7500,
		TotalOrders: 1,
		TotalItems:  3,
	}

	out := string(FormatSessionReport(report))
	assert.Contains(t, out, "RAPPORT DE CAISSE")
	assert.Contains(t, out, "MM-260314-0001")
	assert.Contains(t, out, "Matin")
	assert.Contains(t, out, "VENTES PAR PRODUIT")
	assert.Contains(t, out, "TICKETS")
	assert.Contains(t, out, "7 500 CFA")
}

func TestFormatSessionReportZeroSales(t *testing.T) {
	report := &entity.SessionReport{
		Header:      entity.ReceiptHeader{StoreName: "MM TACOS"},
		SessionCode: "MM-260314-0001",
		CashierName: "Matin",
		OpenedAt:    "14/03/2026 09:00",
	}

	out := string(FormatSessionReport(report))
	assert.Contains(t, out, "Aucune vente")
	assert.Contains(t, out, "Aucun ticket")
	assert.Contains(t, out, "0 CFA")
}

func TestFormatDayReportListsSessions(t *testing.T) {
	report := &entity.DayReport{
		Header:  entity.ReceiptHeader{StoreName: "MM TACOS"},
		DayCode: "JMM-260314-0001",
		Date:    "14/03/2026",
		Sessions: []entity.ReportSessionRow{
			{SessionCode: "MM-260314-0001", CashierName: "Matin", TotalSales: 42000, TotalOrders: 12},
			{SessionCode: "MM-260314-0002", CashierName: "Soir", TotalSales: 58500, TotalOrders: 17},
		},
		TotalSales:  100500,
		TotalOrders: 29,
	}

	out := string(FormatDayReport(report))
	assert.Contains(t, out, "RAPPORT JOURNEE")
	assert.Contains(t, out, "MM-260314-0001 (Matin)")
	assert.Contains(t, out, "MM-260314-0002 (Soir)")
	assert.Contains(t, out, "12 cmd")
	assert.Contains(t, out, "100 500 CFA")
}

func TestFormatReceiptShowsUnitPriceForMultiQuantity(t *testing.T) {
	receipt := &entity.Receipt{
		Header:      entity.ReceiptHeader{StoreName: "MM TACOS"},
		OrderNumber: "003",
		Date:        "14/03/2026 12:30",
		Items: []entity.ReceiptItem{
			{Name: "Tacos Poulet", Quantity: 2, UnitPrice: 2500, Total: 5000},
			{Name: "Boisson", Quantity: 1, UnitPrice: 500, Total: 500},
		},
		Total:        5500,
		AmountPaid:   6000,
		ChangeAmount: 500,
	}

	out := string(FormatReceipt(receipt))
	assert.Contains(t, out, "Merci de votre visite !")
	assert.Contains(t, out, "@ 2 500 CFA")
	assert.Contains(t, out, "Monnaie:")
	// single-quantity lines do not repeat the unit price
	assert.NotContains(t, out, "@ 500 CFA")
}
