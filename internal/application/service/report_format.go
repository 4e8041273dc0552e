package service

import (
	"fmt"
	"strconv"

	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	"github.com/jamaney/mmtacos-api/pkg/printer"
)

// FormatReceipt converts a customer ticket into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	writeHeader(doc, r.Header)

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Commande:", r.OrderNumber).
		KeyValue("Date:", r.Date)

	if r.TicketCode != "" {
		doc.KeyValue("Ticket:", r.TicketCode)
	}
	if r.ServedBy != "" {
		doc.KeyValue("Servi par:", r.ServedBy)
	}
	if r.PaymentMethod != "" {
		doc.KeyValue("Paiement:", r.PaymentMethod)
	}

	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, formatCFA(item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %s", formatCFA(item.UnitPrice))
		}
	}

	doc.Separator('-')

	doc.SetBold(true).
		KeyValue("TOTAL:", formatCFA(r.Total)).
		SetBold(false)

	if r.AmountPaid > 0 {
		doc.KeyValue("Recu:", formatCFA(r.AmountPaid))
	}
	if r.ChangeAmount > 0 {
		doc.KeyValue("Monnaie:", formatCFA(r.ChangeAmount))
	}

	doc.Separator('-')

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Merci de votre visite !").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// FormatSessionReport converts a shift handoff summary into ESC/POS bytes.
func FormatSessionReport(r *entity.SessionReport) []byte {
	doc := printer.NewDocument(32)

	writeHeader(doc, r.Header)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text("RAPPORT DE CAISSE").
		SetBold(false).
		SetAlign(printer.AlignLeft).
		Separator('=')

	doc.KeyValue("Session:", r.SessionCode).
		KeyValue("Caissier:", r.CashierName).
		KeyValue("Ouverture:", r.OpenedAt)
	if r.ClosedAt != "" {
		doc.KeyValue("Fermeture:", r.ClosedAt)
	}

	writeSalesBreakdown(doc, r.Items, r.Invoices)

	doc.Separator('=')
	doc.SetBold(true).
		KeyValue("TOTAL VENTES:", formatCFA(r.TotalSales)).
		SetBold(false).
		KeyValue("Commandes:", strconv.Itoa(r.TotalOrders)).
		KeyValue("Articles:", strconv.Itoa(r.TotalItems))

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// FormatDayReport converts an end-of-day summary into ESC/POS bytes.
func FormatDayReport(r *entity.DayReport) []byte {
	doc := printer.NewDocument(32)

	writeHeader(doc, r.Header)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text("RAPPORT JOURNEE").
		SetBold(false).
		SetAlign(printer.AlignLeft).
		Separator('=')

	doc.KeyValue("Journee:", r.DayCode).
		KeyValue("Date:", r.Date).
		KeyValue("Ouverture:", r.OpenedAt)
	if r.ClosedAt != "" {
		doc.KeyValue("Fermeture:", r.ClosedAt)
	}

	doc.Separator('-').
		SetBold(true).
		Text("SESSIONS").
		SetBold(false)
	for _, sess := range r.Sessions {
		doc.TextF("%s (%s)", sess.SessionCode, sess.CashierName).
			KeyValue(fmt.Sprintf("  %d cmd", sess.TotalOrders), formatCFA(sess.TotalSales))
	}

	writeSalesBreakdown(doc, r.Items, r.Invoices)

	doc.Separator('=')
	doc.SetBold(true).
		KeyValue("TOTAL JOURNEE:", formatCFA(r.TotalSales)).
		SetBold(false).
		KeyValue("Commandes:", strconv.Itoa(r.TotalOrders)).
		KeyValue("Articles:", strconv.Itoa(r.TotalItems))

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

func writeHeader(doc *printer.Document, h entity.ReceiptHeader) {
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(h.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if h.Address != "" {
		doc.Text(h.Address)
	}
	if h.Phone != "" {
		doc.Text(h.Phone)
	}
}

// writeSalesBreakdown prints the aggregated product lines followed by the
// per-ticket enumeration. Both sections are skipped when empty so a zero-sale
// report stays readable.
func writeSalesBreakdown(doc *printer.Document, items []entity.ReportItemRow, invoices []entity.ReportInvoiceRow) {
	doc.Separator('-').
		SetBold(true).
		Text("VENTES PAR PRODUIT").
		SetBold(false)
	if len(items) == 0 {
		doc.Text("Aucune vente")
	}
	for _, item := range items {
		doc.ItemLine(item.Quantity, item.Name, formatCFA(item.Revenue))
	}

	doc.Separator('-').
		SetBold(true).
		Text("TICKETS").
		SetBold(false)
	if len(invoices) == 0 {
		doc.Text("Aucun ticket")
	}
	for _, inv := range invoices {
		doc.KeyValue(inv.Reference, formatCFA(inv.Total))
	}
}

// formatCFA renders a whole-franc amount with space-grouped thousands,
// e.g. 12500 -> "12 500 CFA". Franc CFA has no subunit.
func formatCFA(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	var grouped []byte
	for i, c := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ' ')
		}
		grouped = append(grouped, c)
	}
	return sign + string(grouped) + " CFA"
}
