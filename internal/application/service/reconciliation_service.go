package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jamaney/mmtacos-api/internal/config"
	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	"github.com/jamaney/mmtacos-api/internal/domain/enum"
	"github.com/jamaney/mmtacos-api/internal/domain/repository"
	"github.com/jamaney/mmtacos-api/pkg/apperror"
	"github.com/jamaney/mmtacos-api/pkg/pagination"
)

// RegisterState is the derived gate the register front-end observes before
// allowing checkout, together with the rows it was derived from.
type RegisterState struct {
	State   enum.RegisterState     `json:"state"`
	Day     *entity.OperationalDay `json:"day,omitempty"`
	Session *entity.CashSession    `json:"session,omitempty"`
}

// ReconciliationService is the shift-and-day state machine: it owns opening
// and closing operational days, shift handoffs, and the frozen aggregates both
// record types carry after close. Every operation re-derives the current state
// from storage before acting, so multiple register terminals can run against
// the same database without a shared in-process state.
type ReconciliationService struct {
	dayRepo     repository.OperationalDayRepository
	sessionRepo repository.CashSessionRepository
	orderRepo   repository.OrderRepository
	reports     *ReportService
	cfg         config.RegisterConfig
	now         func() time.Time
}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(
	dayRepo repository.OperationalDayRepository,
	sessionRepo repository.CashSessionRepository,
	orderRepo repository.OrderRepository,
	reports *ReportService,
	cfg config.RegisterConfig,
) *ReconciliationService {
	return &ReconciliationService{
		dayRepo:     dayRepo,
		sessionRepo: sessionRepo,
		orderRepo:   orderRepo,
		reports:     reports,
		cfg:         cfg,
		now:         time.Now,
	}
}

// CurrentState derives the register state by querying for the most recent
// open day and open session. It is intentionally not cached.
func (s *ReconciliationService) CurrentState(ctx context.Context) (*RegisterState, error) {
	day, err := s.dayRepo.GetOpen(ctx)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return &RegisterState{State: enum.RegisterDayClosed}, nil
	}

	session, err := s.sessionRepo.GetOpen(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil || session.OperationalDayID != day.ID {
		return &RegisterState{State: enum.RegisterDayOpenNoShift, Day: day}, nil
	}

	return &RegisterState{State: enum.RegisterShiftOpen, Day: day, Session: session}, nil
}

// OpenDay opens a new operational day and, atomically with it, its first cash
// session for the given cashier. Fails when a day is already open.
func (s *ReconciliationService) OpenDay(ctx context.Context, cashierName string, actor *uuid.UUID) (*RegisterState, error) {
	state, err := s.CurrentState(ctx)
	if err != nil {
		return nil, err
	}
	if state.State != enum.RegisterDayClosed {
		return nil, apperror.NewStateConflictError("An operational day is already open", state.State.String())
	}
	if cashierName == "" {
		return nil, apperror.NewBadRequestError("Cashier name is required")
	}

	openedAt := s.now()
	day := &entity.OperationalDay{
		ID:       uuid.New(),
		DayCode:  generateCode("JMM", openedAt),
		OpenedAt: openedAt,
		Status:   enum.DayStatusOpen,
		OpenedBy: actor,
	}
	session := &entity.CashSession{
		ID:               uuid.New(),
		SessionCode:      generateCode("MM", openedAt),
		CashierName:      cashierName,
		OperationalDayID: day.ID,
		OpenedAt:         openedAt,
		Status:           enum.SessionStatusOpen,
		OpenedBy:         actor,
	}

	if err := s.dayRepo.CreateWithSession(ctx, day, session); err != nil {
		return nil, err
	}

	return &RegisterState{State: enum.RegisterShiftOpen, Day: day, Session: session}, nil
}

// StartShift opens a new cash session within the already-open day. Only valid
// while the day is in the pending-handoff state (no open session).
func (s *ReconciliationService) StartShift(ctx context.Context, cashierName string, actor *uuid.UUID) (*RegisterState, error) {
	state, err := s.CurrentState(ctx)
	if err != nil {
		return nil, err
	}
	switch state.State {
	case enum.RegisterDayClosed:
		return nil, apperror.NewStateConflictError("No operational day is open", state.State.String())
	case enum.RegisterShiftOpen:
		return nil, apperror.NewStateConflictError(
			fmt.Sprintf("Shift %s is still open, end it before starting a new one", state.Session.SessionCode),
			state.State.String(),
		)
	}
	if cashierName == "" {
		return nil, apperror.NewBadRequestError("Cashier name is required")
	}

	openedAt := s.now()
	session := &entity.CashSession{
		ID:               uuid.New(),
		SessionCode:      generateCode("MM", openedAt),
		CashierName:      cashierName,
		OperationalDayID: state.Day.ID,
		OpenedAt:         openedAt,
		Status:           enum.SessionStatusOpen,
		OpenedBy:         actor,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &RegisterState{State: enum.RegisterShiftOpen, Day: state.Day, Session: session}, nil
}

// EndShift closes the open session ("passation"): it freezes the session's
// totals from the orders recorded since it opened, prints the handoff slip,
// and, when the auto-advance policy is on, immediately opens the next session
// with the opposite cashier label.
func (s *ReconciliationService) EndShift(ctx context.Context, actor *uuid.UUID) (*RegisterState, *entity.SessionReport, error) {
	state, err := s.CurrentState(ctx)
	if err != nil {
		return nil, nil, err
	}
	if state.State != enum.RegisterShiftOpen {
		return nil, nil, apperror.NewStateConflictError("No shift is open", state.State.String())
	}

	session := state.Session
	closedAt := s.now()

	report, err := s.closeSession(ctx, session, closedAt)
	if err != nil {
		return nil, nil, err
	}

	// The close is committed; printing is best-effort from here on.
	if err := s.reports.PrintSessionReport(report); err != nil {
		log.Printf("Report print failed for session %s: %v", session.SessionCode, err)
	}

	if !s.cfg.AutoAdvanceShift {
		return &RegisterState{State: enum.RegisterDayOpenNoShift, Day: state.Day}, report, nil
	}

	next := &entity.CashSession{
		ID:               uuid.New(),
		SessionCode:      generateCode("MM", closedAt),
		CashierName:      s.nextCashierLabel(session.CashierName),
		OperationalDayID: state.Day.ID,
		OpenedAt:         closedAt,
		Status:           enum.SessionStatusOpen,
		OpenedBy:         actor,
	}
	if err := s.sessionRepo.Create(ctx, next); err != nil {
		// The handoff slip is printed and the old shift is closed; a failed
		// auto-advance leaves the day in the pending-handoff state, which the
		// caller can resolve with an explicit StartShift.
		return &RegisterState{State: enum.RegisterDayOpenNoShift, Day: state.Day}, report, err
	}

	return &RegisterState{State: enum.RegisterShiftOpen, Day: state.Day, Session: next}, report, nil
}

// CloseDay ends the operational day: it force-closes any still-open session
// (without auto-advancing), recomputes the day totals independently over the
// whole day range, marks the day closed and prints the end-of-day summary.
func (s *ReconciliationService) CloseDay(ctx context.Context, actor *uuid.UUID) (*entity.OperationalDay, *entity.DayReport, error) {
	state, err := s.CurrentState(ctx)
	if err != nil {
		return nil, nil, err
	}
	if state.State == enum.RegisterDayClosed {
		return nil, nil, apperror.NewStateConflictError("No operational day is open", state.State.String())
	}

	day := state.Day
	closedAt := s.now()

	if state.Session != nil {
		if _, err := s.closeSession(ctx, state.Session, closedAt); err != nil {
			return nil, nil, err
		}
	}

	// Day totals come from the full day range of the order ledger, not from
	// summing the sessions' frozen totals. The day report carries both numbers
	// so a discrepancy shows up in audit.
	orders, err := s.orderRepo.ListInRange(ctx, day.OpenedAt, closedAt)
	if err != nil {
		return nil, nil, err
	}
	totalSales, totalOrders := ledgerTotals(orders)

	if err := s.dayRepo.Close(ctx, day.ID, closedAt, totalSales, totalOrders, actor); err != nil {
		return nil, nil, err
	}
	day.ClosedAt = &closedAt
	day.Status = enum.DayStatusClosed
	day.TotalSales = totalSales
	day.TotalOrders = totalOrders
	day.ClosedBy = actor

	sessions, err := s.sessionRepo.ListByDay(ctx, day.ID)
	if err != nil {
		return day, nil, err
	}

	report := s.reports.BuildDayReport(day, sessions, orders)
	if err := s.reports.PrintDayReport(report); err != nil {
		log.Printf("Report print failed for day %s: %v", day.DayCode, err)
	}

	return day, report, nil
}

// SessionReport rebuilds the handoff report of a closed session for reprint,
// using the session's frozen time range against the order ledger.
func (s *ReconciliationService) SessionReport(ctx context.Context, sessionID uuid.UUID) (*entity.SessionReport, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Session")
	}
	if session.ClosedAt == nil {
		return nil, apperror.NewBadRequestError("Session is still open, end it to get its report")
	}

	orders, err := s.orderRepo.ListInRange(ctx, session.OpenedAt, *session.ClosedAt)
	if err != nil {
		return nil, err
	}
	return s.reports.BuildSessionReport(session, orders), nil
}

// DayReport rebuilds the end-of-day report of a closed day for reprint.
func (s *ReconciliationService) DayReport(ctx context.Context, dayID uuid.UUID) (*entity.DayReport, error) {
	day, err := s.dayRepo.GetByID(ctx, dayID)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, apperror.NewNotFoundError("Operational day")
	}
	if day.ClosedAt == nil {
		return nil, apperror.NewBadRequestError("Operational day is still open, close it to get its report")
	}

	orders, err := s.orderRepo.ListInRange(ctx, day.OpenedAt, *day.ClosedAt)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.ListByDay(ctx, day.ID)
	if err != nil {
		return nil, err
	}
	return s.reports.BuildDayReport(day, sessions, orders), nil
}

// ListDays returns the day history for the cash-management surface.
func (s *ReconciliationService) ListDays(ctx context.Context, params *pagination.PaginationParams) ([]entity.OperationalDay, int64, error) {
	return s.dayRepo.List(ctx, params)
}

// closeSession freezes and closes one session: totals are computed once, from
// the orders in [opened_at, closedAt), and never recomputed afterward. The
// session struct is mutated to its closed form and the handoff report built
// from exactly the orders that were counted.
func (s *ReconciliationService) closeSession(ctx context.Context, session *entity.CashSession, closedAt time.Time) (*entity.SessionReport, error) {
	orders, err := s.orderRepo.ListInRange(ctx, session.OpenedAt, closedAt)
	if err != nil {
		return nil, err
	}
	totalSales, totalOrders := ledgerTotals(orders)

	if err := s.sessionRepo.Close(ctx, session.ID, closedAt, totalSales, totalOrders); err != nil {
		return nil, err
	}

	session.ClosedAt = &closedAt
	session.Status = enum.SessionStatusClosed
	session.TotalSales = totalSales
	session.TotalOrders = totalOrders

	return s.reports.BuildSessionReport(session, orders), nil
}

// nextCashierLabel toggles between the two configured shift labels. Unknown
// labels fall back to the morning label.
func (s *ReconciliationService) nextCashierLabel(current string) string {
	if current == s.cfg.MorningLabel {
		return s.cfg.EveningLabel
	}
	return s.cfg.MorningLabel
}

// ledgerTotals sums total sales and counts orders over a ledger slice.
func ledgerTotals(orders []entity.Order) (int64, int) {
	var sales int64
	for _, o := range orders {
		sales += o.Total
	}
	return sales, len(orders)
}

// generateCode builds a human-readable record code from the timestamp plus a
// random 4-digit disambiguator, e.g. MM-250831-4821.
func generateCode(prefix string, t time.Time) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, t.Format("060102"), 1000+rand.Intn(9000))
}
