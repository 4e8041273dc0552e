package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamaney/mmtacos-api/internal/config"
	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	"github.com/jamaney/mmtacos-api/internal/domain/enum"
	"github.com/jamaney/mmtacos-api/internal/domain/repository"
	"github.com/jamaney/mmtacos-api/pkg/apperror"
	"github.com/jamaney/mmtacos-api/pkg/pagination"
	"github.com/jamaney/mmtacos-api/pkg/printer"
)

type fakeDayRepo struct {
	createWithSessionFn func(ctx context.Context, day *entity.OperationalDay, session *entity.CashSession) error
	getByIDFn           func(ctx context.Context, id uuid.UUID) (*entity.OperationalDay, error)
	getOpenFn           func(ctx context.Context) (*entity.OperationalDay, error)
	closeFn             func(ctx context.Context, id uuid.UUID, closedAt time.Time, totalSales int64, totalOrders int, closedBy *uuid.UUID) error
	listFn              func(ctx context.Context, params *pagination.PaginationParams) ([]entity.OperationalDay, int64, error)
}

func (f *fakeDayRepo) CreateWithSession(ctx context.Context, day *entity.OperationalDay, session *entity.CashSession) error {
	return f.createWithSessionFn(ctx, day, session)
}
func (f *fakeDayRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.OperationalDay, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeDayRepo) GetOpen(ctx context.Context) (*entity.OperationalDay, error) {
	if f.getOpenFn == nil {
		return nil, nil
	}
	return f.getOpenFn(ctx)
}
func (f *fakeDayRepo) Close(ctx context.Context, id uuid.UUID, closedAt time.Time, totalSales int64, totalOrders int, closedBy *uuid.UUID) error {
	return f.closeFn(ctx, id, closedAt, totalSales, totalOrders, closedBy)
}
func (f *fakeDayRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.OperationalDay, int64, error) {
	return f.listFn(ctx, params)
}

type fakeSessionRepo struct {
	createFn    func(ctx context.Context, session *entity.CashSession) error
	getByIDFn   func(ctx context.Context, id uuid.UUID) (*entity.CashSession, error)
	getOpenFn   func(ctx context.Context) (*entity.CashSession, error)
	closeFn     func(ctx context.Context, id uuid.UUID, closedAt time.Time, totalSales int64, totalOrders int) error
	listByDayFn func(ctx context.Context, dayID uuid.UUID) ([]entity.CashSession, error)
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.CashSession) error {
	return f.createFn(ctx, session)
}
func (f *fakeSessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.CashSession, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeSessionRepo) GetOpen(ctx context.Context) (*entity.CashSession, error) {
	if f.getOpenFn == nil {
		return nil, nil
	}
	return f.getOpenFn(ctx)
}
func (f *fakeSessionRepo) Close(ctx context.Context, id uuid.UUID, closedAt time.Time, totalSales int64, totalOrders int) error {
	return f.closeFn(ctx, id, closedAt, totalSales, totalOrders)
}
func (f *fakeSessionRepo) ListByDay(ctx context.Context, dayID uuid.UUID) ([]entity.CashSession, error) {
	if f.listByDayFn == nil {
		return nil, nil
	}
	return f.listByDayFn(ctx, dayID)
}

type fakeOrderRepo struct {
	createFn          func(ctx context.Context, order *entity.Order) error
	getByIDFn         func(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	getByTicketCodeFn func(ctx context.Context, ticketCode string) (*entity.Order, error)
	listFn            func(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error)
	listInRangeFn     func(ctx context.Context, from, to time.Time) ([]entity.Order, error)
	listBySessionFn   func(ctx context.Context, sessionID uuid.UUID) ([]entity.Order, error)
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	return f.createFn(ctx, order)
}
func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeOrderRepo) GetByTicketCode(ctx context.Context, ticketCode string) (*entity.Order, error) {
	return f.getByTicketCodeFn(ctx, ticketCode)
}
func (f *fakeOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return f.listFn(ctx, params)
}
func (f *fakeOrderRepo) ListInRange(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
	if f.listInRangeFn == nil {
		return nil, nil
	}
	return f.listInRangeFn(ctx, from, to)
}
func (f *fakeOrderRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Order, error) {
	return f.listBySessionFn(ctx, sessionID)
}

type fakeSequenceRepo struct {
	nextFn func(ctx context.Context, day time.Time) (int, error)
}

func (f *fakeSequenceRepo) NextDailySequence(ctx context.Context, day time.Time) (int, error) {
	return f.nextFn(ctx, day)
}

func testReportService() *ReportService {
	return NewReportService(printer.NewNullPrinter(), "none", config.StoreConfig{
		Name:    "MM TACOS",
		Address: "Bamako, Mali",
		Phone:   "+223 70 00 00 00",
	})
}

func testRegisterConfig() config.RegisterConfig {
	return config.RegisterConfig{
		AutoAdvanceShift: false,
		MorningLabel:     "Matin",
		EveningLabel:     "Soir",
	}
}

func newReconciliation(dayRepo *fakeDayRepo, sessionRepo *fakeSessionRepo, orderRepo *fakeOrderRepo, cfg config.RegisterConfig) *ReconciliationService {
	svc := NewReconciliationService(dayRepo, sessionRepo, orderRepo, testReportService(), cfg)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 21, 30, 0, 0, time.UTC) }
	return svc
}

func openDayRow() *entity.OperationalDay {
	return &entity.OperationalDay{
		ID:       uuid.New(),
		DayCode:  "JMM-260314-1234",
		OpenedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		Status:   enum.DayStatusOpen,
	}
}

func openSessionRow(dayID uuid.UUID) *entity.CashSession {
	return &entity.CashSession{
		ID:               uuid.New(),
		SessionCode:      "MM-260314-5678",
		CashierName:      "Matin",
		OperationalDayID: dayID,
		OpenedAt:         time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		Status:           enum.SessionStatusOpen,
	}
}

func ledgerOrder(total int64, items ...entity.OrderItem) entity.Order {
	return entity.Order{
		ID:            uuid.New(),
		OrderNumber:   "001",
		TicketCode:    "TK-" + uuid.New().String()[:8],
		Items:         items,
		Total:         total,
		PaymentMethod: enum.PaymentEspeces,
	}
}

func TestCurrentStateDayClosed(t *testing.T) {
	svc := newReconciliation(&fakeDayRepo{}, &fakeSessionRepo{}, &fakeOrderRepo{}, testRegisterConfig())

	state, err := svc.CurrentState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, enum.RegisterDayClosed, state.State)
	assert.Nil(t, state.Day)
	assert.Nil(t, state.Session)
}

func TestCurrentStateDayOpenNoShift(t *testing.T) {
	day := openDayRow()
	dayRepo := &fakeDayRepo{getOpenFn: func(ctx context.Context) (*entity.OperationalDay, error) {
		return day, nil
	}}
	svc := newReconciliation(dayRepo, &fakeSessionRepo{}, &fakeOrderRepo{}, testRegisterConfig())

	state, err := svc.CurrentState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, enum.RegisterDayOpenNoShift, state.State)
	assert.Equal(t, day.ID, state.Day.ID)
	assert.False(t, state.State.CanSell())
}

func TestCurrentStateShiftOpen(t *testing.T) {
	day := openDayRow()
	session := openSessionRow(day.ID)
	dayRepo := &fakeDayRepo{getOpenFn: func(ctx context.Context) (*entity.OperationalDay, error) {
		return day, nil
	}}
	sessionRepo := &fakeSessionRepo{getOpenFn: func(ctx context.Context) (*entity.CashSession, error) {
		return session, nil
	}}
	svc := newReconciliation(dayRepo, sessionRepo, &fakeOrderRepo{}, testRegisterConfig())

	state, err := svc.CurrentState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, enum.RegisterShiftOpen, state.State)
	assert.True(t, state.State.CanSell())
	assert.Equal(t, session.ID, state.Session.ID)
}

func TestCurrentStateIgnoresSessionOfAnotherDay(t *testing.T) {
	day := openDayRow()
	stale := openSessionRow(uuid.New())
	dayRepo := &fakeDayRepo{getOpenFn: func(ctx context.Context) (*entity.OperationalDay, error) {
		return day, nil
	}}
	sessionRepo := &fakeSessionRepo{getOpenFn: func(ctx context.Context) (*entity.CashSession, error) {
		return stale, nil
	}}
	svc := newReconciliation(dayRepo, sessionRepo, &fakeOrderRepo{}, testRegisterConfig())

	state, err := svc.CurrentState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, enum.RegisterDayOpenNoShift, state.State)
}

func TestOpenDayCreatesDayAndFirstSession(t *testing.T) {
	var createdDay *entity.OperationalDay
	var createdSession *entity.CashSession
	dayRepo := &fakeDayRepo{
		createWithSessionFn: func(ctx context.Context, day *entity.OperationalDay, session *entity.CashSession) error {
			createdDay, createdSession = day, session
			return nil
		},
	}
	svc := newReconciliation(dayRepo, &fakeSessionRepo{}, &fakeOrderRepo{}, testRegisterConfig())

	actor := uuid.New()
	state, err := svc.OpenDay(context.Background(), "Matin", &actor)
	require.NoError(t, err)
	assert.Equal(t, enum.RegisterShiftOpen, state.State)

	require.NotNil(t, createdDay)
	require.NotNil(t, createdSession)
	assert.Equal(t, createdDay.ID, createdSession.OperationalDayID)
	assert.Equal(t, "Matin", createdSession.CashierName)
	assert.Equal(t, enum.DayStatusOpen, createdDay.Status)
	assert.Equal(t, enum.SessionStatusOpen, createdSession.Status)
	assert.Regexp(t, `^JMM-\d{6}-\d{4}$`, createdDay.DayCode)
	assert.Regexp(t, `^MM-\d{6}-\d{4}$`, createdSession.SessionCode)
	assert.Equal(t, createdDay.OpenedAt, createdSession.OpenedAt)
}

func TestOpenDayRefusedWhenDayAlreadyOpen(t *testing.T) {
	day := openDayRow()
	dayRepo := &fakeDayRepo{getOpenFn: func(ctx context.Context) (*entity.OperationalDay, error) {
		return day, nil
	}}
	svc := newReconciliation(dayRepo, &fakeSessionRepo{}, &fakeOrderRepo{}, testRegisterConfig())

	_, err := svc.OpenDay(context.Background(), "Matin", nil)
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.Code)
	assert.Equal(t, enum.RegisterDayOpenNoShift.String(), appErr.State)
}

func TestOpenDayRequiresCashierName(t *testing.T) {
	svc := newReconciliation(&fakeDayRepo{}, &fakeSessionRepo{}, &fakeOrderRepo{}, testRegisterConfig())

	_, err := svc.OpenDay(context.Background(), "", nil)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
}

func TestStartShiftRefusedWhileShiftOpen(t *testing.T) {
	day := openDayRow()
	session := openSessionRow(day.ID)
	dayRepo := &fakeDayRepo{getOpenFn: func(ctx context.Context) (*entity.OperationalDay, error) {
		return day, nil
	}}
	sessionRepo := &fakeSessionRepo{getOpenFn: func(ctx context.Context) (*entity.CashSession, error) {
		return session, nil
	}}
	svc := newReconciliation(dayRepo, sessionRepo, &fakeOrderRepo{}, testRegisterConfig())

	_, err := svc.StartShift(context.Background(), "Soir", nil)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, enum.RegisterShiftOpen.String(), appErr.State)
	assert.Contains(t, appErr.Message, session.SessionCode)
}

func TestStartShiftRefusedWhenDayClosed(t *testing.T) {
	svc := newReconciliation(&fakeDayRepo{}, &fakeSessionRepo{}, &fakeOrderRepo{}, testRegisterConfig())

	_, err := svc.StartShift(context.Background(), "Soir", nil)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, enum.RegisterDayClosed.String(), appErr.State)
}

func TestStartShiftOpensSessionInOpenDay(t *testing.T) {
	day := openDayRow()
	var created *entity.CashSession
	dayRepo := &fakeDayRepo{getOpenFn: func(ctx context.Context) (*entity.OperationalDay, error) {
		return day, nil
	}}
	sessionRepo := &fakeSessionRepo{createFn: func(ctx context.Context, session *entity.CashSession) error {
		created = session
		return nil
	}}
	svc := newReconciliation(dayRepo, sessionRepo, &fakeOrderRepo{}, testRegisterConfig())

	state, err := svc.StartShift(context.Background(), "Soir", nil)
	require.NoError(t, err)
	assert.Equal(t, enum.RegisterShiftOpen, state.State)
	require.NotNil(t, created)
	assert.Equal(t, day.ID, created.OperationalDayID)
	assert.Equal(t, "Soir", created.CashierName)
}

func TestEndShiftFreezesTotalsFromLedger(t *testing.T) {
	day := openDayRow()
	session := openSessionRow(day.ID)
	orders := []entity.Order{
		ledgerOrder(5000, entity.OrderItem{Name: "Tacos Poulet", Quantity: 2, UnitPrice: 2500}),
		ledgerOrder(7500, entity.OrderItem{Name: "Tacos Viande", Quantity: 3, UnitPrice: 2500}),
	}

	var closedSales int64
	var closedOrders int
	dayRepo := &fakeDayRepo{getOpenFn: func(ctx context.Context) (*entity.OperationalDay, error) {
		return day, nil
	}}
	sessionRepo := &fakeSessionRepo{
		getOpenFn: func(ctx context.Context) (*entity.CashSession, error) { return session, nil },
		closeFn: func(ctx context.Context, id uuid.UUID, closedAt time.Time, totalSales int64, totalOrders int) error {
			assert.Equal(t, session.ID, id)
			closedSales, closedOrders = totalSales, totalOrders
			return nil
		},
	}
	orderRepo := &fakeOrderRepo{listInRangeFn: func(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
		assert.Equal(t, session.OpenedAt, from)
		return orders, nil
	}}
	svc := newReconciliation(dayRepo, sessionRepo, orderRepo, testRegisterConfig())

	state, report, err := svc.EndShift(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, enum.RegisterDayOpenNoShift, state.State)
	assert.Nil(t, state.Session)

	assert.Equal(t, int64(12500), closedSales)
	assert.Equal(t, 2, closedOrders)

	require.NotNil(t, report)
	assert.Equal(t, int64(12500), report.TotalSales)
	assert.Equal(t, 2, report.TotalOrders)
	assert.Equal(t, 5, report.TotalItems)
	assert.Equal(t, session.SessionCode, report.SessionCode)
}

func TestEndShiftAutoAdvanceTogglesCashierLabel(t *testing.T) {
	day := openDayRow()
	session := openSessionRow(day.ID) // CashierName "Matin"
	var next *entity.CashSession
	dayRepo := &fakeDayRepo{getOpenFn: func(ctx context.Context) (*entity.OperationalDay, error) {
		return day, nil
	}}
	sessionRepo := &fakeSessionRepo{
		getOpenFn: func(ctx context.Context) (*entity.CashSession, error) { return session, nil },
		closeFn: func(ctx context.Context, id uuid.UUID, closedAt time.Time, totalSales int64, totalOrders int) error {
			return nil
		},
		createFn: func(ctx context.Context, s *entity.CashSession) error {
			next = s
			return nil
		},
	}
	cfg := testRegisterConfig()
	cfg.AutoAdvanceShift = true
	svc := newReconciliation(dayRepo, sessionRepo, &fakeOrderRepo{}, cfg)

	state, report, err := svc.EndShift(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, enum.RegisterShiftOpen, state.State)
	require.NotNil(t, next)
	assert.Equal(t, "Soir", next.CashierName)
	assert.Equal(t, day.ID, next.OperationalDayID)
}

func TestEndShiftAutoAdvanceFailureKeepsClose(t *testing.T) {
	day := openDayRow()
	session := openSessionRow(day.ID)

	sessionClosed := false
	dayRepo := &fakeDayRepo{getOpenFn: func(ctx context.Context) (*entity.OperationalDay, error) { return day, nil }}
	sessionRepo := &fakeSessionRepo{
		getOpenFn: func(ctx context.Context) (*entity.CashSession, error) { return session, nil },
		closeFn: func(ctx context.Context, id uuid.UUID, closedAt time.Time, totalSales int64, totalOrders int) error {
			sessionClosed = true
			return nil
		},
		createFn: func(ctx context.Context, next *entity.CashSession) error {
			return assert.AnError
		},
	}
	cfg := testRegisterConfig()
	cfg.AutoAdvanceShift = true
	svc := newReconciliation(dayRepo, sessionRepo, &fakeOrderRepo{}, cfg)

	state, report, err := svc.EndShift(context.Background(), nil)

	// the close itself is committed, only the handoff failed
	require.Error(t, err)
	assert.True(t, sessionClosed)
	require.NotNil(t, report)
	assert.Equal(t, session.SessionCode, report.SessionCode)
	require.NotNil(t, state)
	assert.Equal(t, enum.RegisterDayOpenNoShift, state.State)
}

func TestEndShiftRefusedWithoutOpenShift(t *testing.T) {
	day := openDayRow()
	dayRepo := &fakeDayRepo{getOpenFn: func(ctx context.Context) (*entity.OperationalDay, error) {
		return day, nil
	}}
	svc := newReconciliation(dayRepo, &fakeSessionRepo{}, &fakeOrderRepo{}, testRegisterConfig())

	_, _, err := svc.EndShift(context.Background(), nil)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, enum.RegisterDayOpenNoShift.String(), appErr.State)
}

func TestCloseDayRecomputesTotalsOverFullRange(t *testing.T) {
	day := openDayRow()
	session := openSessionRow(day.ID)
	orders := []entity.Order{
		ledgerOrder(3000, entity.OrderItem{Name: "Tacos Poulet", Quantity: 1, UnitPrice: 3000}),
		ledgerOrder(4000, entity.OrderItem{Name: "Boisson", Quantity: 2, UnitPrice: 2000}),
		ledgerOrder(2500, entity.OrderItem{Name: "Tacos Poulet", Quantity: 1, UnitPrice: 2500}),
	}

	var daySales int64
	var dayOrders int
	dayRepo := &fakeDayRepo{
		getOpenFn: func(ctx context.Context) (*entity.OperationalDay, error) { return day, nil },
		closeFn: func(ctx context.Context, id uuid.UUID, closedAt time.Time, totalSales int64, totalOrders int, closedBy *uuid.UUID) error {
			daySales, dayOrders = totalSales, totalOrders
			return nil
		},
	}
	sessionRepo := &fakeSessionRepo{
		getOpenFn: func(ctx context.Context) (*entity.CashSession, error) { return session, nil },
		closeFn: func(ctx context.Context, id uuid.UUID, closedAt time.Time, totalSales int64, totalOrders int) error {
			return nil
		},
		listByDayFn: func(ctx context.Context, dayID uuid.UUID) ([]entity.CashSession, error) {
			closed := *session
			return []entity.CashSession{closed}, nil
		},
	}
	orderRepo := &fakeOrderRepo{listInRangeFn: func(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
		if from.Equal(day.OpenedAt) {
			return orders, nil
		}
		// session range query during the forced close
		return orders[:2], nil
	}}
	svc := newReconciliation(dayRepo, sessionRepo, orderRepo, testRegisterConfig())

	closedDay, report, err := svc.CloseDay(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, int64(9500), daySales)
	assert.Equal(t, 3, dayOrders)
	assert.Equal(t, enum.DayStatusClosed, closedDay.Status)
	require.NotNil(t, closedDay.ClosedAt)

	require.NotNil(t, report)
	assert.Equal(t, int64(9500), report.TotalSales)
	assert.Equal(t, 3, report.TotalOrders)
	assert.Len(t, report.Sessions, 1)
	// aggregated breakdown merges the two Tacos Poulet lines
	require.Len(t, report.Items, 2)
	assert.Equal(t, "Boisson", report.Items[0].Name)
	assert.Equal(t, "Tacos Poulet", report.Items[1].Name)
	assert.Equal(t, 2, report.Items[1].Quantity)
	assert.Equal(t, int64(5500), report.Items[1].Revenue)
}

func TestCloseDayAfterHandoffClosesNoSession(t *testing.T) {
	day := openDayRow()
	handedOver := *openSessionRow(day.ID)
	closedAt := handedOver.OpenedAt.Add(4 * time.Hour)
	handedOver.ClosedAt = &closedAt
	handedOver.Status = enum.SessionStatusClosed
	handedOver.TotalSales = 7000
	handedOver.TotalOrders = 2

	var daySales int64
	var dayOrders int
	dayRepo := &fakeDayRepo{
		getOpenFn: func(ctx context.Context) (*entity.OperationalDay, error) { return day, nil },
		closeFn: func(ctx context.Context, id uuid.UUID, closedAt time.Time, totalSales int64, totalOrders int, closedBy *uuid.UUID) error {
			daySales, dayOrders = totalSales, totalOrders
			return nil
		},
	}
	sessionClosed := false
	sessionRepo := &fakeSessionRepo{
		closeFn: func(ctx context.Context, id uuid.UUID, closedAt time.Time, totalSales int64, totalOrders int) error {
			sessionClosed = true
			return nil
		},
		listByDayFn: func(ctx context.Context, dayID uuid.UUID) ([]entity.CashSession, error) {
			return []entity.CashSession{handedOver}, nil
		},
	}
	orders := []entity.Order{
		ledgerOrder(3000, entity.OrderItem{Name: "Tacos Poulet", Quantity: 1, UnitPrice: 3000}),
		ledgerOrder(4000, entity.OrderItem{Name: "Boisson", Quantity: 2, UnitPrice: 2000}),
	}
	orderRepo := &fakeOrderRepo{listInRangeFn: func(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
		return orders, nil
	}}
	svc := newReconciliation(dayRepo, sessionRepo, orderRepo, testRegisterConfig())

	closedDay, report, err := svc.CloseDay(context.Background(), nil)
	require.NoError(t, err)

	// the shift was already handed over, there is nothing left to close
	assert.False(t, sessionClosed)
	assert.Equal(t, int64(7000), daySales)
	assert.Equal(t, 2, dayOrders)
	assert.Equal(t, enum.DayStatusClosed, closedDay.Status)
	require.NotNil(t, report)
	assert.Len(t, report.Sessions, 1)
	assert.Equal(t, int64(7000), report.Sessions[0].TotalSales)
}

func TestCloseDayWithZeroOrders(t *testing.T) {
	day := openDayRow()
	session := openSessionRow(day.ID)

	var daySales int64 = -1
	dayOrders := -1
	dayRepo := &fakeDayRepo{
		getOpenFn: func(ctx context.Context) (*entity.OperationalDay, error) { return day, nil },
		closeFn: func(ctx context.Context, id uuid.UUID, closedAt time.Time, totalSales int64, totalOrders int, closedBy *uuid.UUID) error {
			daySales, dayOrders = totalSales, totalOrders
			return nil
		},
	}
	sessionRepo := &fakeSessionRepo{
		getOpenFn: func(ctx context.Context) (*entity.CashSession, error) { return session, nil },
		closeFn: func(ctx context.Context, id uuid.UUID, closedAt time.Time, totalSales int64, totalOrders int) error {
			return nil
		},
		listByDayFn: func(ctx context.Context, dayID uuid.UUID) ([]entity.CashSession, error) {
			closed := *session
			return []entity.CashSession{closed}, nil
		},
	}
	svc := newReconciliation(dayRepo, sessionRepo, &fakeOrderRepo{}, testRegisterConfig())

	closedDay, report, err := svc.CloseDay(context.Background(), nil)
	require.NoError(t, err)

	assert.Zero(t, daySales)
	assert.Zero(t, dayOrders)
	assert.Equal(t, enum.DayStatusClosed, closedDay.Status)

	// the ledger total and the session rows agree at zero
	require.NotNil(t, report)
	assert.Zero(t, report.TotalSales)
	assert.Zero(t, report.TotalOrders)
	assert.Empty(t, report.Items)
	assert.Empty(t, report.Invoices)
	var sessionSum int64
	for _, row := range report.Sessions {
		sessionSum += row.TotalSales
	}
	assert.Equal(t, report.TotalSales, sessionSum)
}

func TestCloseDayRefusedWhenNoDayOpen(t *testing.T) {
	svc := newReconciliation(&fakeDayRepo{}, &fakeSessionRepo{}, &fakeOrderRepo{}, testRegisterConfig())

	_, _, err := svc.CloseDay(context.Background(), nil)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, enum.RegisterDayClosed.String(), appErr.State)
}

func TestSessionReportRefusedWhileSessionOpen(t *testing.T) {
	session := openSessionRow(uuid.New())
	sessionRepo := &fakeSessionRepo{getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.CashSession, error) {
		return session, nil
	}}
	svc := newReconciliation(&fakeDayRepo{}, sessionRepo, &fakeOrderRepo{}, testRegisterConfig())

	_, err := svc.SessionReport(context.Background(), session.ID)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
}

func TestSessionReportUsesFrozenRange(t *testing.T) {
	session := openSessionRow(uuid.New())
	closedAt := session.OpenedAt.Add(6 * time.Hour)
	session.ClosedAt = &closedAt
	session.Status = enum.SessionStatusClosed

	var gotFrom, gotTo time.Time
	sessionRepo := &fakeSessionRepo{getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.CashSession, error) {
		return session, nil
	}}
	orderRepo := &fakeOrderRepo{listInRangeFn: func(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
		gotFrom, gotTo = from, to
		return nil, nil
	}}
	svc := newReconciliation(&fakeDayRepo{}, sessionRepo, orderRepo, testRegisterConfig())

	report, err := svc.SessionReport(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.OpenedAt, gotFrom)
	assert.Equal(t, closedAt, gotTo)

	// zero orders is a valid report
	assert.Zero(t, report.TotalSales)
	assert.Zero(t, report.TotalOrders)
	assert.Empty(t, report.Items)
}

func TestDayReportNotFound(t *testing.T) {
	dayRepo := &fakeDayRepo{getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.OperationalDay, error) {
		return nil, nil
	}}
	svc := newReconciliation(dayRepo, &fakeSessionRepo{}, &fakeOrderRepo{}, testRegisterConfig())

	_, err := svc.DayReport(context.Background(), uuid.New())
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestNextCashierLabelFallsBackToMorning(t *testing.T) {
	svc := newReconciliation(&fakeDayRepo{}, &fakeSessionRepo{}, &fakeOrderRepo{}, testRegisterConfig())

	assert.Equal(t, "Soir", svc.nextCashierLabel("Matin"))
	assert.Equal(t, "Matin", svc.nextCashierLabel("Soir"))
	assert.Equal(t, "Matin", svc.nextCashierLabel("Awa"))
}
