package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamaney/mmtacos-api/internal/application/service"
	"github.com/jamaney/mmtacos-api/internal/config"
	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	"github.com/jamaney/mmtacos-api/internal/domain/enum"
	"github.com/jamaney/mmtacos-api/internal/domain/repository"
	"github.com/jamaney/mmtacos-api/pkg/pagination"
	"github.com/jamaney/mmtacos-api/pkg/printer"
)

type stubDayRepo struct {
	day *entity.OperationalDay
}

func (s *stubDayRepo) CreateWithSession(ctx context.Context, day *entity.OperationalDay, session *entity.CashSession) error {
	return nil
}
func (s *stubDayRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.OperationalDay, error) {
	return s.day, nil
}
func (s *stubDayRepo) GetOpen(ctx context.Context) (*entity.OperationalDay, error) {
	return s.day, nil
}
func (s *stubDayRepo) Close(ctx context.Context, id uuid.UUID, closedAt time.Time, totalSales int64, totalOrders int, closedBy *uuid.UUID) error {
	return nil
}
func (s *stubDayRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.OperationalDay, int64, error) {
	return nil, 0, nil
}

type stubSessionRepo struct {
	session   *entity.CashSession
	createErr error
}

func (s *stubSessionRepo) Create(ctx context.Context, session *entity.CashSession) error {
	return s.createErr
}
func (s *stubSessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.CashSession, error) {
	return s.session, nil
}
func (s *stubSessionRepo) GetOpen(ctx context.Context) (*entity.CashSession, error) {
	return s.session, nil
}
func (s *stubSessionRepo) Close(ctx context.Context, id uuid.UUID, closedAt time.Time, totalSales int64, totalOrders int) error {
	return nil
}
func (s *stubSessionRepo) ListByDay(ctx context.Context, dayID uuid.UUID) ([]entity.CashSession, error) {
	if s.session == nil {
		return nil, nil
	}
	return []entity.CashSession{*s.session}, nil
}

type stubOrderRepo struct{}

func (s *stubOrderRepo) Create(ctx context.Context, order *entity.Order) error { return nil }
func (s *stubOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return nil, nil
}
func (s *stubOrderRepo) GetByTicketCode(ctx context.Context, ticketCode string) (*entity.Order, error) {
	return nil, nil
}
func (s *stubOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return nil, 0, nil
}
func (s *stubOrderRepo) ListInRange(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
	return nil, nil
}
func (s *stubOrderRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Order, error) {
	return nil, nil
}

func registerTestRouter(sessionRepo *stubSessionRepo, autoAdvance bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	now := time.Now()
	day := &entity.OperationalDay{
		ID:       uuid.New(),
		DayCode:  "JMM-260314-1234",
		OpenedAt: now.Add(-6 * time.Hour),
		Status:   enum.DayStatusOpen,
	}
	if sessionRepo.session != nil {
		sessionRepo.session.OperationalDayID = day.ID
	}

	reports := service.NewReportService(printer.NewNullPrinter(), "none", config.StoreConfig{Name: "MM TACOS"})
	reconciliation := service.NewReconciliationService(
		&stubDayRepo{day: day},
		sessionRepo,
		&stubOrderRepo{},
		reports,
		config.RegisterConfig{
			AutoAdvanceShift: autoAdvance,
			MorningLabel:     "Matin",
			EveningLabel:     "Soir",
		},
	)

	router := gin.New()
	router.POST("/register/shifts/end", NewRegisterHandler(reconciliation).EndShift)
	return router
}

func openTestSession() *entity.CashSession {
	return &entity.CashSession{
		ID:          uuid.New(),
		SessionCode: "MM-260314-0001",
		CashierName: "Matin",
		OpenedAt:    time.Now().Add(-5 * time.Hour),
		Status:      enum.SessionStatusOpen,
	}
}

func TestEndShiftHandlerWarnsWhenHandoffFails(t *testing.T) {
	sessionRepo := &stubSessionRepo{
		session:   openTestSession(),
		createErr: errors.New("insert rejected"),
	}
	router := registerTestRouter(sessionRepo, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register/shifts/end", nil)
	router.ServeHTTP(w, req)

	// the close is committed so the response is still a success, but the
	// failed auto-advance must be visible to the terminal
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotNil(t, body.Data["report"])
	assert.Contains(t, body.Data["warning"], "start it manually")
}

func TestEndShiftHandlerNoWarningOnCleanClose(t *testing.T) {
	sessionRepo := &stubSessionRepo{session: openTestSession()}
	router := registerTestRouter(sessionRepo, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register/shifts/end", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotNil(t, body.Data["report"])
	_, hasWarning := body.Data["warning"]
	assert.False(t, hasWarning)
}
