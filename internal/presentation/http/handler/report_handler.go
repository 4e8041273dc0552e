package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jamaney/mmtacos-api/internal/application/service"
	"github.com/jamaney/mmtacos-api/internal/presentation/http/dto/response"
)

// ReportHandler handles reprint requests for session and day reports
type ReportHandler struct {
	reconciliation *service.ReconciliationService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reconciliation *service.ReconciliationService) *ReportHandler {
	return &ReportHandler{reconciliation: reconciliation}
}

// GetSessionReport rebuilds a closed session's handoff report
func (h *ReportHandler) GetSessionReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	report, err := h.reconciliation.SessionReport(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Session report retrieved successfully", report)
}

// GetDayReport rebuilds a closed day's end-of-day report
func (h *ReportHandler) GetDayReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid day ID")
		return
	}

	report, err := h.reconciliation.DayReport(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Day report retrieved successfully", report)
}
