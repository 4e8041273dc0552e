package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jamaney/mmtacos-api/internal/application/service"
	"github.com/jamaney/mmtacos-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer-related HTTP requests
type PrinterHandler struct {
	reportService *service.ReportService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(reportService *service.ReportService) *PrinterHandler {
	return &PrinterHandler{reportService: reportService}
}

// GetStatus returns the current printer connection status
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.reportService.PrinterStatus())
}

// TestPrint sends a sample ticket to the printer
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	receipt, err := h.reportService.TestPrint()
	if err != nil {
		// Return the receipt data anyway (useful when printer type is "none")
		response.OK(c, "Test print completed (printer may be disabled)", gin.H{
			"receipt": receipt,
			"warning": err.Error(),
		})
		return
	}

	response.OK(c, "Test ticket sent to printer", gin.H{
		"receipt": receipt,
	})
}
