package handler

import (
	"net/http"
	"time"

	"workacare/internal/model"
	"workacare/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	responses *service.ResponseService
}

func NewReportHandler(responses *service.ResponseService) *ReportHandler {
	return &ReportHandler{responses: responses}
}

// POST /api/reports
func (h *ReportHandler) Generate(c *gin.Context) {
	rows, ok := h.generate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /api/reports/export
func (h *ReportHandler) Export(c *gin.Context) {
	rows, ok := h.generate(c)
	if !ok {
		return
	}
	writeCSV(c, service.ExportFilename("relatorio", time.Now()), service.ExportReportCSV(rows))
}

func (h *ReportHandler) generate(c *gin.Context) ([]model.ReportRow, bool) {
	var req model.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return nil, false
	}
	rs := h.responses.GetAll(c.Request.Context(), ownerFilter(c))
	rows, err := service.GenerateReport(rs, req, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return rows, true
}
