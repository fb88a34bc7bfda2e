package handler

import (
	"net/http"
	"time"

	"workacare/internal/catalog"
	"workacare/internal/logger"
	"workacare/internal/model"
	"workacare/internal/service"

	"github.com/gin-gonic/gin"
)

type ResponseHandler struct {
	svc *service.ResponseService
}

func NewResponseHandler(svc *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{svc: svc}
}

// GET /api/surveys
func (h *ResponseHandler) Surveys(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Surveys())
}

// GET /api/surveys/completed
func (h *ResponseHandler) Completed(c *gin.Context) {
	ids, err := h.svc.CompletedSurveys(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, ids)
}

// POST /api/responses
func (h *ResponseHandler) Save(c *gin.Context) {
	var req struct {
		SurveyID    string            `json:"survey_id" binding:"required"`
		Participant model.Participant `json:"participant"`
		Answers     model.AnswerMap   `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if catalog.SurveyByID(req.SurveyID) == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown survey"})
		return
	}

	userID := c.GetString("user_id")

	// operators answer each questionnaire once, supervisors may resubmit
	// while testing their instruments
	if c.GetString("user_role") == "operator" {
		done, err := h.svc.CompletedSurveys(c.Request.Context(), userID)
		if err == nil {
			for _, id := range done {
				if id == req.SurveyID {
					c.JSON(http.StatusBadRequest, gin.H{"error": "survey already answered"})
					return
				}
			}
		}
	}

	resp, err := h.svc.Save(c.Request.Context(), req.SurveyID, req.Participant, req.Answers, userID)
	if err != nil {
		logger.Error("response.save failed", "survey", req.SurveyID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /api/responses
func (h *ResponseHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.GetAll(c.Request.Context(), ownerFilter(c)))
}

// DELETE /api/responses/:id
func (h *ResponseHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/responses/export
func (h *ResponseHandler) Export(c *gin.Context) {
	rs := h.svc.GetAll(c.Request.Context(), ownerFilter(c))
	writeCSV(c, service.ExportFilename("respostas", time.Now()), service.ExportResponsesCSV(rs))
}

// GET /api/responses/:id/export
func (h *ResponseHandler) ExportOne(c *gin.Context) {
	id := c.Param("id")
	for _, r := range h.svc.GetAll(c.Request.Context(), ownerFilter(c)) {
		if r.ID == id {
			writeCSV(c, service.ExportFilename("resposta", time.Now()), service.ExportResponseSheet(r))
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "response not found"})
}

// ownerFilter scopes reads to the caller for operators. Supervisors see the
// whole dataset.
func ownerFilter(c *gin.Context) string {
	if c.GetString("user_role") == "supervisor" {
		return ""
	}
	return c.GetString("user_id")
}

func writeCSV(c *gin.Context, filename, body string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}
