package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"crediscope/internal/domain"
	"crediscope/internal/service"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ParseReportRequest is the request body for POST /api/v1/reports/parse.
type ParseReportRequest struct {
	Text   string `json:"text" binding:"required"`
	Method string `json:"method"`
}

// AnalyzeReportRequest is the request body for POST /api/v1/reports/analyze.
type AnalyzeReportRequest struct {
	Text   string `json:"text" binding:"required"`
	Method string `json:"method"`
	UserID string `json:"user_id"`
}

// StrategyRequest is the request body for POST /api/v1/strategies.
type StrategyRequest struct {
	Profile *domain.ParsedCreditReport `json:"profile" binding:"required"`
}

// ReportHandler handles credit-report processing endpoints.
type ReportHandler struct {
	svc service.AnalysisService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(svc service.AnalysisService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// ParseReport handles POST /api/v1/reports/parse
func (h *ReportHandler) ParseReport(c *gin.Context) {
	var req ParseReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "text is required")
		return
	}

	report := h.svc.ParseReport(c.Request.Context(), req.Text, req.Method)
	RespondOK(c, report)
}

// AnalyzeReport handles POST /api/v1/reports/analyze
func (h *ReportHandler) AnalyzeReport(c *gin.Context) {
	var req AnalyzeReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "text is required")
		return
	}

	result, err := h.svc.AnalyzeReport(c.Request.Context(), &service.AnalyzeInput{
		Text:   req.Text,
		Method: req.Method,
		UserID: req.UserID,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// GenerateStrategy handles POST /api/v1/strategies
func (h *ReportHandler) GenerateStrategy(c *gin.Context) {
	var req StrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "profile is required")
		return
	}

	strategy, err := h.svc.GenerateStrategy(c.Request.Context(), req.Profile)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, strategy)
}

// GetAnalysis handles GET /api/v1/analyses/:id
func (h *ReportHandler) GetAnalysis(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid analysis id")
		return
	}

	analysis, err := h.svc.GetAnalysis(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, analysis)
}

// ListAnalyses handles GET /api/v1/analyses
func (h *ReportHandler) ListAnalyses(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "user_id is required")
		return
	}
	offset, limit := pagination(c)

	analyses, total, err := h.svc.ListAnalyses(c.Request.Context(), userID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, analyses, PagMeta{Total: total, Offset: offset, Limit: limit})
}

func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return offset, limit
}
