package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/nomina-settlement/internal/http/middleware"
	"github.com/nurpe/nomina-settlement/internal/model"
	"github.com/nurpe/nomina-settlement/internal/service"
	"github.com/nurpe/nomina-settlement/internal/settlement"
)

type Handler struct {
	settlements *service.SettlementService
	log         zerolog.Logger
}

func NewHandler(settlements *service.SettlementService, log zerolog.Logger) *Handler {
	return &Handler{settlements: settlements, log: log}
}

func (h *Handler) Register(router *gin.Engine) {
	settlements := router.Group("/settlements")
	settlements.POST("/compute", h.compute)
	settlements.POST("/validate", h.validate)
	settlements.POST("/receipt", h.export(service.FormatText))
	settlements.POST("/export", h.export(service.FormatXLSX))
	settlements.POST("/export/pdf", h.export(service.FormatPDF))

	router.GET("/calendar/classify", h.classify)
}

type validationResponse struct {
	Valid  bool                    `json:"valid"`
	Errors []*settlement.FieldError `json:"errors"`
}

func (h *Handler) compute(c *gin.Context) {
	var req model.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.settlements.Compute(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, req, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) validate(c *gin.Context) {
	var req model.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	errs := h.settlements.Validate(req)
	resp := validationResponse{Valid: len(errs) == 0, Errors: errs}
	if resp.Errors == nil {
		resp.Errors = []*settlement.FieldError{}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) export(format service.Format) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		doc, err := h.settlements.Render(c.Request.Context(), req, format)
		if err != nil {
			h.handleError(c, req, err)
			return
		}

		if format != service.FormatText {
			c.Header("Content-Disposition", "attachment; filename=\""+doc.FileName+"\"")
		}
		c.Data(http.StatusOK, doc.ContentType, doc.Content)
	}
}

func (h *Handler) classify(c *gin.Context) {
	result, err := h.settlements.Classify(c.Query("date"))
	if err != nil {
		h.handleError(c, model.Request{}, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) handleError(c *gin.Context, req model.Request, err error) {
	var fieldErr *settlement.FieldError
	switch {
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  fieldErr.Message,
			"errors": h.settlements.Validate(req),
		})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Msg("settlement request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
