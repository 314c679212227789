package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/invoiceflow/backend/internal/apperrors"
	"github.com/invoiceflow/backend/internal/core/domain"
	portssvc "github.com/invoiceflow/backend/internal/core/ports/services"
	"github.com/invoiceflow/backend/internal/dto"
	"github.com/invoiceflow/backend/internal/middleware"
)

// quoteHandler handles HTTP requests related to quotes.
type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

func newQuoteHandler(qs portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{quoteService: qs}
}

// registerQuoteRoutes registers routes related to quotes.
func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := newQuoteHandler(quoteService)

	quotes := rg.Group("/quotes")
	{
		quotes.POST("", h.createQuote)
		quotes.GET("", h.listQuotes)
		quotes.GET("/:id", h.getQuote)
		quotes.PUT("/:id/status", h.updateQuoteStatus)
		quotes.POST("/:id/convert", h.convertQuote)
	}
}

// createQuote godoc
// @Summary Create a new quote
// @Description Creates a quote with its line items. Totals are computed server-side and the quote number is assigned from the user's sequence.
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body dto.CreateQuoteRequest true "Quote details"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes [post]
func (h *quoteHandler) createQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	quote, items, err := h.quoteService.CreateQuote(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create quote", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create quote"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToQuoteResponse(quote, items))
}

// listQuotes godoc
// @Summary List quotes
// @Description Lists the logged-in user's quotes without line items, newest first.
// @Tags quotes
// @Produce json
// @Success 200 {array} dto.QuoteResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes [get]
func (h *quoteHandler) listQuotes(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	quotes, err := h.quoteService.ListQuotes(c.Request.Context(), userID)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list quotes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list quotes"})
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteListResponse(quotes))
}

// getQuote godoc
// @Summary Get a quote by ID
// @Description Retrieves one quote with its line items.
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes/{id} [get]
func (h *quoteHandler) getQuote(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	quote, items, err := h.quoteService.GetQuoteByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Quote not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to get quote", slog.String("error", err.Error()), slog.String("quote_id", c.Param("id")))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve quote"})
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote, items))
}

// updateQuoteStatus godoc
// @Summary Update quote status
// @Description Moves a quote to a new lifecycle state.
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param status body dto.UpdateQuoteStatusRequest true "New status"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes/{id}/status [put]
func (h *quoteHandler) updateQuoteStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	quote, err := h.quoteService.UpdateQuoteStatus(c.Request.Context(), c.Param("id"), userID, domain.QuoteStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Quote not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update quote status", slog.String("error", err.Error()), slog.String("quote_id", c.Param("id")))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update quote status"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote, nil))
}

// convertQuote godoc
// @Summary Convert a quote to an invoice
// @Description Creates a draft invoice from the quote, copying totals and items verbatim, and marks the quote Accepted. A quote can only be converted once.
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse "Quote already converted"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes/{id}/convert [post]
func (h *quoteHandler) convertQuote(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoice, items, err := h.quoteService.ConvertToInvoice(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Quote not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to convert quote", slog.String("error", err.Error()), slog.String("quote_id", c.Param("id")))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to convert quote"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice, items))
}
