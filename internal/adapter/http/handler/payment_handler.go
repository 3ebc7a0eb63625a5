package handler

import (
	"errors"
	"io"

	"cybersource-gateway/internal/adapter/http/dto"
	"cybersource-gateway/internal/core/domain"
	"cybersource-gateway/internal/core/ports"
	"cybersource-gateway/pkg/apperror"
	"cybersource-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles payment lifecycle endpoints.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// CaptureContext handles POST /api/v1/payments/capture-context.
func (h *PaymentHandler) CaptureContext(c *gin.Context) {
	var req dto.CaptureContextRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	cc, err := h.paymentSvc.IssueCaptureContext(c.Request.Context(), req.StoreID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CaptureContextResponse{
		JWT:                    cc.SignedToken,
		KeyID:                  cc.KeyID,
		ClientLibrary:          cc.ClientLibraryURL,
		ClientLibraryIntegrity: cc.ClientLibraryIntegrityHash,
	})
}

// Authorize handles POST /api/v1/payments/:id/authorize.
func (h *PaymentHandler) Authorize(c *gin.Context) {
	paymentID, ok := paymentIDParam(c)
	if !ok {
		return
	}

	var req dto.AuthorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	outcome, err := h.paymentSvc.Authorize(c.Request.Context(), paymentID, req.Token)
	respondOutcome(c, outcome, err)
}

// Capture handles POST /api/v1/payments/:id/capture.
func (h *PaymentHandler) Capture(c *gin.Context) {
	paymentID, ok := paymentIDParam(c)
	if !ok {
		return
	}

	var req dto.CaptureRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	outcome, err := h.paymentSvc.Capture(c.Request.Context(), ports.CaptureRequest{
		PaymentID: paymentID,
		Amount:    req.Amount,
		IsFinal:   req.IsFinal,
		Notes:     req.Notes,
	})
	respondOutcome(c, outcome, err)
}

// Refund handles POST /api/v1/payments/:id/refund.
func (h *PaymentHandler) Refund(c *gin.Context) {
	paymentID, ok := paymentIDParam(c)
	if !ok {
		return
	}

	var req dto.RefundRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	outcome, err := h.paymentSvc.Refund(c.Request.Context(), paymentID, req.Amount)
	respondOutcome(c, outcome, err)
}

// Void handles POST /api/v1/payments/:id/void.
func (h *PaymentHandler) Void(c *gin.Context) {
	paymentID, ok := paymentIDParam(c)
	if !ok {
		return
	}

	outcome, err := h.paymentSvc.Void(c.Request.Context(), paymentID)
	respondOutcome(c, outcome, err)
}

// RefreshStatus handles POST /api/v1/payments/:id/refresh-status.
func (h *PaymentHandler) RefreshStatus(c *gin.Context) {
	paymentID, ok := paymentIDParam(c)
	if !ok {
		return
	}

	var req dto.RefreshStatusRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	outcome, err := h.paymentSvc.RefreshStatus(c.Request.Context(), paymentID, req.OuterID)
	respondOutcome(c, outcome, err)
}

// Transaction handles GET /api/v1/payments/transactions/:id.
func (h *PaymentHandler) Transaction(c *gin.Context) {
	var req dto.TransactionLookupRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, apperror.Validation("invalid transaction id"))
		return
	}

	result, err := h.paymentSvc.LookupTransaction(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransactionResponse{
		ID:                    result.ID,
		TransactionID:         result.TransactionID,
		Status:                string(result.Status),
		RawStatus:             result.RawStatus,
		ProcessorResponseCode: result.ProcessorResponseCode,
		ErrorReason:           result.ErrorReason,
		ErrorMessage:          result.ErrorMessage,
		Raw:                   result.Raw,
	})
}

func paymentIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid payment id"))
		return uuid.Nil, false
	}
	return id, true
}

// bindOptionalJSON binds the body when one is present. An empty body leaves req untouched.
func bindOptionalJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	return true
}

func respondOutcome(c *gin.Context, outcome *domain.LifecycleOutcome, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toOutcomeResponse(outcome))
}

// toOutcomeResponse converts domain.LifecycleOutcome to DTO.
func toOutcomeResponse(o *domain.LifecycleOutcome) dto.OutcomeResponse {
	return dto.OutcomeResponse{
		Status:       string(o.NewStatus),
		IsSuccess:    o.IsSuccess,
		Outcome:      string(o.Kind),
		OuterID:      o.OuterID,
		ErrorMessage: o.ErrorMessage,
	}
}
