package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"cybersource-gateway/internal/core/domain"
	"cybersource-gateway/internal/core/ports"
	"cybersource-gateway/pkg/apperror"

	"github.com/go-resty/resty/v2"
)

// paymentResponse covers the fields shared by payment, capture, refund, void
// and transaction-detail responses.
type paymentResponse struct {
	ID                   string `json:"id"`
	Status               string `json:"status"`
	Reason               string `json:"reason"`
	Message              string `json:"message"`
	ProcessorInformation struct {
		TransactionID string `json:"transactionId"`
		ResponseCode  string `json:"responseCode"`
	} `json:"processorInformation"`
	ErrorInformation struct {
		Reason  string `json:"reason"`
		Message string `json:"message"`
	} `json:"errorInformation"`
	ApplicationInformation struct {
		Status string `json:"status"`
	} `json:"applicationInformation"`
}

// GenerateCaptureContext requests a microform session and returns the signed token.
func (c *Client) GenerateCaptureContext(ctx context.Context, sandbox bool, req *ports.CaptureContextRequest) (string, error) {
	resp, err := c.do(ctx, "capture_context", sandbox, http.MethodPost, pathCaptureContext, req)
	if err != nil {
		return "", err
	}
	if !isSuccess(resp) {
		return "", apiError(resp)
	}

	token := strings.TrimSpace(string(resp.Body()))
	// Some environments wrap the token in a JSON string.
	if strings.HasPrefix(token, `"`) {
		var s string
		if err := json.Unmarshal([]byte(token), &s); err == nil {
			token = s
		}
	}
	return token, nil
}

// CreatePayment authorizes (and in single-message mode captures) a payment.
func (c *Client) CreatePayment(ctx context.Context, sandbox bool, req *ports.CreatePaymentRequest) (*domain.GatewayOperationResult, error) {
	resp, err := c.do(ctx, "authorize", sandbox, http.MethodPost, pathPayments, req)
	if err != nil {
		return nil, err
	}
	return parseOperationResult(resp)
}

// CapturePayment captures a prior authorization.
func (c *Client) CapturePayment(ctx context.Context, sandbox bool, paymentID string, req *ports.CapturePaymentRequest) (*domain.GatewayOperationResult, error) {
	resp, err := c.do(ctx, "capture", sandbox, http.MethodPost, pathPayments+"/"+url.PathEscape(paymentID)+"/captures", req)
	if err != nil {
		return nil, err
	}
	return parseOperationResult(resp)
}

// RefundPayment refunds a captured payment.
func (c *Client) RefundPayment(ctx context.Context, sandbox bool, paymentID string, req *ports.RefundPaymentRequest) (*domain.GatewayOperationResult, error) {
	resp, err := c.do(ctx, "refund", sandbox, http.MethodPost, pathPayments+"/"+url.PathEscape(paymentID)+"/refunds", req)
	if err != nil {
		return nil, err
	}
	return parseOperationResult(resp)
}

// VoidPayment cancels an unsettled authorization.
func (c *Client) VoidPayment(ctx context.Context, sandbox bool, paymentID string, req *ports.VoidPaymentRequest) (*domain.GatewayOperationResult, error) {
	resp, err := c.do(ctx, "void", sandbox, http.MethodPost, pathPayments+"/"+url.PathEscape(paymentID)+"/voids", req)
	if err != nil {
		return nil, err
	}
	return parseOperationResult(resp)
}

// GetTransaction fetches transaction details for status refresh.
func (c *Client) GetTransaction(ctx context.Context, sandbox bool, transactionID string) (*domain.GatewayOperationResult, error) {
	resp, err := c.do(ctx, "refresh", sandbox, http.MethodGet, pathTransactions+"/"+url.PathEscape(transactionID), nil)
	if err != nil {
		return nil, err
	}
	return parseOperationResult(resp)
}

// parseOperationResult turns a response into a result. 400 and 402 bodies that
// carry a status (INVALID_REQUEST, DECLINED) are results, not errors.
func parseOperationResult(resp *resty.Response) (*domain.GatewayOperationResult, error) {
	body := resp.Body()

	var parsed paymentResponse
	decodeErr := json.Unmarshal(body, &parsed)

	if !isSuccess(resp) {
		classifiable := resp.StatusCode() == http.StatusBadRequest || resp.StatusCode() == http.StatusPaymentRequired
		if !classifiable || decodeErr != nil || parsed.Status == "" {
			return nil, apiError(resp)
		}
	} else if decodeErr != nil {
		return nil, apperror.ErrGatewayAPI(resp.StatusCode(), fmt.Errorf("decode response: %w", decodeErr))
	}

	rawStatus := parsed.Status
	if rawStatus == "" {
		rawStatus = parsed.ApplicationInformation.Status
	}

	result := &domain.GatewayOperationResult{
		Status:                domain.ParseGatewayStatus(rawStatus),
		RawStatus:             rawStatus,
		ID:                    parsed.ID,
		TransactionID:         parsed.ProcessorInformation.TransactionID,
		ProcessorResponseCode: parsed.ProcessorInformation.ResponseCode,
		ErrorReason:           firstNonEmpty(parsed.ErrorInformation.Reason, parsed.Reason),
		ErrorMessage:          firstNonEmpty(parsed.ErrorInformation.Message, parsed.Message),
		Raw:                   json.RawMessage(append([]byte(nil), body...)),
	}
	return result, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
