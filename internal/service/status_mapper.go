package service

import (
	"fmt"
	"time"

	"cybersource-gateway/internal/core/domain"
	"cybersource-gateway/pkg/apperror"

	"github.com/shopspring/decimal"
)

// authorizeOutcomes classifies authorize and refresh results. Statuses missing
// from the table fall through to OutcomeFailed.
var authorizeOutcomes = map[domain.GatewayStatus]domain.OutcomeKind{
	domain.GatewayStatusAuthorized:              domain.OutcomeApproved,
	domain.GatewayStatusDeclined:                domain.OutcomeDeclined,
	domain.GatewayStatusAuthorizedRiskDeclined:  domain.OutcomeDeclined,
	domain.GatewayStatusInvalidRequest:          domain.OutcomeInvalid,
	domain.GatewayStatusPendingAuthentication:   domain.OutcomePendingReview,
	domain.GatewayStatusPartialAuthorized:       domain.OutcomePendingReview,
	domain.GatewayStatusAuthorizedPendingReview: domain.OutcomePendingReview,
	domain.GatewayStatusPendingReview:           domain.OutcomePendingReview,
	domain.GatewayStatusPending:                 domain.OutcomePendingReview,
	domain.GatewayStatusTransmitted:             domain.OutcomePendingReview,
}

// StatusMapper turns gateway results into lifecycle outcomes and applies their
// side effects to the payment record. It performs no I/O. Transactions it
// appends carry a zero ID; persistence assigns one.
type StatusMapper struct{}

// NewStatusMapper creates a new StatusMapper.
func NewStatusMapper() StatusMapper {
	return StatusMapper{}
}

// MapAuthorize classifies an authorize result.
func (m StatusMapper) MapAuthorize(
	result *domain.GatewayOperationResult,
	payment *domain.PaymentRecord,
	order *domain.Order,
	singleMessage bool,
	now time.Time,
) domain.LifecycleOutcome {
	out := domain.LifecycleOutcome{
		GatewayStatus:         result.Status,
		ProcessorResponseCode: result.ProcessorResponseCode,
	}

	kind, ok := authorizeOutcomes[result.Status]
	if !ok {
		out.Kind = domain.OutcomeFailed
		out.ErrorMessage = reasonOrGeneric(result)
		return out
	}
	out.Kind = kind

	switch kind {
	case domain.OutcomeApproved:
		status := domain.PaymentStatusAuthorized
		if singleMessage {
			status = domain.PaymentStatusPaid
		}
		t := now
		payment.Status = status
		payment.IsApproved = true
		payment.AuthorizedAt = &t
		payment.CapturedAt = &t
		payment.OuterTransactionID = result.OuterID()
		payment.AddComment(fmt.Sprintf("Paid successfully. Transaction info %s", result.TransactionID))
		payment.Transactions = append(payment.Transactions, newTransaction(
			domain.TransactionTypeAuthorize, result, payment.Amount, payment.Currency, now,
			fmt.Sprintf("Transaction ID: %s", result.TransactionID),
		))
		if order != nil {
			order.Status = domain.OrderStatusProcessing
		}
		out.IsSuccess = true
		out.NewStatus = status
		out.OuterID = payment.OuterTransactionID

	case domain.OutcomeDeclined:
		payment.Status = domain.PaymentStatusDeclined
		out.ErrorMessage = domain.DeclinedMessagePrefix + reasonOrGeneric(result)
		payment.AddComment(out.ErrorMessage)
		out.NewStatus = payment.Status

	case domain.OutcomeInvalid:
		payment.Status = domain.PaymentStatusError
		out.ErrorMessage = domain.ErrorMessagePrefix + reasonOrGeneric(result)
		payment.AddComment(out.ErrorMessage)
		out.NewStatus = payment.Status

	case domain.OutcomePendingReview:
		payment.Status = domain.PaymentStatusPending
		if id := result.OuterID(); id != "" {
			payment.OuterTransactionID = id
		}
		out.ErrorMessage = domain.ReviewMessagePrefix + reasonOrGeneric(result)
		payment.AddComment(out.ErrorMessage)
		out.IsSuccess = true
		out.NewStatus = payment.Status
		out.OuterID = payment.OuterTransactionID
	}
	return out
}

// MapCapture classifies a capture result. A capture the gateway did not accept
// is returned as an error carrying the processor's raw response, and the
// payment is left untouched.
func (m StatusMapper) MapCapture(
	result *domain.GatewayOperationResult,
	payment *domain.PaymentRecord,
	isFinal bool,
	amount decimal.Decimal,
	now time.Time,
) (domain.LifecycleOutcome, error) {
	switch result.Status {
	case domain.GatewayStatusPending, domain.GatewayStatusTransmitted:
	default:
		return domain.LifecycleOutcome{}, apperror.ErrCaptureRejected(rawResponseText(result))
	}

	status := domain.PaymentStatusAuthorized
	if isFinal {
		status = domain.PaymentStatusPaid
	}
	t := now
	payment.Status = status
	payment.CapturedAt = &t
	payment.Transactions = append(payment.Transactions, newTransaction(
		domain.TransactionTypeCapture, result, amount, payment.Currency, now,
		fmt.Sprintf("Capture ID: %s", result.OuterID()),
	))

	return domain.LifecycleOutcome{
		Kind:                  domain.OutcomeCaptureAccepted,
		IsSuccess:             true,
		NewStatus:             status,
		OuterID:               result.OuterID(),
		GatewayStatus:         result.Status,
		ProcessorResponseCode: result.ProcessorResponseCode,
	}, nil
}

// MapRefund classifies a refund result.
func (m StatusMapper) MapRefund(
	result *domain.GatewayOperationResult,
	payment *domain.PaymentRecord,
	amount decimal.Decimal,
	now time.Time,
) domain.LifecycleOutcome {
	out := domain.LifecycleOutcome{
		GatewayStatus:         result.Status,
		ProcessorResponseCode: result.ProcessorResponseCode,
	}
	if result.Status != domain.GatewayStatusPending {
		out.Kind = domain.OutcomeFailed
		out.ErrorMessage = reasonOrGeneric(result)
		return out
	}

	t := now
	payment.Status = domain.PaymentStatusRefunded
	payment.RefundedAt = &t
	payment.Transactions = append(payment.Transactions, newTransaction(
		domain.TransactionTypeRefund, result, amount, payment.Currency, now,
		fmt.Sprintf("Refund ID: %s", result.OuterID()),
	))

	out.Kind = domain.OutcomeRefundAccepted
	out.IsSuccess = true
	out.NewStatus = payment.Status
	out.OuterID = result.OuterID()
	return out
}

// MapVoid classifies a void result. Anything but VOIDED or CANCELLED leaves the payment unchanged.
func (m StatusMapper) MapVoid(result *domain.GatewayOperationResult, payment *domain.PaymentRecord, now time.Time) domain.LifecycleOutcome {
	out := domain.LifecycleOutcome{
		GatewayStatus:         result.Status,
		ProcessorResponseCode: result.ProcessorResponseCode,
	}
	switch result.Status {
	case domain.GatewayStatusVoided, domain.GatewayStatusCancelled:
	default:
		out.Kind = domain.OutcomeFailed
		out.ErrorMessage = reasonOrGeneric(result)
		return out
	}

	voided := now
	cancelled := now
	payment.Status = domain.PaymentStatusVoided
	payment.IsCancelled = true
	payment.VoidedAt = &voided
	payment.CancelledAt = &cancelled

	out.Kind = domain.OutcomeVoidAccepted
	out.IsSuccess = true
	out.NewStatus = payment.Status
	out.OuterID = result.OuterID()
	return out
}

// MapRefresh re-classifies a payment from a transaction lookup using the
// authorize table. An approved payment reported AUTHORIZED again is not re-applied.
func (m StatusMapper) MapRefresh(
	result *domain.GatewayOperationResult,
	payment *domain.PaymentRecord,
	order *domain.Order,
	singleMessage bool,
	now time.Time,
) domain.LifecycleOutcome {
	if payment.IsApproved && result.Status == domain.GatewayStatusAuthorized {
		return domain.LifecycleOutcome{
			Kind:                  domain.OutcomeApproved,
			IsSuccess:             true,
			NewStatus:             payment.Status,
			OuterID:               payment.OuterTransactionID,
			GatewayStatus:         result.Status,
			ProcessorResponseCode: result.ProcessorResponseCode,
		}
	}
	return m.MapAuthorize(result, payment, order, singleMessage, now)
}

func newTransaction(
	typ domain.TransactionType,
	result *domain.GatewayOperationResult,
	amount decimal.Decimal,
	currency string,
	now time.Time,
	note string,
) domain.PaymentTransaction {
	outerID := result.TransactionID
	if outerID == "" {
		outerID = result.ID
	}
	return domain.PaymentTransaction{
		Type:          typ,
		OuterID:       outerID,
		Amount:        amount,
		Currency:      currency,
		GatewayStatus: result.Status,
		ResponseCode:  result.ProcessorResponseCode,
		Note:          note,
		ResponseData:  string(result.Raw),
		ProcessedAt:   now,
	}
}

func reasonOrGeneric(result *domain.GatewayOperationResult) string {
	if r := result.Reason(); r != "" {
		return r
	}
	return domain.GenericFailureMessage
}

// rawResponseText is what the processor said, verbatim when the body is available.
func rawResponseText(result *domain.GatewayOperationResult) string {
	if len(result.Raw) > 0 {
		return string(result.Raw)
	}
	if result.RawStatus != "" {
		return result.RawStatus
	}
	return reasonOrGeneric(result)
}
