package domain

// OutcomeKind is the closed set of merchant-side classifications of a gateway result.
type OutcomeKind string

const (
	OutcomeApproved        OutcomeKind = "APPROVED"
	OutcomeDeclined        OutcomeKind = "DECLINED"
	OutcomeInvalid         OutcomeKind = "INVALID"
	OutcomePendingReview   OutcomeKind = "PENDING_REVIEW"
	OutcomeCaptureAccepted OutcomeKind = "CAPTURE_ACCEPTED"
	OutcomeRefundAccepted  OutcomeKind = "REFUND_ACCEPTED"
	OutcomeVoidAccepted    OutcomeKind = "VOID_ACCEPTED"
	OutcomeFailed          OutcomeKind = "FAILED"
)

// Buyer-facing message prefixes. Raw processor codes never follow them.
const (
	DeclinedMessagePrefix = "Your transaction was declined: "
	ReviewMessagePrefix   = "Your transaction was held for review: "
	ErrorMessagePrefix    = "There was an error processing your transaction: "

	GenericFailureMessage = "Payment processing failed"
)

// LifecycleOutcome is the classified result of a gateway operation.
type LifecycleOutcome struct {
	Kind                  OutcomeKind   `json:"outcome"`
	IsSuccess             bool          `json:"is_success"`
	NewStatus             PaymentStatus `json:"status,omitempty"`
	OuterID               string        `json:"outer_id,omitempty"`
	ErrorMessage          string        `json:"error_message,omitempty"`
	GatewayStatus         GatewayStatus `json:"gateway_status"`
	ProcessorResponseCode string        `json:"-"`
}

// IsPending reports a provisional success awaiting out-of-band resolution.
func (o LifecycleOutcome) IsPending() bool {
	return o.Kind == OutcomePendingReview
}
