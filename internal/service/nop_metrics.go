package service

import (
	"time"

	"cybersource-gateway/internal/core/domain"
)

// nopMetrics is used when no metrics sink is wired.
type nopMetrics struct{}

func (nopMetrics) ObserveOutcome(string, domain.OutcomeKind)       {}
func (nopMetrics) ObserveGatewayCall(string, time.Duration, error) {}
func (nopMetrics) ObserveVerificationAttempts(int, bool)           {}
func (nopMetrics) ObserveNotification(string, string)              {}
