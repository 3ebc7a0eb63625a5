package main

import (
	"cybersource-gateway/config"

	"github.com/rs/zerolog"
)

// warnInsecureConfig logs the security settings that were left empty.
func warnInsecureConfig(cfg *config.Config, log zerolog.Logger) {
	if !cfg.Webhook.VerifiesSignatures() {
		log.Warn().Msg("No webhook shared secret configured, notification signatures are NOT verified")
	}
	if cfg.Operator.KeyHash == "" {
		log.Warn().Msg("No operator key hash configured, capture, refund, void, refresh and webhook operator routes are disabled")
	}
}
