package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"cybersource-gateway/config"
	"cybersource-gateway/internal/core/domain"
	"cybersource-gateway/internal/core/ports"
	"cybersource-gateway/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

const (
	claimContext = "ctx"
	claimFlex    = "flx"
)

// CaptureContextService implements ports.CaptureContextIssuer.
type CaptureContextService struct {
	gateway  ports.GatewayClient
	verifier ports.SigningKeyVerifier
	cfg      config.GatewayConfig
	metrics  ports.Metrics
	log      zerolog.Logger
}

// NewCaptureContextService creates a new CaptureContextService. metrics may be nil.
func NewCaptureContextService(
	gateway ports.GatewayClient,
	verifier ports.SigningKeyVerifier,
	cfg config.GatewayConfig,
	metrics ports.Metrics,
	log zerolog.Logger,
) *CaptureContextService {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &CaptureContextService{
		gateway:  gateway,
		verifier: verifier,
		cfg:      cfg,
		metrics:  metrics,
		log:      log,
	}
}

// Issue generates a capture context for storeURL, verifying its signature when
// ValidateSignatureRetryCount > 0. Malformed or badly signed tokens are
// regenerated up to that bound; any other failure is returned at once.
func (s *CaptureContextService) Issue(ctx context.Context, storeURL string, cardTypes []string, sandbox bool) (*domain.CaptureContext, error) {
	if strings.TrimSpace(storeURL) == "" {
		return nil, apperror.Validation("store url is required")
	}
	if len(cardTypes) == 0 {
		return nil, apperror.Validation("at least one card type is required")
	}

	verify := s.cfg.ValidateSignatureRetryCount > 0
	req := &ports.CaptureContextRequest{
		ClientVersion:       s.cfg.ClientVersion,
		TargetOrigins:       []string{storeURL},
		AllowedCardNetworks: cardTypes,
	}

	policy := RetryPolicy{
		MaxAttempts: s.cfg.ValidateSignatureRetryCount,
		Backoff:     s.cfg.ValidateSignatureBackoff,
		Retryable: func(err error) bool {
			return verify && (apperror.HasCode(err, apperror.CodeMalformedToken) ||
				apperror.HasCode(err, apperror.CodeSignatureInvalid))
		},
	}

	var issued *domain.CaptureContext
	attempts, err := policy.Do(ctx, func(attempt int) error {
		token, err := s.gateway.GenerateCaptureContext(ctx, sandbox, req)
		if err != nil {
			return err
		}
		if verify {
			if err := s.verifier.Verify(ctx, token, sandbox); err != nil {
				s.log.Warn().Err(err).Int("attempt", attempt).Msg("capture context verification failed")
				return err
			}
		}
		cc, err := DecodeCaptureContext(token)
		if err != nil {
			return err
		}
		issued = cc
		return nil
	})

	if verify {
		s.metrics.ObserveVerificationAttempts(attempts, err == nil)
	}
	if err != nil {
		var exhausted *RetryExhaustedError
		if errors.As(err, &exhausted) {
			return nil, apperror.ErrVerificationExhausted(exhausted.Attempts, exhausted.Err)
		}
		return nil, err
	}

	s.log.Info().
		Str("kid", issued.KeyID).
		Int("attempts", attempts).
		Bool("sandbox", sandbox).
		Msg("capture context issued")
	return issued, nil
}

// DecodeCaptureContext reads the client library and signing key id out of a
// capture-context token without verifying it.
func DecodeCaptureContext(signedToken string) (*domain.CaptureContext, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser(jwt.WithPaddingAllowed()).ParseUnverified(signedToken, claims); err != nil {
		return nil, apperror.ErrMalformedToken(err)
	}

	data, ok := contextData(claims[claimContext])
	if !ok {
		return nil, apperror.ErrClaimMissing(claimContext)
	}
	library, _ := data["clientLibrary"].(string)
	integrity, _ := data["clientLibraryIntegrity"].(string)
	if library == "" {
		return nil, apperror.ErrClaimMissing(claimContext)
	}

	kid, ok := flexKeyID(claims[claimFlex])
	if !ok {
		return nil, apperror.ErrClaimMissing(claimFlex)
	}

	return &domain.CaptureContext{
		SignedToken:                signedToken,
		KeyID:                      kid,
		ClientLibraryURL:           library,
		ClientLibraryIntegrityHash: integrity,
	}, nil
}

// EncodeCaptureContextClaims builds the ctx and flx claims the gateway embeds in a capture context.
func EncodeCaptureContextClaims(cc *domain.CaptureContext) jwt.MapClaims {
	return jwt.MapClaims{
		claimContext: []any{
			map[string]any{
				"type": "mf-2.0.0",
				"data": map[string]any{
					"clientLibrary":          cc.ClientLibraryURL,
					"clientLibraryIntegrity": cc.ClientLibraryIntegrityHash,
				},
			},
		},
		claimFlex: map[string]any{
			"jwk": map[string]any{
				"kid": cc.KeyID,
				"kty": "RSA",
				"use": "enc",
			},
		},
	}
}

// contextData returns ctx[0].data. The claim may be an array, a single object,
// or either of those serialized as a JSON string.
func contextData(v any) (map[string]any, bool) {
	v = unwrapJSONString(v)
	switch c := v.(type) {
	case []any:
		for _, item := range c {
			if data, ok := dataOf(unwrapJSONString(item)); ok {
				return data, true
			}
		}
	case map[string]any:
		return dataOf(c)
	}
	return nil, false
}

func dataOf(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	data, ok := unwrapJSONString(obj["data"]).(map[string]any)
	return data, ok
}

func flexKeyID(v any) (string, bool) {
	obj, ok := unwrapJSONString(v).(map[string]any)
	if !ok {
		return "", false
	}
	jwk, ok := unwrapJSONString(obj["jwk"]).(map[string]any)
	if !ok {
		return "", false
	}
	kid, _ := jwk["kid"].(string)
	return kid, kid != ""
}

func unwrapJSONString(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	var out any
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return v
	}
	return out
}
