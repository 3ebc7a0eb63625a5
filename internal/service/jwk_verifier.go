package service

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"cybersource-gateway/internal/core/domain"
	"cybersource-gateway/internal/core/ports"
	"cybersource-gateway/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

var rsaSigningMethods = []string{
	jwt.SigningMethodRS256.Alg(),
	jwt.SigningMethodRS384.Alg(),
	jwt.SigningMethodRS512.Alg(),
	jwt.SigningMethodPS256.Alg(),
	jwt.SigningMethodPS384.Alg(),
	jwt.SigningMethodPS512.Alg(),
}

// JWKVerifier implements ports.SigningKeyVerifier.
// The signing key is fetched on every call because the gateway rotates keys.
type JWKVerifier struct {
	keys ports.PublicKeyFetcher
	log  zerolog.Logger
}

// NewJWKVerifier creates a new JWKVerifier.
func NewJWKVerifier(keys ports.PublicKeyFetcher, log zerolog.Logger) *JWKVerifier {
	return &JWKVerifier{keys: keys, log: log}
}

type tokenHeader struct {
	KeyID     string `json:"kid"`
	Algorithm string `json:"alg"`
}

// Verify checks the token's signature against the key named by its kid header.
// Expiry and not-before claims are not enforced.
func (v *JWKVerifier) Verify(ctx context.Context, signedToken string, sandbox bool) error {
	header, err := parseTokenHeader(signedToken)
	if err != nil {
		return apperror.ErrMalformedToken(err)
	}

	jwk, err := v.keys.FetchPublicKey(ctx, sandbox, header.KeyID)
	if err != nil {
		if errors.Is(err, ports.ErrGatewayNotFound) {
			return apperror.ErrKeyNotFound(header.KeyID, err)
		}
		return err
	}

	pub, err := rsaPublicKey(jwk)
	if err != nil {
		return apperror.ErrKeyNotFound(header.KeyID, err)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods(rsaSigningMethods),
		jwt.WithoutClaimsValidation(),
		jwt.WithPaddingAllowed(),
	)
	_, err = parser.Parse(signedToken, func(*jwt.Token) (any, error) { return pub, nil })
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return apperror.ErrMalformedToken(err)
		}
		return apperror.ErrSignatureInvalid(err)
	}

	v.log.Debug().Str("kid", header.KeyID).Bool("sandbox", sandbox).Msg("capture context signature verified")
	return nil
}

func parseTokenHeader(token string) (*tokenHeader, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("expected 3 segments, got %d", len(parts))
	}

	raw, err := decodeSegment(parts[0])
	if err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}

	var h tokenHeader
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}
	if h.KeyID == "" {
		return nil, errors.New("header has no kid")
	}
	return &h, nil
}

// decodeSegment accepts base64url with or without padding.
func decodeSegment(seg string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(seg, "="))
}

func rsaPublicKey(k *domain.SigningKey) (*rsa.PublicKey, error) {
	if k == nil {
		return nil, errors.New("empty key")
	}
	if k.KeyType != "" && k.KeyType != "RSA" {
		return nil, fmt.Errorf("unsupported key type %q", k.KeyType)
	}

	n, err := decodeSegment(k.Modulus)
	if err != nil {
		return nil, fmt.Errorf("decode modulus: %w", err)
	}
	e, err := decodeSegment(k.Exponent)
	if err != nil {
		return nil, fmt.Errorf("decode exponent: %w", err)
	}
	if len(n) == 0 || len(e) == 0 {
		return nil, errors.New("key material missing")
	}

	exp := new(big.Int).SetBytes(e)
	if !exp.IsInt64() || exp.Int64() > 1<<31-1 {
		return nil, errors.New("exponent out of range")
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(n), E: int(exp.Int64())}, nil
}
