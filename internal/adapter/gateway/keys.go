package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"cybersource-gateway/internal/core/domain"
	"cybersource-gateway/pkg/apperror"
)

// FetchPublicKey retrieves the capture-context signing key for kid. Keys rotate, so nothing is cached.
func (c *Client) FetchPublicKey(ctx context.Context, sandbox bool, keyID string) (*domain.SigningKey, error) {
	resp, err := c.do(ctx, "public_key", sandbox, http.MethodGet, pathPublicKeys+"/"+url.PathEscape(keyID), nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp) {
		return nil, apiError(resp)
	}

	var key domain.SigningKey
	if err := json.Unmarshal(resp.Body(), &key); err != nil {
		return nil, apperror.ErrGatewayAPI(resp.StatusCode(), fmt.Errorf("decode public key: %w", err))
	}
	return &key, nil
}
