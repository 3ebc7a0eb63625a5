package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// httpSigner produces the gateway's HTTP Signature headers (HmacSHA256 over
// host, date, request-target, digest and merchant id).
type httpSigner struct {
	merchantID string
	keyID      string
	secret     []byte
}

func newHTTPSigner(merchantID, keyID, secretKey string) (*httpSigner, error) {
	secret, err := base64.StdEncoding.DecodeString(secretKey)
	if err != nil {
		return nil, fmt.Errorf("decoding merchant secret key: %w", err)
	}
	return &httpSigner{merchantID: merchantID, keyID: keyID, secret: secret}, nil
}

// digest returns the body digest header value.
func digest(body []byte) string {
	sum := sha256.Sum256(body)
	return "SHA-256=" + base64.StdEncoding.EncodeToString(sum[:])
}

// headers returns the authentication headers for one request.
// target is the path including the query string.
func (s *httpSigner) headers(method, host, target string, body []byte, now time.Time) map[string]string {
	date := now.UTC().Format(http.TimeFormat)
	hasBody := method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch

	names := []string{"host", "date", "request-target"}
	lines := []string{
		"host: " + host,
		"date: " + date,
		"request-target: " + strings.ToLower(method) + " " + target,
	}

	out := map[string]string{
		"v-c-merchant-id": s.merchantID,
		"Date":            date,
	}

	if hasBody {
		d := digest(body)
		names = append(names, "digest")
		lines = append(lines, "digest: "+d)
		out["Digest"] = d
	}
	names = append(names, "v-c-merchant-id")
	lines = append(lines, "v-c-merchant-id: "+s.merchantID)

	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(strings.Join(lines, "\n")))
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	out["Signature"] = fmt.Sprintf(`keyid="%s", algorithm="HmacSHA256", headers="%s", signature="%s"`,
		s.keyID, strings.Join(names, " "), sig)
	return out
}
