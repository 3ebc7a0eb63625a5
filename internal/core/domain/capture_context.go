package domain

// CaptureContext is handed to the browser so it can tokenize card data directly
// with the gateway. It is never persisted.
type CaptureContext struct {
	SignedToken                string `json:"jwt"`
	KeyID                      string `json:"key_id"`
	ClientLibraryURL           string `json:"client_library"`
	ClientLibraryIntegrityHash string `json:"client_library_integrity"`
}

// SigningKey is a gateway RSA public key in JWK form. Modulus and exponent are base64url.
type SigningKey struct {
	KeyID    string `json:"kid"`
	KeyType  string `json:"kty"`
	Use      string `json:"use"`
	Modulus  string `json:"n"`
	Exponent string `json:"e"`
}

// PaymentRequestContext travels with every outbound gateway operation.
// Sandbox selects the environment host and credentials for the whole call.
type PaymentRequestContext struct {
	Sandbox           bool
	SingleMessageMode bool
	OuterPaymentID    string
}
