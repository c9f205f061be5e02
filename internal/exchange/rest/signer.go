// internal/exchange/rest/signer.go
package rest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Signer computes the CB-ACCESS-* authentication headers. The secret is
// held as a byte slice so it can be wiped after use.
type Signer struct {
	apiKey    string
	apiSecret []byte
}

// NewSigner creates a signer for the given API key pair.
func NewSigner(apiKey, apiSecret string) *Signer {
	return &Signer{
		apiKey:    apiKey,
		apiSecret: []byte(apiSecret),
	}
}

// Headers returns the authentication headers for one request. The signature
// is the hex HMAC-SHA256 of timestamp + method + path + body.
func (s *Signer) Headers(timestamp int64, method, path, body string) map[string]string {
	ts := strconv.FormatInt(timestamp, 10)
	mac := hmac.New(sha256.New, s.apiSecret)
	mac.Write([]byte(ts + method + path + body))

	return map[string]string{
		"CB-ACCESS-KEY":       s.apiKey,
		"CB-ACCESS-SIGN":      hex.EncodeToString(mac.Sum(nil)),
		"CB-ACCESS-TIMESTAMP": ts,
	}
}

// Wipe clears the secret from memory.
func (s *Signer) Wipe() {
	for i := range s.apiSecret {
		s.apiSecret[i] = 0
	}
}
