package exchange

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/DanielPopoola/coinledger/internal/clock"
	"github.com/DanielPopoola/coinledger/internal/config"
	json "github.com/goccy/go-json"
)

// Header names required on every authenticated exchange request.
const (
	HeaderAPIKey      = "Api-Key"
	HeaderTimestamp   = "Api-Timestamp"
	HeaderContentHash = "Api-Content-Hash"
	HeaderSignature   = "Api-Signature"
)

// AuthHeaders prove possession of the API secret for a single request.
// The signature binds the timestamp, so a set must never be reused.
type AuthHeaders struct {
	APIKey      string
	Timestamp   string
	ContentHash string
	Signature   string
}

// Apply sets the authentication headers on h.
func (a AuthHeaders) Apply(h http.Header) {
	h.Set(HeaderAPIKey, a.APIKey)
	h.Set(HeaderTimestamp, a.Timestamp)
	h.Set(HeaderContentHash, a.ContentHash)
	h.Set(HeaderSignature, a.Signature)
}

// SignedRequest is everything needed to send one authenticated call.
// Body holds the exact bytes the content hash was computed over.
type SignedRequest struct {
	Method  string
	URL     string
	Body    []byte
	Headers AuthHeaders
}

// Signer produces exchange authentication headers with HMAC-SHA512.
type Signer struct {
	apiKey string
	secret []byte
	clock  clock.Clock
}

func NewSigner(cfg config.ExchangeConfig, clk clock.Clock) *Signer {
	if clk == nil {
		clk = clock.System
	}
	return &Signer{
		apiKey: cfg.APIKey,
		secret: []byte(cfg.APISecret),
		clock:  clk,
	}
}

// Sign computes the headers for method and fullURL (query string included).
// A nil body hashes the empty string; anything else is hashed as CanonicalJSON.
//
// The pre-signature string is timestamp + fullURL + METHOD + contentHash with no separators.
func (s *Signer) Sign(method, fullURL string, body any) (*SignedRequest, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = CanonicalJSON(body)
		if err != nil {
			return nil, fmt.Errorf("serialize body: %w", err)
		}
	}

	method = strings.ToUpper(method)
	timestamp := strconv.FormatInt(s.clock.NowMillis(), 10)
	contentHash := ContentHash(payload)

	var pre strings.Builder
	pre.Grow(len(timestamp) + len(fullURL) + len(method) + len(contentHash))
	pre.WriteString(timestamp)
	pre.WriteString(fullURL)
	pre.WriteString(method)
	pre.WriteString(contentHash)

	return &SignedRequest{
		Method: method,
		URL:    fullURL,
		Body:   payload,
		Headers: AuthHeaders{
			APIKey:      s.apiKey,
			Timestamp:   timestamp,
			ContentHash: contentHash,
			Signature:   s.hmac(pre.String()),
		},
	}, nil
}

func (s *Signer) hmac(msg string) string {
	mac := hmac.New(sha512.New, s.secret)
	mac.Write([]byte(msg))
	return hex.EncodeToString(mac.Sum(nil))
}

// ContentHash is the hex SHA-512 digest of payload.
func ContentHash(payload []byte) string {
	sum := sha512.Sum512(payload)
	return hex.EncodeToString(sum[:])
}

// CanonicalJSON is the pinned body encoding the exchange re-hashes on its side:
// compact separators (',' and ':'), no whitespace, object keys sorted, HTML
// characters left unescaped. json.RawMessage and []byte values are sent verbatim.
func CanonicalJSON(v any) ([]byte, error) {
	switch raw := v.(type) {
	case json.RawMessage:
		return raw, nil
	case []byte:
		return raw, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
