package exchange

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"testing"

	"github.com/DanielPopoola/coinledger/internal/clock"
	"github.com/DanielPopoola/coinledger/internal/config"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testTimestamp = int64(1700000000000)
	emptyHash     = "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"
)

func testSigner(ms int64) *Signer {
	return NewSigner(config.ExchangeConfig{APIKey: "key", APISecret: "secret"}, clock.Fixed(ms))
}

func TestSigner_Sign_NoBody(t *testing.T) {
	signed, err := testSigner(testTimestamp).Sign("get", "https://api.bittrex.com/v3/markets", nil)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, signed.Method)
	assert.Nil(t, signed.Body)
	assert.Equal(t, "key", signed.Headers.APIKey)
	assert.Equal(t, "1700000000000", signed.Headers.Timestamp)
	assert.Equal(t, emptyHash, signed.Headers.ContentHash)
	assert.Equal(t,
		"8ff83cdc8c0bbee7bd7e16baced5cf788c856b089d0a4da89a026edfb600fecaacd49cea0c39ca36b2b63deb306478aa79a1371ac14bfb897d01b9711b919a06",
		signed.Headers.Signature,
	)
}

func TestSigner_Sign_WithBody(t *testing.T) {
	body := map[string]any{"b": 1, "a": "x<y"}

	signed, err := testSigner(testTimestamp).Sign(http.MethodPost, "https://api.bittrex.com/v3/orders", body)
	require.NoError(t, err)

	assert.Equal(t, `{"a":"x<y","b":1}`, string(signed.Body))
	assert.Equal(t,
		"7c4c363a0a32357ef77ce4e21b019d263b9f99d2fb05f53a2f219dd8491a70faf46e8f4090438f665152c93633f3784027a2d8de92a7f8fdbf9b34d3ff6bd13a",
		signed.Headers.ContentHash,
	)
	assert.Equal(t,
		"ba6da1ca4f8172b9de050f22148e73dea1dd765b9b56700be8c9bc45f53270542820fd271ec542217f35ee2ba5c3ead1ba8831ed0bdbfd76e712eace0ef5beff",
		signed.Headers.Signature,
	)
}

func TestSigner_Sign_Deterministic(t *testing.T) {
	s := testSigner(testTimestamp)

	first, err := s.Sign(http.MethodGet, "https://api.bittrex.com/v3/markets/BTC-USD/ticker", nil)
	require.NoError(t, err)
	second, err := s.Sign(http.MethodGet, "https://api.bittrex.com/v3/markets/BTC-USD/ticker", nil)
	require.NoError(t, err)

	assert.Equal(t, first.Headers, second.Headers)
}

func TestSigner_Sign_TimestampChangesSignature(t *testing.T) {
	url := "https://api.bittrex.com/v3/markets/BTC-USD/ticker"

	a, err := testSigner(testTimestamp).Sign(http.MethodGet, url, nil)
	require.NoError(t, err)
	b, err := testSigner(testTimestamp+1).Sign(http.MethodGet, url, nil)
	require.NoError(t, err)

	assert.Equal(t, a.Headers.ContentHash, b.Headers.ContentHash)
	assert.NotEqual(t, a.Headers.Signature, b.Headers.Signature)
}

func TestSigner_Sign_AdvancingClock(t *testing.T) {
	var now int64 = testTimestamp
	s := NewSigner(config.ExchangeConfig{APIKey: "key", APISecret: "secret"}, clock.Func(func() int64 {
		now++
		return now
	}))

	a, err := s.Sign(http.MethodGet, "https://example.test/markets", nil)
	require.NoError(t, err)
	b, err := s.Sign(http.MethodGet, "https://example.test/markets", nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.Headers.Timestamp, b.Headers.Timestamp)
	assert.NotEqual(t, a.Headers.Signature, b.Headers.Signature)
}

func TestSigner_Sign_BodyByteChangesHash(t *testing.T) {
	s := testSigner(testTimestamp)
	url := "https://api.bittrex.com/v3/orders"

	a, err := s.Sign(http.MethodPost, url, json.RawMessage(`{"quantity":"1.0"}`))
	require.NoError(t, err)
	b, err := s.Sign(http.MethodPost, url, json.RawMessage(`{"quantity":"1.1"}`))
	require.NoError(t, err)

	assert.NotEqual(t, a.Headers.ContentHash, b.Headers.ContentHash)
	assert.NotEqual(t, a.Headers.Signature, b.Headers.Signature)
}

func TestSigner_Sign_EachPartIsBound(t *testing.T) {
	s := testSigner(testTimestamp)
	base, err := s.Sign(http.MethodGet, "https://example.test/markets", nil)
	require.NoError(t, err)

	otherURL, err := s.Sign(http.MethodGet, "https://example.test/markets?x=1", nil)
	require.NoError(t, err)
	otherMethod, err := s.Sign(http.MethodDelete, "https://example.test/markets", nil)
	require.NoError(t, err)
	otherSecret, err := NewSigner(config.ExchangeConfig{APIKey: "key", APISecret: "other"}, clock.Fixed(testTimestamp)).
		Sign(http.MethodGet, "https://example.test/markets", nil)
	require.NoError(t, err)

	assert.NotEqual(t, base.Headers.Signature, otherURL.Headers.Signature)
	assert.NotEqual(t, base.Headers.Signature, otherMethod.Headers.Signature)
	assert.NotEqual(t, base.Headers.Signature, otherSecret.Headers.Signature)
}

func TestSigner_Sign_SignatureMatchesManualHMAC(t *testing.T) {
	signed, err := testSigner(42).Sign(http.MethodGet, "https://example.test/x", nil)
	require.NoError(t, err)

	mac := hmac.New(sha512.New, []byte("secret"))
	mac.Write([]byte("42" + "https://example.test/x" + "GET" + emptyHash))

	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), signed.Headers.Signature)
}

func TestSigner_Sign_UnserializableBody(t *testing.T) {
	_, err := testSigner(testTimestamp).Sign(http.MethodPost, "https://example.test/x", map[string]any{"c": make(chan int)})
	require.Error(t, err)
}

func TestCanonicalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "sorted keys", in: map[string]any{"z": 1, "a": 2}, want: `{"a":2,"z":1}`},
		{name: "nested", in: map[string]any{"o": map[string]any{"y": []int{1, 2}, "x": nil}}, want: `{"o":{"x":null,"y":[1,2]}}`},
		{name: "html not escaped", in: map[string]string{"s": "<&>"}, want: `{"s":"<&>"}`},
		{name: "raw passthrough", in: json.RawMessage(`{ "kept" : true }`), want: `{ "kept" : true }`},
		{name: "empty object", in: map[string]any{}, want: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanonicalJSON(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestAuthHeaders_Apply(t *testing.T) {
	h := http.Header{}
	AuthHeaders{APIKey: "k", Timestamp: "1", ContentHash: "h", Signature: "s"}.Apply(h)

	assert.Equal(t, "k", h.Get(HeaderAPIKey))
	assert.Equal(t, "1", h.Get(HeaderTimestamp))
	assert.Equal(t, "h", h.Get(HeaderContentHash))
	assert.Equal(t, "s", h.Get(HeaderSignature))
}
