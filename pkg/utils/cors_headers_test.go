package utils

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCORSHeaderIgnoresCase(t *testing.T) {
	for _, name := range CORSHeaderNames() {
		assert.True(t, IsCORSHeader(name), name)
		assert.True(t, IsCORSHeader(http.CanonicalHeaderKey(name)), name)
	}
	assert.True(t, IsCORSHeader("ACCESS-CONTROL-ALLOW-ORIGIN"))
	assert.False(t, IsCORSHeader("access-control-request-method"))
	assert.False(t, IsCORSHeader("vary"))
	assert.Len(t, CORSHeaderNames(), 6)
}

func TestCollectHeadersLowercasesAndJoins(t *testing.T) {
	h := http.Header{}
	h.Set("Content-Type", "image/png")
	h.Add("Vary", "Origin")
	h.Add("Vary", "Accept-Encoding")
	h.Set("Access-Control-Allow-Origin", "*")

	entries := CollectHeaders(h)
	require.Len(t, entries, 3)
	assert.Equal(t, HeaderEntry{Name: "access-control-allow-origin", Value: "*"}, entries[0])
	assert.Equal(t, HeaderEntry{Name: "content-type", Value: "image/png"}, entries[1])
	assert.Equal(t, "vary: Origin, Accept-Encoding", entries[2].String())
}

func TestPartitionHeadersIsDisjointAndExhaustive(t *testing.T) {
	h := http.Header{}
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, HEAD")
	h.Set("Access-Control-Allow-Headers", "Range")
	h.Set("Access-Control-Max-Age", "600")
	h.Set("Access-Control-Expose-Headers", "ETag")
	h.Set("Access-Control-Allow-Credentials", "true")
	h.Set("Access-Control-Request-Method", "GET")
	h.Set("Content-Type", "text/html")
	h.Set("Etag", `"abc"`)

	entries := CollectHeaders(h)
	cors, other := PartitionHeaders(entries)

	assert.Len(t, cors, 6)
	assert.Len(t, other, 3)

	seen := map[string]int{}
	for _, e := range cors {
		assert.True(t, IsCORSHeader(e.Name))
		seen[e.Name]++
	}
	for _, e := range other {
		assert.False(t, IsCORSHeader(e.Name))
		seen[e.Name]++
	}
	require.Len(t, seen, len(entries))
	for _, e := range entries {
		assert.Equal(t, 1, seen[e.Name], e.Name)
	}
}

func TestPartitionHeadersEmpty(t *testing.T) {
	cors, other := PartitionHeaders(nil)
	assert.Empty(t, cors)
	assert.Empty(t, other)
}

func TestHeaderValue(t *testing.T) {
	entries := []HeaderEntry{{Name: "content-type", Value: "audio/mpeg"}}
	assert.Equal(t, "audio/mpeg", HeaderValue(entries, "Content-Type"))
	assert.Equal(t, "", HeaderValue(entries, "etag"))
}
