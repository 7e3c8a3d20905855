package utils

import (
	"context"
	"crypto/tls"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"net/http/httptrace"
	"time"
)

// defaultUserAgents is a list of common browser User-Agent strings.
// Some CDNs answer differently to non-browser clients, so probes look like a browser.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
}

// DefaultProbeTimeout bounds a probe when no positive timeout is configured.
const DefaultProbeTimeout = 10 * time.Second

// GetRandomUserAgent selects a User-Agent string randomly from the predefined list.
func GetRandomUserAgent() string {
	return defaultUserAgents[rand.Intn(len(defaultUserAgents))]
}

// ProbeRequest is a single outbound header probe. The method is always HEAD.
type ProbeRequest struct {
	URL string
}

// NewProbeRequest builds a probe for targetURL.
func NewProbeRequest(targetURL string) ProbeRequest {
	return ProbeRequest{URL: targetURL}
}

// Method is the HTTP method every probe uses.
func (ProbeRequest) Method() string {
	return http.MethodHead
}

// ProbeResult holds what a probe learned about the target. The body is never read.
type ProbeResult struct {
	StatusCode int
	Status     string
	Headers    []HeaderEntry
	RawHeaders http.Header
	RemoteAddr string
}

// Prober issues header probes.
type Prober interface {
	ProbeHeaders(ctx context.Context, req ProbeRequest) (*ProbeResult, error)
}

// HTTPProber probes targets over plain net/http. The zero value is not usable;
// build one with NewHTTPProber.
type HTTPProber struct {
	client *http.Client
}

// NewHTTPProber returns a prober whose requests are bounded by timeout.
// Redirects are not followed and connections are not reused between probes.
func NewHTTPProber(timeout time.Duration) *HTTPProber {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		DialContext: (&net.Dialer{
			Timeout: timeout,
		}).DialContext,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
		DisableKeepAlives:     true,
		ForceAttemptHTTP2:     true,
	}

	return &HTTPProber{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// ProbeHeaders sends one HEAD request to req.URL and returns the response headers.
// The probe is abandoned when ctx is cancelled.
func (p *HTTPProber) ProbeHeaders(ctx context.Context, req ProbeRequest) (*ProbeResult, error) {
	var remoteAddr string
	trace := &httptrace.ClientTrace{
		GotConn: func(info httptrace.GotConnInfo) {
			if info.Conn != nil {
				remoteAddr = info.Conn.RemoteAddr().String()
			}
		},
	}
	ctx = httptrace.WithClientTrace(ctx, trace)

	httpReq, err := http.NewRequestWithContext(ctx, req.Method(), req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", req.URL, err)
	}

	httpReq.Header.Set("User-Agent", GetRandomUserAgent())
	httpReq.Header.Set("Accept", "*/*")
	httpReq.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to probe %s: %w", req.URL, err)
	}
	resp.Body.Close()

	// net/http moves Transfer-Encoding out of the header map; put it back so the
	// collection shows what the server sent.
	if len(resp.TransferEncoding) > 0 && resp.Header.Get("Transfer-Encoding") == "" {
		resp.Header["Transfer-Encoding"] = resp.TransferEncoding
	}

	return &ProbeResult{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Headers:    CollectHeaders(resp.Header),
		RawHeaders: resp.Header,
		RemoteAddr: remoteAddr,
	}, nil
}
