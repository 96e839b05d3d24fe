package httpext

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// DefaultClientTimeout caps every outbound request made through SharedClient
const DefaultClientTimeout = 30 * time.Second

// SharedClient returns the process-wide pooled HTTP client. It is built on first use and
// never modified afterwards, so concurrent handlers can use it without locking.
var SharedClient = sync.OnceValue(func() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: DefaultClientTimeout,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &http.Client{
		Timeout:   DefaultClientTimeout,
		Transport: transport,
	}
})
