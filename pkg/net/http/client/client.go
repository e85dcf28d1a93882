package client

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"

	pkgX509 "github.com/plgd-dev/notification2/pkg/security/x509"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

// Client wraps http.Client configured for an outgoing API.
type Client struct {
	client    *http.Client
	closeFunc []func()
}

func (c *Client) HTTP() *http.Client {
	return c.client
}

func (c *Client) AddCloseFunc(f func()) {
	c.closeFunc = append(c.closeFunc, f)
}

func (c *Client) Close() {
	c.client.CloseIdleConnections()
	for _, f := range c.closeFunc {
		f()
	}
}

func newTLSConfig(cfg TLSConfig) (*tls.Config, error) {
	var pool *x509.CertPool
	if cfg.UseSystemCAPool {
		p, err := x509.SystemCertPool()
		if err != nil {
			return nil, fmt.Errorf("cannot load system certificate pool: %w", err)
		}
		pool = p
	}
	if cfg.CAPool != "" {
		p, err := pkgX509.AppendCertPool(pool, cfg.CAPool)
		if err != nil {
			return nil, fmt.Errorf("caPool('%v'): %w", cfg.CAPool, err)
		}
		pool = p
	}
	return &tls.Config{
		RootCAs:            pool,
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec
		MinVersion:         tls.VersionTLS12,
	}, nil
}

// New creates the client. When tracerProvider is nil, requests are not traced.
func New(config Config, tracerProvider trace.TracerProvider) (*Client, error) {
	tlsCfg, err := newTLSConfig(config.TLS)
	if err != nil {
		return nil, err
	}
	if tracerProvider == nil {
		tracerProvider = trace.NewNoopTracerProvider()
	}
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = config.MaxIdleConns
	t.MaxConnsPerHost = config.MaxConnsPerHost
	t.MaxIdleConnsPerHost = config.MaxIdleConnsPerHost
	t.IdleConnTimeout = config.IdleConnTimeout
	t.TLSClientConfig = tlsCfg
	return &Client{
		client: &http.Client{
			Transport: otelhttp.NewTransport(t, otelhttp.WithTracerProvider(tracerProvider)),
			Timeout:   config.Timeout,
		},
	}, nil
}
