package x509_test

import (
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	pkgX509 "github.com/plgd-dev/notification2/pkg/security/x509"
	"github.com/stretchr/testify/require"
)

func writeServerCertificate(t *testing.T) string {
	srv := httptest.NewTLSServer(http.NotFoundHandler())
	defer srv.Close()
	certPath := filepath.Join(t.TempDir(), "test-cert.pem")
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: srv.Certificate().Raw})
	err := os.WriteFile(certPath, append(certPEM, certPEM...), 0o600)
	require.NoError(t, err)
	return certPath
}

func TestReadX509(t *testing.T) {
	certs, err := pkgX509.ReadX509(writeServerCertificate(t))
	require.NoError(t, err)
	require.Len(t, certs, 2)

	_, err = pkgX509.ReadX509(filepath.Join(t.TempDir(), "not-exist.pem"))
	require.Error(t, err)
}

func TestParseX509(t *testing.T) {
	_, err := pkgX509.ParseX509([]byte("invalid"))
	require.Error(t, err)
}

func TestAppendCertPool(t *testing.T) {
	pool, err := pkgX509.AppendCertPool(nil, writeServerCertificate(t))
	require.NoError(t, err)
	require.NotNil(t, pool)

	_, err = pkgX509.AppendCertPool(pool, filepath.Join(t.TempDir(), "not-exist.pem"))
	require.Error(t, err)
}
