package x509

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
)

// ReadX509 reads certificates from file in PEM format
func ReadX509(path string) ([]*x509.Certificate, error) {
	certPEMBlock, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseX509(certPEMBlock)
}

// ParseX509 parses certificates from PEM format
func ParseX509(pemBlock []byte) ([]*x509.Certificate, error) {
	data := pemBlock
	var cas []*x509.Certificate
	for {
		certDERBlock, tmp := pem.Decode(data)
		if certDERBlock == nil {
			return nil, errors.New("cannot decode pem block")
		}
		certs, err := x509.ParseCertificates(certDERBlock.Bytes)
		if err != nil {
			return nil, err
		}
		cas = append(cas, certs...)
		if len(tmp) == 0 {
			break
		}
		data = tmp
	}
	return cas, nil
}

// AppendCertPool adds certificates from the PEM file to the pool. A nil pool is replaced by an empty one.
func AppendCertPool(pool *x509.CertPool, path string) (*x509.CertPool, error) {
	cas, err := ReadX509(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load certificates from %v: %w", path, err)
	}
	if pool == nil {
		pool = x509.NewCertPool()
	}
	for _, ca := range cas {
		pool.AddCert(ca)
	}
	return pool, nil
}
