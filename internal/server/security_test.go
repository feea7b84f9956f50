package server

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greengarden/greengarden-server/internal/config"
)

func writeSelfSignedPair(t *testing.T) (certFile, keyFile string) {
	t.Helper()

	dir := t.TempDir()
	certFile = filepath.Join(dir, "cert.pem")
	keyFile = filepath.Join(dir, "key.pem")

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := x509.Certificate{
		SerialNumber: big.NewInt(42),
		Subject:      pkix.Name{Organization: []string{"Green Garden"}},
		NotBefore:    time.Now().Add(-time.Minute),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		IPAddresses:  []net.IP{net.IPv4(127, 0, 0, 1)},
	}
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(certFile, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))

	keyDER, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(keyFile, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER}), 0o600))

	return certFile, keyFile
}

func TestNewSecurityLayer(t *testing.T) {
	plain := NewSecurityLayer(config.GRPC{})
	assert.IsType(t, &PlainListener{}, plain)

	secure := NewSecurityLayer(config.GRPC{EnableHTTPS: true, CertFileName: "c.pem", PrivateKeyFileName: "k.pem"})
	require.IsType(t, &TLSListener{}, secure)
	assert.Equal(t, "c.pem", secure.(*TLSListener).certFileName)
	assert.Equal(t, "k.pem", secure.(*TLSListener).privateKeyFileName)
}

func TestTLSListener_Listen(t *testing.T) {
	certFile, keyFile := writeSelfSignedPair(t)

	ln, err := NewTLSListener(certFile, keyFile).Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.(*tls.Conn).Handshake()
	}()

	conn, err := tls.Dial("tcp", ln.Addr().String(), &tls.Config{InsecureSkipVerify: true}) //nolint:gosec // self-signed test certificate
	require.NoError(t, err)
	defer conn.Close()
	assert.True(t, conn.ConnectionState().HandshakeComplete)
}

func TestTLSListener_Listen_Errors(t *testing.T) {
	_, err := NewTLSListener("missing.crt", "missing.key").Listen("tcp", "127.0.0.1:0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load TLS certificate")

	certFile, keyFile := writeSelfSignedPair(t)
	_, err = NewTLSListener(certFile, keyFile).Listen("tcp", "invalid-address")
	require.Error(t, err)
}

func TestPlainListener_Listen(t *testing.T) {
	ln, err := NewPlainListener().Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	assert.IsType(t, &net.TCPListener{}, ln)

	_, err = NewPlainListener().Listen("tcp", "invalid-address")
	require.Error(t, err)
}
