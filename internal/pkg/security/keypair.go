package security

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
)

const rsaKeyBits = 2048

const (
	pemPublicKey  = "PUBLIC KEY"
	pemPrivateKey = "PRIVATE KEY"
)

// ErrDecryption is wrapped by every Decrypt failure.
var ErrDecryption = errors.New("decryption failed")

// KeyPair is a PEM-encoded RSA key pair: SPKI public key, PKCS8 private key.
type KeyPair struct {
	PublicKey  string
	PrivateKey string
}

// GenerateKeyPair creates a fresh 2048-bit RSA key pair.
func GenerateKeyPair() (KeyPair, error) {
	key, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return KeyPair{}, fmt.Errorf("generate rsa key: %w", err)
	}

	privDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return KeyPair{}, fmt.Errorf("marshal private key: %w", err)
	}
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return KeyPair{}, fmt.Errorf("marshal public key: %w", err)
	}

	return KeyPair{
		PublicKey:  string(pem.EncodeToMemory(&pem.Block{Type: pemPublicKey, Bytes: pubDER})),
		PrivateKey: string(pem.EncodeToMemory(&pem.Block{Type: pemPrivateKey, Bytes: privDER})),
	}, nil
}

// Decrypt decodes base64 ciphertext and decrypts it with RSA-OAEP/SHA-256.
// privateKeyPEM may be bare base64 key material without the PEM envelope.
func Decrypt(ciphertextB64, privateKeyPEM string) (string, error) {
	key, err := parsePrivateKey(privateKeyPEM)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(strings.TrimSpace(ciphertextB64))
	if err != nil {
		return "", fmt.Errorf("%w: decode ciphertext: %v", ErrDecryption, err)
	}

	plaintext, err := rsa.DecryptOAEP(sha256.New(), nil, key, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	return string(plaintext), nil
}

// EncryptWithPublicKey is the client half of the exchange: it encrypts
// plaintext for the holder of publicKeyPEM and returns base64 ciphertext.
func EncryptWithPublicKey(publicKeyPEM, plaintext string) (string, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil || block.Type != pemPublicKey {
		return "", errors.New("public key: no PEM block found")
	}
	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return "", fmt.Errorf("public key: %w", err)
	}
	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return "", errors.New("public key: not an RSA key")
	}

	ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, []byte(plaintext), nil)
	if err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func parsePrivateKey(privateKeyPEM string) (*rsa.PrivateKey, error) {
	if !strings.Contains(privateKeyPEM, "-----BEGIN "+pemPrivateKey+"-----") {
		privateKeyPEM = "-----BEGIN " + pemPrivateKey + "-----\n" +
			strings.TrimSpace(privateKeyPEM) +
			"\n-----END " + pemPrivateKey + "-----\n"
	}

	block, _ := pem.Decode([]byte(privateKeyPEM))
	if block == nil {
		return nil, errors.New("private key: no PEM block found")
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("private key: %w", err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("private key: not an RSA key")
	}
	return key, nil
}
