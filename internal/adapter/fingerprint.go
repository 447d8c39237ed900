package adapter

import (
	"encoding/hex"

	"github.com/minio/highwayhash"
)

var fingerprintKey = []byte("mapconv-fingerprint-key-00000032")

// Fingerprinter computes stable content fingerprints for cache checks.
type Fingerprinter interface {
	Fingerprint(data []byte) (string, error)
}

// HighwayFingerprinter fingerprints content with 64-bit HighwayHash.
type HighwayFingerprinter struct{}

// NewHighwayFingerprinter constructs a HighwayFingerprinter.
func NewHighwayFingerprinter() *HighwayFingerprinter {
	return &HighwayFingerprinter{}
}

// Fingerprint returns the hex encoded hash of data.
func (f *HighwayFingerprinter) Fingerprint(data []byte) (string, error) {
	hash, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return "", err
	}

	if _, err := hash.Write(data); err != nil {
		return "", err
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
