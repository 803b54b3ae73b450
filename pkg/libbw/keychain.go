package libbw

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// A KeyChain contains the keys derived for one decryption attempt.
// It must be wiped once the payload is decrypted.
type KeyChain struct {
	MasterKey []byte
	MacKey    []byte
	EncKey    []byte
}

// NewKeyChain stretches the master key into the MAC key and the encryption key.
func NewKeyChain(master []byte) *KeyChain {
	return &KeyChain{
		MasterKey: master,
		MacKey:    expand(master, "mac"),
		EncKey:    expand(master, "enc"),
	}
}

// Wipe zeroes all the key material.
func (k *KeyChain) Wipe() {
	zero(k.MasterKey)
	zero(k.MacKey)
	zero(k.EncKey)
}

// HKDF-Expand step with an empty salt and a context label.
func expand(key []byte, info string) []byte {
	payload := make([]byte, masterKeySize)

	kdf := hkdf.Expand(sha256.New, key, []byte(info))
	if _, err := io.ReadFull(kdf, payload); err != nil {
		panic(err)
	}

	return payload
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
