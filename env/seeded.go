//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/chacha20"
)

// Seeded is a deterministic random source. It produces the ChaCha20
// key stream keyed with SHA-256 of a seed. Seeded is not safe for
// concurrent use; create one stream per goroutine.
type Seeded struct {
	cipher *chacha20.Cipher
}

// NewSeeded creates a deterministic random source from seed. The
// stream argument selects an independent key stream for the same
// seed.
func NewSeeded(seed []byte, stream uint32) *Seeded {
	key := sha256.Sum256(seed)

	var nonce [chacha20.NonceSize]byte
	binary.BigEndian.PutUint32(nonce[chacha20.NonceSize-4:], stream)

	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err)
	}
	return &Seeded{
		cipher: cipher,
	}
}

// Read fills p with the next bytes of the key stream. It never fails.
func (s *Seeded) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	s.cipher.XORKeyStream(p, p)
	return len(p), nil
}

var _ io.Reader = &Seeded{}
