package hashtogroup

import (
	"crypto/sha256"
	"math/big"

	"golang.org/x/crypto/chacha20"
)

// SeedSize is the byte length of a sampler seed.
const SeedSize = sha256.Size

// Seed derives the sampler seed for a data/context pair: SHA-256 over the
// context followed by the data. The context comes first so that streams for
// distinct contexts diverge before any input byte is absorbed.
func Seed(data, context []byte) [SeedSize]byte {
	h := sha256.New()
	h.Write(context)
	h.Write(data)
	var seed [SeedSize]byte
	copy(seed[:], h.Sum(nil))
	return seed
}

// Sampler draws deterministic values from the ChaCha20 keystream keyed by a
// seed, with a zero nonce and a zero initial counter. Equal seeds yield
// equal draw sequences; every draw consumes keystream, so the sequence of
// calls is part of any pinned output.
//
// A Sampler is stateful and not safe for concurrent use. Construct one per
// mapping.
type Sampler struct {
	stream *chacha20.Cipher
}

// NewSampler returns a sampler over the seed's keystream.
func NewSampler(seed [SeedSize]byte) *Sampler {
	stream, err := chacha20.NewUnauthenticatedCipher(seed[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		// Key and nonce lengths are correct by construction.
		panic(err)
	}
	return &Sampler{stream: stream}
}

// Read fills p with the next keystream bytes.
func (s *Sampler) Read(p []byte) {
	clear(p)
	s.stream.XORKeyStream(p, p)
}

// Bit draws one keystream byte and returns its lowest bit.
func (s *Sampler) Bit() bool {
	var b [1]byte
	s.Read(b[:])
	return b[0]&1 == 1
}

// Uniform draws an unbiased integer in [0, mod), which must be positive.
// Each round reads the minimal big-endian byte count for the modulus, masks
// the top byte down to the modulus bit length and rejects values that still
// overshoot; under two rounds are expected.
func (s *Sampler) Uniform(mod *big.Int) *big.Int {
	bits := mod.BitLen()
	buf := make([]byte, (bits+7)/8)
	mask := byte(0xff >> (uint(len(buf)*8) - uint(bits)))
	v := new(big.Int)
	for {
		s.Read(buf)
		buf[0] &= mask
		if v.SetBytes(buf); v.Cmp(mod) < 0 {
			return v
		}
	}
}
