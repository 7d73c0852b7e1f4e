package crypto

import (
	"crypto/md5"
	"errors"
	"fmt"
)

// PasswordBlockSize is the User-Password obfuscation block size (RFC 2865 Section 5.2)
const PasswordBlockSize = 16

// ErrInvalidPasswordLength is returned when the data is empty or not a multiple of PasswordBlockSize
var ErrInvalidPasswordLength = errors.New("password length must be a non-zero multiple of 16")

// PadPassword returns a copy of password padded with zero octets to the next
// multiple of PasswordBlockSize.
func PadPassword(password []byte) []byte {
	n := len(password)
	if rem := n % PasswordBlockSize; rem != 0 {
		n += PasswordBlockSize - rem
	}
	padded := make([]byte, n)
	copy(padded, password)
	return padded
}

// ObfuscatePassword hides a padded User-Password value in place per RFC 2865 Section 5.2:
//
//	b1 = MD5(S + RA)       c(1) = p1 xor b1
//	b2 = MD5(S + c(1))     c(2) = p2 xor b2
//	...
//	bi = MD5(S + c(i-1))   c(i) = pi xor bi
//
// seed is the Request Authenticator of the packet carrying the attribute.
func ObfuscatePassword(data, secret []byte, seed Authenticator) error {
	return applyKeystream(data, secret, seed, false)
}

// RevealPassword reverses ObfuscatePassword in place. The keystream of each
// block is derived from the previous ciphertext block, so it is captured
// before the XOR overwrites it.
func RevealPassword(data, secret []byte, seed Authenticator) error {
	return applyKeystream(data, secret, seed, true)
}

func applyKeystream(data, secret []byte, seed Authenticator, decrypt bool) error {
	if len(data) == 0 || len(data)%PasswordBlockSize != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPasswordLength, len(data))
	}

	var (
		last   = seed
		digest = make([]byte, 0, md5.Size)
		hash   = md5.New()
	)

	for i := 0; i < len(data); i += PasswordBlockSize {
		hash.Reset()
		hash.Write(secret)
		hash.Write(last[:])
		digest = hash.Sum(digest[:0])

		block := data[i : i+PasswordBlockSize]
		if decrypt {
			copy(last[:], block)
		}
		for j := range block {
			block[j] ^= digest[j]
		}
		if !decrypt {
			copy(last[:], block)
		}
	}

	return nil
}
