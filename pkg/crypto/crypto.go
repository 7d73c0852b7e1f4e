package crypto

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
)

// AuthenticatorLength is the length of RADIUS authenticators in bytes
const AuthenticatorLength = 16

// authenticatorOffset is where the authenticator starts in the packet header
const authenticatorOffset = 4

// Authenticator represents a 16-byte RADIUS authenticator
type Authenticator [AuthenticatorLength]byte

var (
	// ErrInvalidAuthenticatorLength indicates an invalid authenticator length
	ErrInvalidAuthenticatorLength = errors.New("invalid authenticator length")
	// ErrPacketTooShort indicates the data cannot hold a RADIUS header
	ErrPacketTooShort = errors.New("packet shorter than header")
)

// GenerateRequestAuthenticator generates a random Request Authenticator
func GenerateRequestAuthenticator() (Authenticator, error) {
	var auth Authenticator
	if _, err := rand.Read(auth[:]); err != nil {
		return auth, fmt.Errorf("failed to generate random authenticator: %w", err)
	}
	return auth, nil
}

// Digest computes MD5(Code + ID + Length + seed + Attributes + Secret) over an
// encoded packet. The authenticator bytes present in data are ignored and
// replaced by seed; data itself is never modified.
//
// For Accounting-Request style packets seed is the zero authenticator; for
// replies it is the Request Authenticator of the original request.
func Digest(data []byte, seed Authenticator, secret []byte) (Authenticator, error) {
	var result Authenticator
	if len(data) < authenticatorOffset+AuthenticatorLength {
		return result, fmt.Errorf("%w: %d bytes", ErrPacketTooShort, len(data))
	}

	hash := md5.New()
	hash.Write(data[:authenticatorOffset])
	hash.Write(seed[:])
	hash.Write(data[authenticatorOffset+AuthenticatorLength:])
	hash.Write(secret)

	copy(result[:], hash.Sum(nil))
	return result, nil
}

// ZeroAuthenticator returns an authenticator filled with zeros
func ZeroAuthenticator() Authenticator {
	return Authenticator{}
}

// String returns a hex representation of the authenticator
func (a Authenticator) String() string {
	return fmt.Sprintf("%x", a[:])
}

// Equal compares two authenticators in constant time
func (a Authenticator) Equal(other Authenticator) bool {
	return subtle.ConstantTimeCompare(a[:], other[:]) == 1
}

// IsZero returns true if the authenticator is all zeros
func (a Authenticator) IsZero() bool {
	return a.Equal(ZeroAuthenticator())
}

// FromBytes creates an authenticator from a byte slice
func FromBytes(data []byte) (Authenticator, error) {
	var auth Authenticator
	if len(data) != AuthenticatorLength {
		return auth, fmt.Errorf("%w: must be exactly %d bytes, got %d", ErrInvalidAuthenticatorLength, AuthenticatorLength, len(data))
	}
	copy(auth[:], data)
	return auth, nil
}
