package packet

import (
	"bytes"
	"fmt"

	"github.com/vitalvas/radclient/pkg/crypto"
)

// VerifyResult is the outcome of an authenticator check
type VerifyResult int

const (
	// VerifyMismatch means the authenticator does not match the expected digest
	VerifyMismatch VerifyResult = iota
	// VerifyMatch means the authenticator matches the expected digest
	VerifyMatch
	// VerifyUnverifiable means the packet carries a random authenticator that cannot be checked
	VerifyUnverifiable
)

func (r VerifyResult) String() string {
	switch r {
	case VerifyMatch:
		return "match"
	case VerifyUnverifiable:
		return "unverifiable"
	default:
		return "mismatch"
	}
}

// seed returns the authenticator a packet of this code is hashed with, and
// the rule that applies. The seed is meaningless for AuthRandom.
func (m *Message) seed(original *Message) (crypto.Authenticator, AuthPolicy, error) {
	policy := AuthPolicyFor(m.Code())
	switch policy {
	case AuthZero:
		return crypto.ZeroAuthenticator(), policy, nil
	case AuthReply:
		if original == nil {
			return crypto.Authenticator{}, policy, fmt.Errorf("%w: %s", ErrOriginalRequired, m.Code())
		}
		return original.Authenticator(), policy, nil
	default:
		return crypto.Authenticator{}, policy, nil
	}
}

// Sign obfuscates User-Password attributes and sets the authenticator.
//
// Accounting-Request, Disconnect-Request and CoA-Request are hashed with a
// zero authenticator. Replies (Access-Accept/Reject/Challenge and the
// Disconnect/CoA ACK and NAK codes) are hashed with the authenticator of
// original, which must be the request being answered. Any other code gets a
// random authenticator. Passwords are obfuscated with the authenticator in
// place before hashing, so the digest covers the hidden value.
func (m *Message) Sign(secret []byte, original *Message) error {
	if m.signed {
		return ErrAlreadySigned
	}

	auth, policy, err := m.seed(original)
	if err != nil {
		return err
	}

	if policy == AuthRandom {
		auth, err = crypto.GenerateRequestAuthenticator()
		if err != nil {
			return err
		}
	}
	m.SetAuthenticator(auth)

	for off := PacketHeaderLength; ; {
		typ, value, next, ok := m.next(off)
		if !ok {
			break
		}
		if typ == AttrUserPassword {
			if err := crypto.ObfuscatePassword(value, secret, auth); err != nil {
				return fmt.Errorf("failed to obfuscate %s: %w", typ, err)
			}
		}
		off = next
	}

	if policy != AuthRandom {
		m.putLength()
		digest, err := crypto.Digest(m.buf[:m.length], auth, secret)
		if err != nil {
			return err
		}
		m.SetAuthenticator(digest)
	}

	m.signed = true
	return nil
}

// Verify checks the authenticator of a received message. original is the
// request the message answers and is only consulted for reply codes.
// Messages with random authenticators report VerifyUnverifiable.
func (m *Message) Verify(secret []byte, original *Message) (VerifyResult, error) {
	seed, policy, err := m.seed(original)
	if err != nil {
		return VerifyMismatch, err
	}
	if policy == AuthRandom {
		return VerifyUnverifiable, nil
	}

	m.putLength()
	expected, err := crypto.Digest(m.buf[:m.length], seed, secret)
	if err != nil {
		return VerifyMismatch, err
	}

	if !expected.Equal(m.Authenticator()) {
		return VerifyMismatch, nil
	}
	return VerifyMatch, nil
}

// Password returns the first User-Password in clear text. seed is the
// authenticator the password was hidden with: the random Request
// Authenticator of an Access-Request, or zero for Accounting-Request style
// codes. Trailing NUL padding is removed.
func (m *Message) Password(secret []byte, seed crypto.Authenticator) ([]byte, error) {
	value, err := m.Attr(AttrUserPassword, 0)
	if err != nil {
		return nil, err
	}
	if err := crypto.RevealPassword(value, secret, seed); err != nil {
		return nil, err
	}
	return bytes.TrimRight(value, "\x00"), nil
}
