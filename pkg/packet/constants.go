package packet

import "github.com/vitalvas/radclient/pkg/crypto"

// RADIUS packet structure constants per RFC 2865 Section 3
const (
	// PacketHeaderLength is the length of the RADIUS packet header (Code + ID + Length + Authenticator)
	PacketHeaderLength = 20
	// MaxPacketLength is the maximum allowed RADIUS packet length per RFC 2865 Section 3
	MaxPacketLength = 4096
	// DefaultMaxPacketLength caps packets built or accepted by this library
	DefaultMaxPacketLength = 1000
	// MinPacketLength is the minimum allowed RADIUS packet length (header only)
	MinPacketLength = PacketHeaderLength
	// AuthenticatorLength is the length of the authenticator field
	AuthenticatorLength = crypto.AuthenticatorLength
	// AttributeHeaderLength is the length of attribute header (Type + Length)
	AttributeHeaderLength = 2
	// MaxAttributeValueLength is the maximum value length for a standard attribute (255 - 2 for header)
	MaxAttributeValueLength = 253
)

// Header field offsets
const (
	offsetCode          = 0
	offsetIdentifier    = 1
	offsetLength        = 2
	offsetAuthenticator = 4
)
