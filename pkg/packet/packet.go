package packet

import (
	"encoding/binary"
	"fmt"
	"net"

	"github.com/vitalvas/radclient/pkg/crypto"
)

// Message is a RADIUS packet held in its wire form. The header and the
// attributes live in a single fixed-capacity buffer; length is the number of
// valid octets and doubles as the attribute write cursor.
//
// A Message is either a request built with NewRequest (or NewReplyTo) or a
// reply shell built with NewReply and filled by Unmarshal.
type Message struct {
	buf    []byte
	length int
	signed bool
	peer   *net.UDPAddr
}

// Option configures a Message at construction time.
type Option func(*options)

type options struct {
	maxLength int
	ids       *IdentifierSource
}

// WithMaxLength sets the buffer capacity of the message. Values outside
// [MinPacketLength, MaxPacketLength] are clamped.
func WithMaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

// WithIdentifierSource makes NewRequest draw its identifier from src instead of DefaultIdentifiers.
func WithIdentifierSource(src *IdentifierSource) Option {
	return func(o *options) {
		o.ids = src
	}
}

func buildOptions(opts []Option) options {
	o := options{
		maxLength: DefaultMaxPacketLength,
		ids:       DefaultIdentifiers,
	}
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case o.maxLength < MinPacketLength:
		o.maxLength = MinPacketLength
	case o.maxLength > MaxPacketLength:
		o.maxLength = MaxPacketLength
	}
	return o
}

func newMessage(o options) *Message {
	return &Message{
		buf:    make([]byte, o.maxLength),
		length: PacketHeaderLength,
	}
}

// NewRequest creates a message with the given code and the next identifier
func NewRequest(code Code, opts ...Option) *Message {
	o := buildOptions(opts)
	m := newMessage(o)
	m.buf[offsetCode] = byte(code)
	m.buf[offsetIdentifier] = o.ids.Next()
	return m
}

// NewReplyTo creates a message answering req: same identifier and peer, the given code
func NewReplyTo(req *Message, code Code, opts ...Option) *Message {
	m := newMessage(buildOptions(opts))
	m.buf[offsetCode] = byte(code)
	m.buf[offsetIdentifier] = req.Identifier()
	m.peer = req.peer
	return m
}

// NewReply creates an empty reply shell to be filled by Unmarshal
func NewReply(opts ...Option) *Message {
	return newMessage(buildOptions(opts))
}

// Code returns the packet code
func (m *Message) Code() Code {
	return Code(m.buf[offsetCode])
}

// Identifier returns the packet identifier
func (m *Message) Identifier() uint8 {
	return m.buf[offsetIdentifier]
}

// Authenticator returns the authenticator currently in the header
func (m *Message) Authenticator() crypto.Authenticator {
	var auth crypto.Authenticator
	copy(auth[:], m.buf[offsetAuthenticator:offsetAuthenticator+AuthenticatorLength])
	return auth
}

// SetAuthenticator overwrites the authenticator in the header
func (m *Message) SetAuthenticator(auth crypto.Authenticator) {
	copy(m.buf[offsetAuthenticator:], auth[:])
}

// Len returns the number of octets of header and attributes
func (m *Message) Len() int {
	return m.length
}

// Cap returns the maximum packet size the message can hold
func (m *Message) Cap() int {
	return len(m.buf)
}

// Peer returns the remote endpoint: the destination of a sent request or the sender of a received reply
func (m *Message) Peer() *net.UDPAddr {
	return m.peer
}

// SetPeer records the remote endpoint of the message
func (m *Message) SetPeer(addr *net.UDPAddr) {
	m.peer = addr
}

func (m *Message) putLength() {
	binary.BigEndian.PutUint16(m.buf[offsetLength:], uint16(m.length))
}

// Bytes returns the wire encoding of the message with the length field filled in
func (m *Message) Bytes() []byte {
	m.putLength()
	data := make([]byte, m.length)
	copy(data, m.buf[:m.length])
	return data
}

// String returns a string representation of the message
func (m *Message) String() string {
	return fmt.Sprintf("Code=%s(%d), ID=%d, Length=%d",
		m.Code().String(), m.Code(), m.Identifier(), m.length)
}
