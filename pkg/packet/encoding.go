package packet

import (
	"encoding/binary"
	"fmt"
	"net"
)

// Decode parses binary data into a new Message per RFC 2865 Section 3
func Decode(data []byte, opts ...Option) (*Message, error) {
	m := NewReply(opts...)
	if err := m.Unmarshal(data, nil); err != nil {
		return nil, err
	}
	return m, nil
}

// Unmarshal fills a reply shell with a received datagram sent by from.
//
// The datagram is rejected when it is shorter than the header, longer than
// the message capacity, or when its length field is below the header size or
// above the number of octets received. Octets beyond the length field are
// padding and are dropped (RFC 2865 Section 3). On error the message is left
// unchanged.
func (m *Message) Unmarshal(data []byte, from *net.UDPAddr) error {
	if len(data) < MinPacketLength {
		return fmt.Errorf("%w: %d bytes", ErrPacketTooShort, len(data))
	}

	if len(data) > len(m.buf) {
		return fmt.Errorf("%w: %d bytes, capacity %d", ErrPacketTooLong, len(data), len(m.buf))
	}

	length := int(binary.BigEndian.Uint16(data[offsetLength:]))
	if length > len(data) {
		return fmt.Errorf("%w: header says %d, got %d", ErrLengthMismatch, length, len(data))
	}

	if length < MinPacketLength {
		return fmt.Errorf("%w: invalid length in header: %d", ErrLengthMismatch, length)
	}

	for offset := PacketHeaderLength; offset < length; {
		if offset+AttributeHeaderLength > length {
			return fmt.Errorf("%w: incomplete attribute header at offset %d", ErrMalformedAttribute, offset)
		}

		attrLength := int(data[offset+1])
		if attrLength < AttributeHeaderLength {
			return fmt.Errorf("%w: invalid attribute length %d at offset %d", ErrMalformedAttribute, attrLength, offset)
		}

		if offset+attrLength > length {
			return fmt.Errorf("%w: attribute extends beyond packet: offset %d, length %d, packet length %d",
				ErrMalformedAttribute, offset, attrLength, length)
		}

		offset += attrLength
	}

	copy(m.buf, data[:length])
	m.length = length
	m.signed = false
	m.peer = from

	return nil
}
