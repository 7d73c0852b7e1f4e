package packet

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/vitalvas/radclient/pkg/crypto"
)

// Attribute is a decoded attribute record
type Attribute struct {
	Type  AttributeType
	Value []byte
}

// AddAttr appends a type-length-value record after the last attribute.
// User-Password values are zero-padded to a multiple of 16 octets here so
// that Sign can obfuscate them in place.
func (m *Message) AddAttr(t AttributeType, value []byte) error {
	if t == AttrUserPassword {
		if len(value) == 0 {
			return ErrEmptyPassword
		}
		value = crypto.PadPassword(value)
	}

	if len(value) > MaxAttributeValueLength {
		return fmt.Errorf("%w: %s has %d octets", ErrAttributeTooLong, t, len(value))
	}

	size := AttributeHeaderLength + len(value)
	if m.length+size > len(m.buf) {
		return fmt.Errorf("%w: %s needs %d octets, %d free", ErrCapacityExceeded, t, size, len(m.buf)-m.length)
	}

	m.buf[m.length] = byte(t)
	m.buf[m.length+1] = byte(size)
	copy(m.buf[m.length+AttributeHeaderLength:], value)
	m.length += size

	return nil
}

// AddString appends a text attribute. The value ends at the first NUL octet, if any.
func (m *Message) AddString(t AttributeType, value string) error {
	if i := bytes.IndexByte([]byte(value), 0); i >= 0 {
		value = value[:i]
	}
	return m.AddAttr(t, []byte(value))
}

// AddInteger appends a 32-bit integer attribute in network byte order
func (m *Message) AddInteger(t AttributeType, value uint32) error {
	var data [4]byte
	binary.BigEndian.PutUint32(data[:], value)
	return m.AddAttr(t, data[:])
}

// next returns the record at off as (type, value, next offset). ok is false
// at the end of the attributes or on a record that overruns them.
func (m *Message) next(off int) (AttributeType, []byte, int, bool) {
	if off+AttributeHeaderLength > m.length {
		return 0, nil, off, false
	}
	size := int(m.buf[off+1])
	if size < AttributeHeaderLength || off+size > m.length {
		return 0, nil, off, false
	}
	return AttributeType(m.buf[off]), m.buf[off+AttributeHeaderLength : off+size], off + size, true
}

// find returns the in-buffer value of the skip-th attribute of type t
func (m *Message) find(t AttributeType, skip int) ([]byte, bool) {
	for off := PacketHeaderLength; ; {
		typ, value, next, ok := m.next(off)
		if !ok {
			return nil, false
		}
		if typ == t {
			if skip == 0 {
				return value, true
			}
			skip--
		}
		off = next
	}
}

// Attr returns a copy of the value of the attribute of type t, skipping the
// first skip matches: skip 0 is the first occurrence, skip 2 the third.
//
// Each call is a linear scan of the attributes. Use Attributes to walk every
// record instead of calling Attr with increasing skip values.
func (m *Message) Attr(t AttributeType, skip int) ([]byte, error) {
	value, ok := m.find(t, skip)
	if !ok {
		return nil, fmt.Errorf("%w: %s (skip %d)", ErrAttributeNotFound, t, skip)
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Integer returns the skip-th attribute of type t as a 32-bit integer
func (m *Message) Integer(t AttributeType, skip int) (uint32, error) {
	value, ok := m.find(t, skip)
	if !ok {
		return 0, fmt.Errorf("%w: %s (skip %d)", ErrAttributeNotFound, t, skip)
	}
	if len(value) != 4 {
		return 0, fmt.Errorf("%w: %s has %d octets", ErrInvalidIntegerLength, t, len(value))
	}
	return binary.BigEndian.Uint32(value), nil
}

// StringAttr returns the skip-th attribute of type t as text
func (m *Message) StringAttr(t AttributeType, skip int) (string, error) {
	value, ok := m.find(t, skip)
	if !ok {
		return "", fmt.Errorf("%w: %s (skip %d)", ErrAttributeNotFound, t, skip)
	}
	return string(value), nil
}

// Attributes returns every attribute in wire order
func (m *Message) Attributes() []Attribute {
	var attrs []Attribute
	for off := PacketHeaderLength; ; {
		typ, value, next, ok := m.next(off)
		if !ok {
			return attrs
		}
		v := make([]byte, len(value))
		copy(v, value)
		attrs = append(attrs, Attribute{Type: typ, Value: v})
		off = next
	}
}
