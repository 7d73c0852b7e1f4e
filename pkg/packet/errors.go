package packet

import "errors"

var (
	// ErrCapacityExceeded is returned when an attribute does not fit in the packet buffer
	ErrCapacityExceeded = errors.New("attribute exceeds packet capacity")
	// ErrAttributeTooLong is returned when an attribute value is longer than 253 octets
	ErrAttributeTooLong = errors.New("attribute value too long")
	// ErrEmptyPassword is returned when a zero-length User-Password is added
	ErrEmptyPassword = errors.New("empty User-Password")
	// ErrAttributeNotFound is returned when no matching attribute exists
	ErrAttributeNotFound = errors.New("attribute not found")
	// ErrInvalidIntegerLength is returned when an integer attribute is not 4 octets
	ErrInvalidIntegerLength = errors.New("invalid integer length")
	// ErrInvalidAddress is returned when an address attribute is not an IPv4 address
	ErrInvalidAddress = errors.New("invalid IPv4 address")

	// ErrPacketTooShort is returned when received data is shorter than the header
	ErrPacketTooShort = errors.New("packet too short")
	// ErrPacketTooLong is returned when received data exceeds the packet capacity
	ErrPacketTooLong = errors.New("packet too long")
	// ErrLengthMismatch is returned when the header length field is inconsistent with the data
	ErrLengthMismatch = errors.New("packet length mismatch")
	// ErrMalformedAttribute is returned when an attribute overruns the packet
	ErrMalformedAttribute = errors.New("malformed attribute")

	// ErrOriginalRequired is returned when a reply is signed or verified without its request
	ErrOriginalRequired = errors.New("original request required")
	// ErrAlreadySigned is returned when Sign is called twice on the same message
	ErrAlreadySigned = errors.New("message already signed")
)
