package packet

import (
	"fmt"
	"net"
	"time"
)

// AddIPAddr appends an IPv4 address attribute such as NAS-IP-Address
func (m *Message) AddIPAddr(t AttributeType, ip net.IP) error {
	ipv4 := ip.To4()
	if ipv4 == nil {
		return fmt.Errorf("%w: %s is not an IPv4 address", ErrInvalidAddress, ip)
	}
	return m.AddAttr(t, ipv4)
}

// IPAddr returns the skip-th attribute of type t as an IPv4 address
func (m *Message) IPAddr(t AttributeType, skip int) (net.IP, error) {
	value, ok := m.find(t, skip)
	if !ok {
		return nil, fmt.Errorf("%w: %s (skip %d)", ErrAttributeNotFound, t, skip)
	}
	if len(value) != net.IPv4len {
		return nil, fmt.Errorf("%w: %s has %d octets", ErrInvalidAddress, t, len(value))
	}
	return net.IPv4(value[0], value[1], value[2], value[3]), nil
}

// AddTime appends a timestamp attribute (seconds since the Unix epoch), e.g. Event-Timestamp
func (m *Message) AddTime(t AttributeType, ts time.Time) error {
	return m.AddInteger(t, uint32(ts.Unix()))
}

// Time returns the skip-th attribute of type t as a timestamp
func (m *Message) Time(t AttributeType, skip int) (time.Time, error) {
	seconds, err := m.Integer(t, skip)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(seconds), 0), nil
}

