package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"
)

// Conn is the datagram transport requests are sent over. Any net.PacketConn
// satisfies it; it must not be connected, since replies are matched on the
// sender address reported by ReadFrom.
type Conn interface {
	WriteTo(p []byte, addr net.Addr) (n int, err error)
	ReadFrom(p []byte) (n int, addr net.Addr, err error)
	SetReadDeadline(t time.Time) error
}

// Listen opens a UDP socket bound to localAddr (":0" for any port).
func Listen(ctx context.Context, localAddr string) (net.PacketConn, error) {
	var lc net.ListenConfig
	conn, err := lc.ListenPacket(ctx, "udp", localAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to create UDP connection: %w", err)
	}
	return conn, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func toUDPAddr(addr net.Addr) *net.UDPAddr {
	switch a := addr.(type) {
	case *net.UDPAddr:
		return a
	case nil:
		return nil
	}
	udp, err := net.ResolveUDPAddr("udp", addr.String())
	if err != nil {
		return nil
	}
	return udp
}

func sameEndpoint(a, b *net.UDPAddr) bool {
	if a == nil || b == nil {
		return false
	}
	return a.IP.Equal(b.IP) && a.Port == b.Port
}
