package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/vitalvas/radclient/pkg/log"
	"github.com/vitalvas/radclient/pkg/packet"
)

const (
	DefaultRetries = 3
	DefaultTimeout = 5 * time.Second
	DefaultPort    = 1645
)

var (
	ErrSendFailed            = errors.New("failed to send request")
	ErrReceiveFailed         = errors.New("failed to receive reply")
	ErrNoReply               = errors.New("no reply from server")
	ErrCancelled             = errors.New("request cancelled")
	ErrAuthenticatorMismatch = errors.New("reply authenticator mismatch")
)

// Client sends requests and waits for the matching reply. It holds only
// configuration and can be shared between goroutines, each using its own
// Conn and messages.
type Client struct {
	retries    int
	timeout    time.Duration
	port       int
	bufferSize int
	logger     log.Logger
	metrics    *Metrics
}

type Option func(*Client)

// WithRetries sets how many times a request is sent before giving up. Values below 1 are ignored.
func WithRetries(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.retries = n
		}
	}
}

// WithTimeout sets how long each attempt waits for a reply.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithPort sets the server port used by SendWaitReply.
func WithPort(port int) Option {
	return func(c *Client) {
		if port > 0 && port <= 65535 {
			c.port = port
		}
	}
}

func WithLogger(logger log.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithReceiveBufferSize sets the minimum read buffer size. The buffer is
// always at least one byte larger than the reply capacity so oversized
// datagrams are detected.
func WithReceiveBufferSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		retries: DefaultRetries,
		timeout: DefaultTimeout,
		port:    DefaultPort,
		logger:  log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Retries() int           { return c.retries }
func (c *Client) Timeout() time.Duration { return c.timeout }
func (c *Client) Port() int              { return c.port }

type callConfig struct {
	retries int
	timeout time.Duration
}

// CallOption overrides client settings for a single request.
type CallOption func(*callConfig)

func WithCallRetries(n int) CallOption {
	return func(cc *callConfig) {
		if n > 0 {
			cc.retries = n
		}
	}
}

func WithCallTimeout(d time.Duration) CallOption {
	return func(cc *callConfig) {
		if d > 0 {
			cc.timeout = d
		}
	}
}

// SendWaitReply sends req to server on the client port and fills reply
// with the first datagram carrying the same identifier from that server.
func (c *Client) SendWaitReply(ctx context.Context, conn Conn, req *packet.Message, server net.IP, reply *packet.Message, opts ...CallOption) error {
	return c.SendWaitReplyTo(ctx, conn, req, &net.UDPAddr{IP: server, Port: c.port}, reply, opts...)
}

// SendWaitReplyTo is SendWaitReply with an explicit destination port.
//
// Each attempt sends the request and blocks until a matching reply arrives
// or the attempt deadline passes. Undecodable and non-matching datagrams are
// dropped without consuming an attempt. The call blocks for at most
// retries times timeout.
func (c *Client) SendWaitReplyTo(ctx context.Context, conn Conn, req *packet.Message, addr *net.UDPAddr, reply *packet.Message, opts ...CallOption) error {
	cc := callConfig{retries: c.retries, timeout: c.timeout}
	for _, opt := range opts {
		opt(&cc)
	}

	if err := ctx.Err(); err != nil {
		c.metrics.cancelled()
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	req.SetPeer(addr)
	data := req.Bytes()
	code := req.Code()

	logger := c.logger.WithFields(log.Fields{
		"code":       code.String(),
		"identifier": req.Identifier(),
		"server":     addr.String(),
	})

	// Unblocks a pending read once ctx is done.
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetReadDeadline(time.Now())
	})
	defer stop()

	size := reply.Cap() + 1
	if c.bufferSize > size {
		size = c.bufferSize
	}
	buf := make([]byte, size)

	for attempt := 1; attempt <= cc.retries; attempt++ {
		if _, err := conn.WriteTo(data, addr); err != nil {
			c.metrics.sendFailed()
			logger.Warnf("send failed: %v", err)
			return fmt.Errorf("%w: %w", ErrSendFailed, err)
		}
		c.metrics.sent(code, attempt)
		logger.Debugf("sent %d bytes (attempt %d/%d)", len(data), attempt, cc.retries)

		matched, err := c.await(ctx, conn, req, reply, buf, time.Now().Add(cc.timeout), logger)
		if err != nil {
			return err
		}
		if matched {
			c.metrics.matched(reply.Code())
			logger.Debugf("received %s", reply)
			return nil
		}

		c.metrics.timedOut(code)
		logger.Debugf("no reply within %s (attempt %d/%d)", cc.timeout, attempt, cc.retries)
	}

	c.metrics.noReply(code)
	return fmt.Errorf("%w after %d attempts", ErrNoReply, cc.retries)
}

// await reads datagrams until one matches req or the deadline passes.
func (c *Client) await(ctx context.Context, conn Conn, req, reply *packet.Message, buf []byte, deadline time.Time, logger log.Logger) (bool, error) {
	if err := conn.SetReadDeadline(deadline); err != nil {
		return false, fmt.Errorf("%w: failed to set read deadline: %w", ErrReceiveFailed, err)
	}

	// Checked after arming the deadline, so a cancellation racing with it
	// is either seen here or resets the deadline afterwards.
	if err := ctx.Err(); err != nil {
		c.metrics.cancelled()
		return false, fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	for {
		n, from, err := conn.ReadFrom(buf)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				c.metrics.cancelled()
				return false, fmt.Errorf("%w: %w", ErrCancelled, ctxErr)
			}
			if isTimeout(err) {
				return false, nil
			}
			return false, fmt.Errorf("%w: %w", ErrReceiveFailed, err)
		}

		if err := reply.Unmarshal(buf[:n], toUDPAddr(from)); err != nil {
			c.metrics.discarded()
			logger.Debugf("discarded %d bytes from %v: %v", n, from, err)
			continue
		}

		if reply.Identifier() != req.Identifier() || !sameEndpoint(reply.Peer(), req.Peer()) {
			c.metrics.nonMatching()
			logger.Debugf("ignored reply id=%d from %v", reply.Identifier(), from)
			continue
		}

		return true, nil
	}
}

// Exchange signs req, sends it to addr and verifies the reply authenticator.
// req must not have been signed yet.
func (c *Client) Exchange(ctx context.Context, conn Conn, req *packet.Message, addr *net.UDPAddr, secret []byte, opts ...CallOption) (*packet.Message, error) {
	if err := req.Sign(secret, nil); err != nil {
		return nil, fmt.Errorf("failed to sign request: %w", err)
	}

	reply := packet.NewReply(packet.WithMaxLength(req.Cap()))
	if err := c.SendWaitReplyTo(ctx, conn, req, addr, reply, opts...); err != nil {
		return nil, err
	}

	result, err := reply.Verify(secret, req)
	if err != nil {
		return nil, fmt.Errorf("failed to verify reply: %w", err)
	}

	switch result {
	case packet.VerifyMismatch:
		c.logger.Warnf("reply %s from %s failed authenticator check", reply, addr)
		return nil, ErrAuthenticatorMismatch
	case packet.VerifyUnverifiable:
		c.logger.Debugf("reply %s from %s carries no verifiable authenticator", reply, addr)
	}

	return reply, nil
}
