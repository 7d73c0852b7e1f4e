package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vitalvas/radclient/pkg/packet"
)

// Metrics counts request/reply traffic of a Client. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Requests        *prometheus.CounterVec
	Retransmissions *prometheus.CounterVec
	Replies         *prometheus.CounterVec
	Discarded       prometheus.Counter
	NonMatching     prometheus.Counter
	Timeouts        *prometheus.CounterVec
	NoReply         *prometheus.CounterVec
	SendFailures    prometheus.Counter
	Cancelled       prometheus.Counter
}

// NewMetrics creates the client counters and registers them with reg when it is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "radius_client_requests",
				Help: "Radius client requests sent, including retransmissions",
			},
			[]string{"code"},
		),
		Retransmissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "radius_client_retransmissions",
				Help: "Radius client requests sent again after a timeout",
			},
			[]string{"code"},
		),
		Replies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "radius_client_responses",
				Help: "Radius client matched responses",
			},
			[]string{"code"},
		),
		Discarded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "radius_client_responses_dropped",
				Help: "Radius client datagrams dropped as undecodable",
			},
		),
		NonMatching: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "radius_client_responses_stalled",
				Help: "Radius client responses not matching the outstanding request",
			},
		),
		Timeouts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "radius_client_timeouts",
				Help: "Radius client attempts that timed out",
			},
			[]string{"code"},
		),
		NoReply: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "radius_client_no_reply",
				Help: "Radius client requests abandoned after all retries",
			},
			[]string{"code"},
		),
		SendFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "radius_client_send_failures",
				Help: "Radius client requests the transport failed to send",
			},
		),
		Cancelled: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "radius_client_cancelled",
				Help: "Radius client requests cancelled while waiting",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.Requests,
			m.Retransmissions,
			m.Replies,
			m.Discarded,
			m.NonMatching,
			m.Timeouts,
			m.NoReply,
			m.SendFailures,
			m.Cancelled,
		)
	}

	return m
}

func (m *Metrics) sent(code packet.Code, attempt int) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(code.String()).Inc()
	if attempt > 1 {
		m.Retransmissions.WithLabelValues(code.String()).Inc()
	}
}

func (m *Metrics) matched(code packet.Code) {
	if m == nil {
		return
	}
	m.Replies.WithLabelValues(code.String()).Inc()
}

func (m *Metrics) discarded() {
	if m == nil {
		return
	}
	m.Discarded.Inc()
}

func (m *Metrics) nonMatching() {
	if m == nil {
		return
	}
	m.NonMatching.Inc()
}

func (m *Metrics) timedOut(code packet.Code) {
	if m == nil {
		return
	}
	m.Timeouts.WithLabelValues(code.String()).Inc()
}

func (m *Metrics) noReply(code packet.Code) {
	if m == nil {
		return
	}
	m.NoReply.WithLabelValues(code.String()).Inc()
}

func (m *Metrics) sendFailed() {
	if m == nil {
		return
	}
	m.SendFailures.Inc()
}

func (m *Metrics) cancelled() {
	if m == nil {
		return
	}
	m.Cancelled.Inc()
}
