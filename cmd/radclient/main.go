package main

import (
	"bufio"
	"context"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"
	"unicode"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vitalvas/radclient/pkg/client"
	"github.com/vitalvas/radclient/pkg/config"
	"github.com/vitalvas/radclient/pkg/log"
	"github.com/vitalvas/radclient/pkg/packet"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

var actions = map[string]packet.Code{
	"auth":       packet.CodeAccessRequest,
	"acct":       packet.CodeAccountingRequest,
	"coa":        packet.CodeCoARequest,
	"disconnect": packet.CodeDisconnectRequest,
}

var acctStatusTypes = map[string]uint32{
	"Start":          packet.AcctStatusTypeStart,
	"Stop":           packet.AcctStatusTypeStop,
	"Interim-Update": packet.AcctStatusTypeAlive,
	"Accounting-On":  packet.AcctStatusTypeAccountingOn,
	"Accounting-Off": packet.AcctStatusTypeAccountingOff,
	"Failed":         packet.AcctStatusTypeFailed,
}

type attribute struct {
	typ     packet.AttributeType
	text    string
	number  uint32
	integer bool
	addr    net.IP
}

// parseAttributes reads "Name = value" lines. Unquoted decimal values are
// sent as integers, dotted quads as IPv4 addresses, everything else as text.
func parseAttributes(scanner *bufio.Scanner) ([]attribute, error) {
	var attributes []attribute

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, valueStr, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("invalid attribute format: %q (expected 'Name = value')", line)
		}

		name = strings.TrimSpace(name)
		valueStr = strings.TrimSpace(valueStr)

		typ, ok := packet.AttributeTypeByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown attribute %q", name)
		}

		attr := attribute{typ: typ}
		switch {
		case len(valueStr) >= 2 && strings.HasPrefix(valueStr, `"`) && strings.HasSuffix(valueStr, `"`):
			attr.text = valueStr[1 : len(valueStr)-1]
		case typ == packet.AttrAcctStatusType && acctStatusTypes[valueStr] != 0:
			attr.number, attr.integer = acctStatusTypes[valueStr], true
		default:
			if num, err := strconv.ParseUint(valueStr, 10, 32); err == nil {
				attr.number, attr.integer = uint32(num), true
			} else if ip := net.ParseIP(valueStr); ip != nil && ip.To4() != nil {
				attr.addr = ip
			} else {
				attr.text = valueStr
			}
		}

		attributes = append(attributes, attr)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	return attributes, nil
}

func buildRequest(code packet.Code, attributes []attribute, maxLength int) (*packet.Message, error) {
	req := packet.NewRequest(code, packet.WithMaxLength(maxLength))
	for _, attr := range attributes {
		var err error
		switch {
		case attr.integer:
			err = req.AddInteger(attr.typ, attr.number)
		case attr.addr != nil:
			err = req.AddIPAddr(attr.typ, attr.addr)
		default:
			err = req.AddString(attr.typ, attr.text)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to add %s: %w", attr.typ, err)
		}
	}
	return req, nil
}

func formatValue(value []byte) string {
	printable := len(value) > 0
	for _, b := range value {
		if b > unicode.MaxASCII || !unicode.IsPrint(rune(b)) {
			printable = false
			break
		}
	}

	switch {
	case printable:
		return strconv.Quote(string(value))
	case len(value) == 4:
		return strconv.FormatUint(uint64(binary.BigEndian.Uint32(value)), 10)
	default:
		return "0x" + hex.EncodeToString(value)
	}
}

func accepted(code packet.Code) bool {
	switch code {
	case packet.CodeAccessAccept, packet.CodeAccountingResponse, packet.CodeCoAACK, packet.CodeDisconnectACK:
		return true
	}
	return false
}

func usage(fs *flag.FlagSet, w io.Writer) func() {
	return func() {
		name := fs.Name()
		fmt.Fprintf(w, "Usage: %s -server <host> -secret <secret> [-action <auth|acct|coa|disconnect>] [flags]\n\n", name)
		fmt.Fprintf(w, "Flags:\n")
		fs.SetOutput(w)
		fs.PrintDefaults()
		fmt.Fprintf(w, "\nAttributes are read from stdin, one per line in format:\n")
		fmt.Fprintf(w, "  Attribute-Name = value\n")
		fmt.Fprintf(w, "Quote a value to send digits as text. Settings may also come from\n")
		fmt.Fprintf(w, "the -config file or %s_* environment variables.\n", config.EnvPrefix)
		fmt.Fprintf(w, "\nExamples:\n")
		fmt.Fprintf(w, "  printf 'User-Name = mikem\\nUser-Password = fred\\n' | %s -server 127.0.0.1 -secret testing123\n", name)
		fmt.Fprintf(w, "  printf 'User-Name = mikem\\nAcct-Status-Type = Start\\nAcct-Session-Id = \"0001\"\\n' | %s -server 10.0.0.1 -secret s -action acct\n", name)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("radclient", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = usage(fs, stderr)

	configPath := fs.String("config", "", "YAML configuration file")
	server := fs.String("server", "", "RADIUS server host")
	port := fs.Int("port", client.DefaultPort, "RADIUS server port")
	secret := fs.String("secret", "", "Shared secret")
	action := fs.String("action", "auth", "Request type: auth, acct, coa or disconnect")
	retries := fs.Int("retries", client.DefaultRetries, "Attempts per request")
	timeout := fs.Duration("timeout", client.DefaultTimeout, "Wait per attempt")
	count := fs.Int("count", 1, "Number of times to send the request")
	metricsAddr := fs.String("metrics", "", "Serve Prometheus metrics on this address")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return exitUsage
		}
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Read(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "server":
			cfg.Server = *server
		case "port":
			cfg.Port = *port
		case "secret":
			cfg.Secret = *secret
		case "retries":
			cfg.Retries = *retries
		case "timeout":
			cfg.Timeout = *timeout
		case "metrics":
			cfg.MetricsAddr = *metricsAddr
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		fs.Usage()
		return exitUsage
	}

	code, ok := actions[*action]
	if !ok {
		fmt.Fprintf(stderr, "Error: Invalid action %q (must be auth, acct, coa or disconnect)\n\n", *action)
		fs.Usage()
		return exitUsage
	}

	if *count < 1 {
		fmt.Fprintf(stderr, "Error: -count must be at least 1\n")
		return exitUsage
	}

	logger := cfg.Logger()
	if cfg.LogFile.Filename == "" {
		logger.SetOutput(stderr)
	}

	attributes, err := parseAttributes(bufio.NewScanner(stdin))
	if err != nil {
		logger.Errorf("Failed to parse attributes: %v", err)
		return exitFailed
	}

	if len(attributes) == 0 {
		logger.Errorf("No attributes provided")
		return exitFailed
	}

	addr, err := cfg.ServerAddr()
	if err != nil {
		logger.Errorf("%v", err)
		return exitFailed
	}

	registry := prometheus.NewRegistry()
	metrics := client.NewMetrics(registry)

	if cfg.MetricsAddr != "" {
		stop := serveMetrics(cfg.MetricsAddr, registry, logger)
		defer stop()
	}

	conn, err := client.Listen(ctx, ":0")
	if err != nil {
		logger.Errorf("%v", err)
		return exitFailed
	}
	defer conn.Close()

	cl := client.New(
		client.WithRetries(cfg.Retries),
		client.WithTimeout(cfg.Timeout),
		client.WithPort(cfg.Port),
		client.WithLogger(logger),
		client.WithMetrics(metrics),
	)

	exit := exitOK
	for i := 0; i < *count; i++ {
		req, err := buildRequest(code, attributes, cfg.MaxPacketLength)
		if err != nil {
			logger.Errorf("%v", err)
			return exitFailed
		}

		reply, err := cl.Exchange(ctx, conn, req, addr, []byte(cfg.Secret))
		if err != nil {
			logger.Errorf("Request failed: %v", err)
			if errors.Is(err, client.ErrCancelled) {
				return exitFailed
			}
			exit = exitFailed
			continue
		}

		fmt.Fprintf(stdout, "Received %s Id %d from %s length %d\n", reply.Code(), reply.Identifier(), addr, reply.Len())
		for _, attr := range reply.Attributes() {
			fmt.Fprintf(stdout, "\t%s = %s\n", attr.Type, formatValue(attr.Value))
		}

		if !accepted(reply.Code()) {
			exit = exitFailed
		}
	}

	return exit
}

func serveMetrics(addr string, registry *prometheus.Registry, logger log.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warnf("metrics server: %v", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
