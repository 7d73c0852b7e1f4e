package packet

import "fmt"

// Code represents a RADIUS packet code as defined in RFC 2865
type Code uint8

// RADIUS packet codes as defined in RFC 2865 and related RFCs
const (
	// Access-Request packets (RFC 2865)
	CodeAccessRequest Code = 1
	// Access-Accept packets (RFC 2865)
	CodeAccessAccept Code = 2
	// Access-Reject packets (RFC 2865)
	CodeAccessReject Code = 3
	// Accounting-Request packets (RFC 2866)
	CodeAccountingRequest Code = 4
	// Accounting-Response packets (RFC 2866)
	CodeAccountingResponse Code = 5
	CodeAccountingStatus   Code = 6
	CodePasswordRequest    Code = 7
	CodePasswordAck        Code = 8
	CodePasswordReject     Code = 9
	CodeAccountingMessage  Code = 10
	// Access-Challenge packets (RFC 2865)
	CodeAccessChallenge Code = 11
	// Status-Server packets (RFC 2865)
	CodeStatusServer Code = 12
	// Status-Client packets (RFC 2865)
	CodeStatusClient Code = 13

	CodeResourceFreeRequest             Code = 21
	CodeResourceFreeResponse            Code = 22
	CodeResourceQueryRequest            Code = 23
	CodeResourceQueryResponse           Code = 24
	CodeAlternateResourceReclaimRequest Code = 25
	CodeNASRebootRequest                Code = 26
	CodeNASRebootResponse               Code = 27
	CodeAscendAccessNextCode            Code = 29
	CodeAscendAccessNewPin              Code = 30
	CodeAscendTerminateSession          Code = 31
	CodeAscendPasswordExpired           Code = 32
	CodeAscendAccessEventRequest        Code = 33
	CodeAscendAccessEventResponse       Code = 34

	// Disconnect-Request packets (RFC 3576 - CoA)
	CodeDisconnectRequest Code = 40
	// Disconnect-ACK packets (RFC 3576 - CoA)
	CodeDisconnectACK Code = 41
	// Disconnect-NAK packets (RFC 3576 - CoA)
	CodeDisconnectNAK Code = 42
	// CoA-Request packets (RFC 3576), formerly Change-Filter-Request
	CodeCoARequest Code = 43
	// CoA-ACK packets (RFC 3576), formerly Change-Filter-ACK
	CodeCoAACK Code = 44
	// CoA-NAK packets (RFC 3576), formerly Change-Filter-NAK
	CodeCoANAK Code = 45

	CodeIPAddressAllocate Code = 50
	CodeIPAddressRelease  Code = 51
)

var codeNames = map[Code]string{
	CodeAccessRequest:                   "Access-Request",
	CodeAccessAccept:                    "Access-Accept",
	CodeAccessReject:                    "Access-Reject",
	CodeAccountingRequest:               "Accounting-Request",
	CodeAccountingResponse:              "Accounting-Response",
	CodeAccountingStatus:                "Accounting-Status",
	CodePasswordRequest:                 "Password-Request",
	CodePasswordAck:                     "Password-Ack",
	CodePasswordReject:                  "Password-Reject",
	CodeAccountingMessage:               "Accounting-Message",
	CodeAccessChallenge:                 "Access-Challenge",
	CodeStatusServer:                    "Status-Server",
	CodeStatusClient:                    "Status-Client",
	CodeResourceFreeRequest:             "Resource-Free-Request",
	CodeResourceFreeResponse:            "Resource-Free-Response",
	CodeResourceQueryRequest:            "Resource-Query-Request",
	CodeResourceQueryResponse:           "Resource-Query-Response",
	CodeAlternateResourceReclaimRequest: "Alternate-Resource-Reclaim-Request",
	CodeNASRebootRequest:                "NAS-Reboot-Request",
	CodeNASRebootResponse:               "NAS-Reboot-Response",
	CodeAscendAccessNextCode:            "Ascend-Access-Next-Code",
	CodeAscendAccessNewPin:              "Ascend-Access-New-Pin",
	CodeAscendTerminateSession:          "Ascend-Terminate-Session",
	CodeAscendPasswordExpired:           "Ascend-Password-Expired",
	CodeAscendAccessEventRequest:        "Ascend-Access-Event-Request",
	CodeAscendAccessEventResponse:       "Ascend-Access-Event-Response",
	CodeDisconnectRequest:               "Disconnect-Request",
	CodeDisconnectACK:                   "Disconnect-ACK",
	CodeDisconnectNAK:                   "Disconnect-NAK",
	CodeCoARequest:                      "CoA-Request",
	CodeCoAACK:                          "CoA-ACK",
	CodeCoANAK:                          "CoA-NAK",
	CodeIPAddressAllocate:               "IP-Address-Allocate",
	CodeIPAddressRelease:                "IP-Address-Release",
}

// String returns the string representation of the packet code
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", c)
}

// IsValid checks if the packet code is a known code
func (c Code) IsValid() bool {
	_, ok := codeNames[c]
	return ok
}

// AuthPolicy selects how the authenticator of a packet is produced and checked.
type AuthPolicy int

const (
	// AuthRandom packets carry 16 random octets that a peer cannot verify.
	AuthRandom AuthPolicy = iota
	// AuthZero packets are hashed with a zero authenticator (RFC 2866 Section 3).
	AuthZero
	// AuthReply packets are hashed with the Request Authenticator of the
	// request they answer (RFC 2865 Section 3).
	AuthReply
)

func (p AuthPolicy) String() string {
	switch p {
	case AuthZero:
		return "zero"
	case AuthReply:
		return "reply"
	default:
		return "random"
	}
}

// AuthPolicyFor returns the authenticator rule for a packet code
func AuthPolicyFor(c Code) AuthPolicy {
	switch c {
	case CodeAccountingRequest, CodeDisconnectRequest, CodeCoARequest:
		return AuthZero
	case CodeAccessAccept, CodeAccessReject, CodeAccessChallenge,
		CodeDisconnectACK, CodeDisconnectNAK,
		CodeCoAACK, CodeCoANAK:
		return AuthReply
	default:
		return AuthRandom
	}
}

// ExpectedResponseCode returns the expected response codes for a request
func (c Code) ExpectedResponseCode() []Code {
	switch c {
	case CodeAccessRequest:
		return []Code{CodeAccessAccept, CodeAccessReject, CodeAccessChallenge}
	case CodeAccountingRequest:
		return []Code{CodeAccountingResponse}
	case CodeStatusServer:
		return []Code{CodeStatusClient}
	case CodeDisconnectRequest:
		return []Code{CodeDisconnectACK, CodeDisconnectNAK}
	case CodeCoARequest:
		return []Code{CodeCoAACK, CodeCoANAK}
	default:
		return nil
	}
}
