package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code     Code
		expected string
	}{
		{CodeAccessRequest, "Access-Request"},
		{CodeAccessAccept, "Access-Accept"},
		{CodeAccessReject, "Access-Reject"},
		{CodeAccountingRequest, "Accounting-Request"},
		{CodeAccountingResponse, "Accounting-Response"},
		{CodeAccessChallenge, "Access-Challenge"},
		{CodeStatusServer, "Status-Server"},
		{CodeStatusClient, "Status-Client"},
		{CodeAscendAccessNewPin, "Ascend-Access-New-Pin"},
		{CodeDisconnectRequest, "Disconnect-Request"},
		{CodeDisconnectACK, "Disconnect-ACK"},
		{CodeDisconnectNAK, "Disconnect-NAK"},
		{CodeCoARequest, "CoA-Request"},
		{CodeCoAACK, "CoA-ACK"},
		{CodeCoANAK, "CoA-NAK"},
		{CodeIPAddressRelease, "IP-Address-Release"},
		{Code(255), "Unknown(255)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.code.String())
		})
	}
}

func TestCodeIsValid(t *testing.T) {
	validCodes := []Code{
		CodeAccessRequest, CodeAccessAccept, CodeAccessReject,
		CodeAccountingRequest, CodeAccountingResponse, CodeAccountingStatus,
		CodeAccessChallenge, CodeStatusServer, CodeStatusClient,
		CodeNASRebootRequest, CodeAscendAccessEventResponse,
		CodeDisconnectRequest, CodeDisconnectACK, CodeDisconnectNAK,
		CodeCoARequest, CodeCoAACK, CodeCoANAK,
		CodeIPAddressAllocate,
	}

	for _, code := range validCodes {
		t.Run(code.String(), func(t *testing.T) {
			assert.True(t, code.IsValid())
		})
	}

	invalidCodes := []Code{0, 14, 20, 28, 35, 39, 46, 52, 255}
	for _, code := range invalidCodes {
		t.Run("invalid", func(t *testing.T) {
			assert.False(t, code.IsValid())
		})
	}
}

func TestAuthPolicyFor(t *testing.T) {
	tests := []struct {
		code     Code
		expected AuthPolicy
	}{
		{CodeAccountingRequest, AuthZero},
		{CodeDisconnectRequest, AuthZero},
		{CodeCoARequest, AuthZero},
		{CodeAccessAccept, AuthReply},
		{CodeAccessReject, AuthReply},
		{CodeAccessChallenge, AuthReply},
		{CodeDisconnectACK, AuthReply},
		{CodeDisconnectNAK, AuthReply},
		{CodeCoAACK, AuthReply},
		{CodeCoANAK, AuthReply},
		{CodeAccessRequest, AuthRandom},
		{CodeStatusServer, AuthRandom},
		{CodeAccountingResponse, AuthRandom},
		{Code(200), AuthRandom},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, AuthPolicyFor(tt.code))
		})
	}
}

func TestCodeExpectedResponseCode(t *testing.T) {
	assert.Equal(t, []Code{CodeAccessAccept, CodeAccessReject, CodeAccessChallenge}, CodeAccessRequest.ExpectedResponseCode())
	assert.Equal(t, []Code{CodeAccountingResponse}, CodeAccountingRequest.ExpectedResponseCode())
	assert.Equal(t, []Code{CodeCoAACK, CodeCoANAK}, CodeCoARequest.ExpectedResponseCode())
	assert.Nil(t, CodeAccessAccept.ExpectedResponseCode())
}
