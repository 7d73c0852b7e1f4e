package packet

import (
	"fmt"
	"strconv"
	"strings"
)

// AttributeType is the one-octet RADIUS attribute number
type AttributeType uint8

// RFC 2865 / RFC 2866 / RFC 2869 / RFC 3162 and related attributes
const (
	AttrUserName               AttributeType = 1
	AttrUserPassword           AttributeType = 2
	AttrCHAPPassword           AttributeType = 3
	AttrNASIPAddress           AttributeType = 4
	AttrNASPort                AttributeType = 5
	AttrServiceType            AttributeType = 6
	AttrFramedProtocol         AttributeType = 7
	AttrFramedIPAddress        AttributeType = 8
	AttrFramedIPNetmask        AttributeType = 9
	AttrFramedRouting          AttributeType = 10
	AttrFilterID               AttributeType = 11
	AttrFramedMTU              AttributeType = 12
	AttrFramedCompression      AttributeType = 13
	AttrLoginIPHost            AttributeType = 14
	AttrLoginService           AttributeType = 15
	AttrLoginTCPPort           AttributeType = 16
	AttrOldPassword            AttributeType = 17
	AttrReplyMessage           AttributeType = 18
	AttrCallbackNumber         AttributeType = 19
	AttrCallbackID             AttributeType = 20
	AttrAscendPWExpiration     AttributeType = 21
	AttrFramedRoute            AttributeType = 22
	AttrFramedIPXNetwork       AttributeType = 23
	AttrState                  AttributeType = 24
	AttrClass                  AttributeType = 25
	AttrVendorSpecific         AttributeType = 26
	AttrSessionTimeout         AttributeType = 27
	AttrIdleTimeout            AttributeType = 28
	AttrTerminationAction      AttributeType = 29
	AttrCalledStationID        AttributeType = 30
	AttrCallingStationID       AttributeType = 31
	AttrNASIdentifier          AttributeType = 32
	AttrProxyState             AttributeType = 33
	AttrLoginLATService        AttributeType = 34
	AttrLoginLATNode           AttributeType = 35
	AttrLoginLATGroup          AttributeType = 36
	AttrFramedAppleTalkLink    AttributeType = 37
	AttrFramedAppleTalkNetwork AttributeType = 38
	AttrFramedAppleTalkZone    AttributeType = 39
	AttrAcctStatusType         AttributeType = 40
	AttrAcctDelayTime          AttributeType = 41
	AttrAcctInputOctets        AttributeType = 42
	AttrAcctOutputOctets       AttributeType = 43
	AttrAcctSessionID          AttributeType = 44
	AttrAcctAuthentic          AttributeType = 45
	AttrAcctSessionTime        AttributeType = 46
	AttrAcctInputPackets       AttributeType = 47
	AttrAcctOutputPackets      AttributeType = 48
	AttrAcctTerminateCause     AttributeType = 49
	AttrAcctMultiSessionID     AttributeType = 50
	AttrAcctLinkCount          AttributeType = 51
	AttrAcctInputGigawords     AttributeType = 52
	AttrAcctOutputGigawords    AttributeType = 53
	AttrEventTimestamp         AttributeType = 55
	AttrEgressVLANID           AttributeType = 56
	AttrIngressFilters         AttributeType = 57
	AttrEgressVLANName         AttributeType = 58
	AttrUserPriorityTable      AttributeType = 59
	AttrCHAPChallenge          AttributeType = 60
	AttrNASPortType            AttributeType = 61
	AttrPortLimit              AttributeType = 62
	AttrLoginLATPort           AttributeType = 63
	AttrTunnelType             AttributeType = 64
	AttrTunnelMediumType       AttributeType = 65
	AttrTunnelClientEndpoint   AttributeType = 66
	AttrTunnelServerEndpoint   AttributeType = 67
	AttrTunnelID               AttributeType = 68
	AttrTunnelPassword         AttributeType = 69
	AttrARAPPassword           AttributeType = 70
	AttrARAPFeatures           AttributeType = 71
	AttrARAPZoneAccess         AttributeType = 72
	AttrARAPSecurity           AttributeType = 73
	AttrARAPSecurityData       AttributeType = 74
	AttrPasswordRetry          AttributeType = 75
	AttrPrompt                 AttributeType = 76
	AttrConnectInfo            AttributeType = 77
	AttrConfigurationToken     AttributeType = 78
	AttrEAPMessage             AttributeType = 79
	AttrMessageAuthenticator   AttributeType = 80
	AttrTunnelPrivateGroupID   AttributeType = 81
	AttrTunnelAssignmentID     AttributeType = 82
	AttrTunnelPreference       AttributeType = 83
	AttrARAPChallengeResponse  AttributeType = 84
	AttrAcctInterimInterval    AttributeType = 85
	AttrAcctTunnelPacketsLost  AttributeType = 86
	AttrNASPortID              AttributeType = 87
	AttrFramedPool             AttributeType = 88
	AttrChargeableUserIdentity AttributeType = 89
	AttrTunnelClientAuthID     AttributeType = 90
	AttrTunnelServerAuthID     AttributeType = 91
	AttrNASFilterRule          AttributeType = 92
	AttrOriginatingLineInfo    AttributeType = 94
	AttrNASIPv6Address         AttributeType = 95
	AttrFramedInterfaceID      AttributeType = 96
	AttrFramedIPv6Prefix       AttributeType = 97
	AttrLoginIPv6Host          AttributeType = 98
	AttrFramedIPv6Route        AttributeType = 99
	AttrFramedIPv6Pool         AttributeType = 100
	AttrErrorCause             AttributeType = 101
	AttrEAPKeyName             AttributeType = 102
	AttrTimestamp              AttributeType = 103
	AttrDelegatedIPv6Prefix    AttributeType = 123
)

// Acct-Status-Type values (RFC 2866 Section 5.1)
const (
	AcctStatusTypeStart            uint32 = 1
	AcctStatusTypeStop             uint32 = 2
	AcctStatusTypeAlive            uint32 = 3
	AcctStatusTypeModemStart       uint32 = 4
	AcctStatusTypeModemStop        uint32 = 5
	AcctStatusTypeCancel           uint32 = 6
	AcctStatusTypeAccountingOn     uint32 = 7
	AcctStatusTypeAccountingOff    uint32 = 8
	AcctStatusTypeTunnelStart      uint32 = 9
	AcctStatusTypeTunnelStop       uint32 = 10
	AcctStatusTypeTunnelReject     uint32 = 11
	AcctStatusTypeTunnelLinkStart  uint32 = 12
	AcctStatusTypeTunnelLinkStop   uint32 = 13
	AcctStatusTypeTunnelLinkReject uint32 = 14
	AcctStatusTypeFailed           uint32 = 15
)

// Well known vendor numbers. Vendor-Specific attributes are carried as
// opaque octets; these exist for callers building them by hand.
const (
	VendorCisco                 uint32 = 9
	VendorMicrosoft             uint32 = 311
	VendorBreezecom             uint32 = 710
	VendorNortelAptis           uint32 = 2637
	VendorOpenSystemConsultants uint32 = 9048
)

var attributeNames = map[AttributeType]string{
	AttrUserName:               "User-Name",
	AttrUserPassword:           "User-Password",
	AttrCHAPPassword:           "CHAP-Password",
	AttrNASIPAddress:           "NAS-IP-Address",
	AttrNASPort:                "NAS-Port",
	AttrServiceType:            "Service-Type",
	AttrFramedProtocol:         "Framed-Protocol",
	AttrFramedIPAddress:        "Framed-IP-Address",
	AttrFramedIPNetmask:        "Framed-IP-Netmask",
	AttrFramedRouting:          "Framed-Routing",
	AttrFilterID:               "Filter-Id",
	AttrFramedMTU:              "Framed-MTU",
	AttrFramedCompression:      "Framed-Compression",
	AttrLoginIPHost:            "Login-IP-Host",
	AttrLoginService:           "Login-Service",
	AttrLoginTCPPort:           "Login-TCP-Port",
	AttrOldPassword:            "Old-Password",
	AttrReplyMessage:           "Reply-Message",
	AttrCallbackNumber:         "Callback-Number",
	AttrCallbackID:             "Callback-Id",
	AttrAscendPWExpiration:     "Ascend-PW-Expiration",
	AttrFramedRoute:            "Framed-Route",
	AttrFramedIPXNetwork:       "Framed-IPX-Network",
	AttrState:                  "State",
	AttrClass:                  "Class",
	AttrVendorSpecific:         "Vendor-Specific",
	AttrSessionTimeout:         "Session-Timeout",
	AttrIdleTimeout:            "Idle-Timeout",
	AttrTerminationAction:      "Termination-Action",
	AttrCalledStationID:        "Called-Station-Id",
	AttrCallingStationID:       "Calling-Station-Id",
	AttrNASIdentifier:          "NAS-Identifier",
	AttrProxyState:             "Proxy-State",
	AttrLoginLATService:        "Login-LAT-Service",
	AttrLoginLATNode:           "Login-LAT-Node",
	AttrLoginLATGroup:          "Login-LAT-Group",
	AttrFramedAppleTalkLink:    "Framed-AppleTalk-Link",
	AttrFramedAppleTalkNetwork: "Framed-AppleTalk-Network",
	AttrFramedAppleTalkZone:    "Framed-AppleTalk-Zone",
	AttrAcctStatusType:         "Acct-Status-Type",
	AttrAcctDelayTime:          "Acct-Delay-Time",
	AttrAcctInputOctets:        "Acct-Input-Octets",
	AttrAcctOutputOctets:       "Acct-Output-Octets",
	AttrAcctSessionID:          "Acct-Session-Id",
	AttrAcctAuthentic:          "Acct-Authentic",
	AttrAcctSessionTime:        "Acct-Session-Time",
	AttrAcctInputPackets:       "Acct-Input-Packets",
	AttrAcctOutputPackets:      "Acct-Output-Packets",
	AttrAcctTerminateCause:     "Acct-Terminate-Cause",
	AttrAcctMultiSessionID:     "Acct-Multi-Session-Id",
	AttrAcctLinkCount:          "Acct-Link-Count",
	AttrAcctInputGigawords:     "Acct-Input-Gigawords",
	AttrAcctOutputGigawords:    "Acct-Output-Gigawords",
	AttrEventTimestamp:         "Event-Timestamp",
	AttrEgressVLANID:           "Egress-VLANID",
	AttrIngressFilters:         "Ingress-Filters",
	AttrEgressVLANName:         "Egress-VLAN-Name",
	AttrUserPriorityTable:      "User-Priority-Table",
	AttrCHAPChallenge:          "CHAP-Challenge",
	AttrNASPortType:            "NAS-Port-Type",
	AttrPortLimit:              "Port-Limit",
	AttrLoginLATPort:           "Login-LAT-Port",
	AttrTunnelType:             "Tunnel-Type",
	AttrTunnelMediumType:       "Tunnel-Medium-Type",
	AttrTunnelClientEndpoint:   "Tunnel-Client-Endpoint",
	AttrTunnelServerEndpoint:   "Tunnel-Server-Endpoint",
	AttrTunnelID:               "Tunnel-ID",
	AttrTunnelPassword:         "Tunnel-Password",
	AttrARAPPassword:           "ARAP-Password",
	AttrARAPFeatures:           "ARAP-Features",
	AttrARAPZoneAccess:         "ARAP-Zone-Access",
	AttrARAPSecurity:           "ARAP-Security",
	AttrARAPSecurityData:       "ARAP-Security-Data",
	AttrPasswordRetry:          "Password-Retry",
	AttrPrompt:                 "Prompt",
	AttrConnectInfo:            "Connect-Info",
	AttrConfigurationToken:     "Configuration-Token",
	AttrEAPMessage:             "EAP-Message",
	AttrMessageAuthenticator:   "Message-Authenticator",
	AttrTunnelPrivateGroupID:   "Tunnel-Private-Group-ID",
	AttrTunnelAssignmentID:     "Tunnel-Assignment-ID",
	AttrTunnelPreference:       "Tunnel-Preference",
	AttrARAPChallengeResponse:  "ARAP-Challenge-Response",
	AttrAcctInterimInterval:    "Acct-Interim-Interval",
	AttrAcctTunnelPacketsLost:  "Acct-Tunnel-Packets-Lost",
	AttrNASPortID:              "NAS-Port-Id",
	AttrFramedPool:             "Framed-Pool",
	AttrChargeableUserIdentity: "Chargeable-User-Identity",
	AttrTunnelClientAuthID:     "Tunnel-Client-Auth-ID",
	AttrTunnelServerAuthID:     "Tunnel-Server-Auth-ID",
	AttrNASFilterRule:          "NAS-Filter-Rule",
	AttrOriginatingLineInfo:    "Originating-Line-Info",
	AttrNASIPv6Address:         "NAS-IPv6-Address",
	AttrFramedInterfaceID:      "Framed-Interface-Id",
	AttrFramedIPv6Prefix:       "Framed-IPv6-Prefix",
	AttrLoginIPv6Host:          "Login-IPv6-Host",
	AttrFramedIPv6Route:        "Framed-IPv6-Route",
	AttrFramedIPv6Pool:         "Framed-IPv6-Pool",
	AttrErrorCause:             "Error-Cause",
	AttrEAPKeyName:             "EAP-Key-Name",
	AttrTimestamp:              "Timestamp",
	AttrDelegatedIPv6Prefix:    "Delegated-IPv6-Prefix",
}

var attributesByName = func() map[string]AttributeType {
	m := make(map[string]AttributeType, len(attributeNames))
	for t, name := range attributeNames {
		m[name] = t
	}
	return m
}()

// String returns the attribute name, or Attr-N for unknown numbers
func (t AttributeType) String() string {
	if name, ok := attributeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Attr-%d", uint8(t))
}

// AttributeTypeByName looks up an attribute number by its RFC name.
// The Attr-N form returned by String is accepted for any number.
func AttributeTypeByName(name string) (AttributeType, bool) {
	if t, ok := attributesByName[name]; ok {
		return t, true
	}
	if num, ok := strings.CutPrefix(name, "Attr-"); ok {
		n, err := strconv.ParseUint(num, 10, 8)
		if err == nil && n > 0 {
			return AttributeType(n), true
		}
	}
	return 0, false
}
