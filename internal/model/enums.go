package model

import "strings"

// Duplex is the transmission mode of an interface.
type Duplex string

const (
	DuplexFull    Duplex = "full"
	DuplexHalf    Duplex = "half"
	DuplexUnknown Duplex = "unknown"
)

// ParseDuplex maps an OS-reported duplex string to the closed enum.
// Anything not recognized collapses to DuplexUnknown.
func ParseDuplex(s string) Duplex {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full":
		return DuplexFull
	case "half":
		return DuplexHalf
	default:
		return DuplexUnknown
	}
}

// Family is the address family of an address or socket.
type Family string

const (
	FamilyIPv4    Family = "ipv4"
	FamilyIPv6    Family = "ipv6"
	FamilyLink    Family = "link"
	FamilyUnknown Family = "unknown"
)

// ParseFamily maps a family name ("ipv4", "ipv6", "link") to the enum.
func ParseFamily(s string) Family {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ipv4", "inet", "inet4":
		return FamilyIPv4
	case "ipv6", "inet6":
		return FamilyIPv6
	case "link", "mac", "packet":
		return FamilyLink
	default:
		return FamilyUnknown
	}
}

// SocketType is the transport protocol of a socket.
type SocketType string

const (
	SocketTCP     SocketType = "tcp"
	SocketUDP     SocketType = "udp"
	SocketUnknown SocketType = "unknown"
)

// ParseSocketType maps a protocol name to the enum.
func ParseSocketType(s string) SocketType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tcp", "stream":
		return SocketTCP
	case "udp", "dgram", "datagram":
		return SocketUDP
	default:
		return SocketUnknown
	}
}

// ConnState is a TCP socket lifecycle stage. UDP sockets carry
// ConnStateNone, which serializes as an absent field.
type ConnState string

const (
	StateEstablished ConnState = "ESTABLISHED"
	StateSynSent     ConnState = "SYN_SENT"
	StateSynRecv     ConnState = "SYN_RECV"
	StateFinWait1    ConnState = "FIN_WAIT1"
	StateFinWait2    ConnState = "FIN_WAIT2"
	StateTimeWait    ConnState = "TIME_WAIT"
	StateClose       ConnState = "CLOSE"
	StateCloseWait   ConnState = "CLOSE_WAIT"
	StateLastAck     ConnState = "LAST_ACK"
	StateListen      ConnState = "LISTEN"
	StateClosing     ConnState = "CLOSING"
	StateUnknown     ConnState = "UNKNOWN"
	StateNone        ConnState = ""
)

var knownStates = map[string]ConnState{
	"ESTABLISHED": StateEstablished,
	"SYN_SENT":    StateSynSent,
	"SYN_RECV":    StateSynRecv,
	"FIN_WAIT1":   StateFinWait1,
	"FIN_WAIT2":   StateFinWait2,
	"TIME_WAIT":   StateTimeWait,
	"CLOSE":       StateClose,
	"CLOSE_WAIT":  StateCloseWait,
	"LAST_ACK":    StateLastAck,
	"LISTEN":      StateListen,
	"CLOSING":     StateClosing,
}

// ParseConnState maps an OS-reported TCP state to the closed enum.
// The empty string and "NONE" (gopsutil's marker for UDP sockets) map
// to StateNone; unrecognized values map to StateUnknown.
func ParseConnState(s string) ConnState {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if upper == "" || upper == "NONE" {
		return StateNone
	}
	if state, ok := knownStates[upper]; ok {
		return state
	}
	return StateUnknown
}
