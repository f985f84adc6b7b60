// Package model defines core data structures for netsnap.
package model

// InterfaceStats represents per-interface statistics from the OS
// interface table. Available is false when the extended stats
// (speed/duplex) could not be read and the record is partial.
type InterfaceStats struct {
	Name      string   `json:"name"`
	IsUp      bool     `json:"is_up"`
	Duplex    Duplex   `json:"duplex"`
	SpeedMbps int      `json:"speed_mbps"`
	MTU       int      `json:"mtu"`
	Flags     []string `json:"flags"`
	Available bool     `json:"available"`
}

// InterfaceAddress represents one address assigned to an interface.
// Netmask and broadcast are omitted when the OS does not report them.
type InterfaceAddress struct {
	Family    Family `json:"family"`
	Address   string `json:"address"`
	Netmask   string `json:"netmask,omitempty"`
	Broadcast string `json:"broadcast,omitempty"`
}

// Endpoint is one side of a socket.
type Endpoint struct {
	Address string `json:"address"`
	Port    uint32 `json:"port"`
}

// Connection represents one active socket. Remote is nil for sockets
// without an established peer (e.g. LISTEN). PID is null when the OS
// denies process attribution.
type Connection struct {
	Family Family     `json:"family"`
	Type   SocketType `json:"type"`
	Local  Endpoint   `json:"local"`
	Remote *Endpoint  `json:"remote,omitempty"`
	State  ConnState  `json:"state,omitempty"`
	PID    *int32     `json:"pid"`
}

// TrafficCounters holds raw cumulative OS traffic counters. Values are
// monotonically non-decreasing for the life of the OS counters.
type TrafficCounters struct {
	BytesSent   uint64 `json:"bytes_sent"`
	BytesRecv   uint64 `json:"bytes_recv"`
	PacketsSent uint64 `json:"packets_sent"`
	PacketsRecv uint64 `json:"packets_recv"`
	ErrIn       uint64 `json:"errin"`
	ErrOut      uint64 `json:"errout"`
	DropIn      uint64 `json:"dropin"`
	DropOut     uint64 `json:"dropout"`
}

// InterfaceSection holds interface statistics keyed by interface name.
type InterfaceSection struct {
	Available bool                      `json:"available"`
	Warnings  []string                  `json:"warnings,omitempty"`
	Items     map[string]InterfaceStats `json:"items"`
}

// AddressSection holds interface addresses keyed by interface name.
// Warnings records address entries dropped by the best-effort join
// when their interface vanished between the two interface reads.
type AddressSection struct {
	Available bool                          `json:"available"`
	Warnings  []string                      `json:"warnings,omitempty"`
	Items     map[string][]InterfaceAddress `json:"items"`
}

// ConnectionSection holds the active socket listing.
type ConnectionSection struct {
	Available bool         `json:"available"`
	Items     []Connection `json:"items"`
}

// TrafficSection holds cumulative traffic counters. PerInterface is
// present only when a per-interface sample was requested.
type TrafficSection struct {
	Available    bool                       `json:"available"`
	Total        TrafficCounters            `json:"total"`
	PerInterface map[string]TrafficCounters `json:"per_interface,omitempty"`
}

// ConnectivitySection holds the point-in-time reachability results.
type ConnectivitySection struct {
	Available          bool `json:"available"`
	LocalhostReachable bool `json:"localhost_reachable"`
	InternetReachable  bool `json:"internet_reachable"`
}

// Report is the root snapshot aggregate. Field order fixes the JSON
// key order of the five top-level sections.
type Report struct {
	Interfaces   InterfaceSection    `json:"interfaces"`
	Addresses    AddressSection      `json:"addresses"`
	Connections  ConnectionSection   `json:"connections"`
	Traffic      TrafficSection      `json:"traffic"`
	Connectivity ConnectivitySection `json:"connectivity"`
}
