package netstate

import (
	"context"
	"fmt"

	gnet "github.com/shirou/gopsutil/v3/net"
)

// StaticReader is a SystemReader serving fixed fixtures. It backs
// collector and handler tests that must not read real OS state.
type StaticReader struct {
	InterfaceList  []gnet.InterfaceStat
	TotalCounters  []gnet.IOCountersStat
	NICCounters    []gnet.IOCountersStat
	ConnectionList []gnet.ConnectionStat

	// Details maps interface name to fixed speed/duplex. Names listed
	// in FailDetail return an error instead.
	Details    map[string]Detail
	FailDetail map[string]bool

	// Errors to force whole-call failures per method.
	InterfacesErr  error
	IOCountersErr  error
	ConnectionsErr error
}

// Detail is a fixed speed/duplex pair for one interface.
type Detail struct {
	SpeedMbps int
	Duplex    string
}

// Interfaces returns the fixture interface table.
func (s *StaticReader) Interfaces(ctx context.Context) ([]gnet.InterfaceStat, error) {
	if s.InterfacesErr != nil {
		return nil, s.InterfacesErr
	}
	return s.InterfaceList, nil
}

// IOCounters returns the fixture counters.
func (s *StaticReader) IOCounters(ctx context.Context, perInterface bool) ([]gnet.IOCountersStat, error) {
	if s.IOCountersErr != nil {
		return nil, s.IOCountersErr
	}
	if perInterface {
		return s.NICCounters, nil
	}
	return s.TotalCounters, nil
}

// Connections returns the fixture socket list. Kind filtering is left
// to the collector under test.
func (s *StaticReader) Connections(ctx context.Context, kind string) ([]gnet.ConnectionStat, error) {
	if s.ConnectionsErr != nil {
		return nil, s.ConnectionsErr
	}
	return s.ConnectionList, nil
}

// InterfaceDetail returns the fixture detail for name.
func (s *StaticReader) InterfaceDetail(name string) (int, string, error) {
	if s.FailDetail[name] {
		return 0, "", fmt.Errorf("stats unavailable for %s", name)
	}
	d, ok := s.Details[name]
	if !ok {
		return 0, "", fmt.Errorf("no detail fixture for %s", name)
	}
	return d.SpeedMbps, d.Duplex, nil
}
