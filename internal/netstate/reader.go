// Package netstate wraps ambient OS network state reads behind an
// explicit reader so collectors can run against fixtures in tests
// instead of touching the real system.
package netstate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	gnet "github.com/shirou/gopsutil/v3/net"
)

// SystemReader reads whole-system network state. All methods are
// point-in-time reads with no caching.
type SystemReader interface {
	// Interfaces returns the OS interface table, including down ones.
	Interfaces(ctx context.Context) ([]gnet.InterfaceStat, error)

	// IOCounters returns cumulative traffic counters, either one
	// system-wide aggregate or one entry per interface.
	IOCounters(ctx context.Context, perInterface bool) ([]gnet.IOCountersStat, error)

	// Connections enumerates active sockets of the given kind
	// ("inet", "tcp", "udp", ...).
	Connections(ctx context.Context, kind string) ([]gnet.ConnectionStat, error)

	// InterfaceDetail returns link speed in Mbps and duplex mode for
	// one interface. Platforms or drivers that do not expose these
	// return an error; callers degrade to a partial record.
	InterfaceDetail(name string) (speedMbps int, duplex string, err error)
}

// OSReader is the gopsutil-backed SystemReader.
type OSReader struct {
	// sysfsRoot is the base of the kernel's per-interface attribute
	// tree, normally /sys/class/net. Overridable for tests.
	sysfsRoot string
}

// NewOSReader returns a reader backed by the live OS.
func NewOSReader() *OSReader {
	return &OSReader{sysfsRoot: "/sys/class/net"}
}

// NewOSReaderAt returns a reader with a custom sysfs root.
func NewOSReaderAt(sysfsRoot string) *OSReader {
	return &OSReader{sysfsRoot: sysfsRoot}
}

// Interfaces returns the OS interface table.
func (r *OSReader) Interfaces(ctx context.Context) ([]gnet.InterfaceStat, error) {
	return gnet.InterfacesWithContext(ctx)
}

// IOCounters returns cumulative traffic counters.
func (r *OSReader) IOCounters(ctx context.Context, perInterface bool) ([]gnet.IOCountersStat, error) {
	return gnet.IOCountersWithContext(ctx, perInterface)
}

// Connections enumerates active sockets.
func (r *OSReader) Connections(ctx context.Context, kind string) ([]gnet.ConnectionStat, error) {
	return gnet.ConnectionsWithContext(ctx, kind)
}

// InterfaceDetail reads speed and duplex from sysfs. Only Linux
// exposes this tree; elsewhere the reads fail and the interface keeps
// an unknown duplex and zero speed.
func (r *OSReader) InterfaceDetail(name string) (int, string, error) {
	base := filepath.Join(r.sysfsRoot, name)

	speedRaw, err := os.ReadFile(filepath.Join(base, "speed"))
	if err != nil {
		return 0, "", fmt.Errorf("read speed for %s: %w", name, err)
	}
	duplexRaw, err := os.ReadFile(filepath.Join(base, "duplex"))
	if err != nil {
		return 0, "", fmt.Errorf("read duplex for %s: %w", name, err)
	}

	speed, err := strconv.Atoi(strings.TrimSpace(string(speedRaw)))
	if err != nil || speed < 0 {
		// The kernel reports -1 when the link is down.
		speed = 0
	}

	return speed, strings.TrimSpace(string(duplexRaw)), nil
}
