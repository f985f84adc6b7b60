// Package collect reads OS network state through a netstate reader
// and reshapes it into the report model. Each collector degrades to
// partial data at its own boundary instead of failing the snapshot.
package collect

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/user/netsnap/internal/model"
	"github.com/user/netsnap/internal/netstate"
	"github.com/user/netsnap/internal/util"
)

// InterfaceCollector reads per-interface statistics and addresses.
type InterfaceCollector struct {
	reader netstate.SystemReader
}

// NewInterfaceCollector creates an interface collector.
func NewInterfaceCollector(reader netstate.SystemReader) *InterfaceCollector {
	return &InterfaceCollector{reader: reader}
}

// Stats returns statistics for every interface visible to the OS,
// including down ones. An interface whose extended stats (speed and
// duplex) cannot be read keeps a partial record and contributes a
// warning; the failure never aborts the collection.
func (c *InterfaceCollector) Stats(ctx context.Context) (map[string]model.InterfaceStats, []string, error) {
	list, err := c.reader.Interfaces(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read interface table: %w", err)
	}

	stats := make(map[string]model.InterfaceStats, len(list))
	var warnings []string

	for _, iface := range list {
		entry := model.InterfaceStats{
			Name:      iface.Name,
			IsUp:      hasFlag(iface.Flags, "up"),
			Duplex:    model.DuplexUnknown,
			MTU:       iface.MTU,
			Flags:     iface.Flags,
			Available: true,
		}

		speed, duplex, err := c.reader.InterfaceDetail(iface.Name)
		if err != nil {
			entry.Available = false
			warnings = append(warnings,
				fmt.Sprintf("extended stats unavailable for %s: %v", iface.Name, err))
			util.Warn("interface %s: extended stats unavailable: %v", iface.Name, err)
		} else {
			entry.SpeedMbps = speed
			entry.Duplex = model.ParseDuplex(duplex)
		}

		stats[iface.Name] = entry
	}

	return stats, warnings, nil
}

// Addresses returns the addresses assigned to each interface, in the
// order the OS reports them. A link-layer entry precedes the IP
// entries when the interface has a hardware address.
func (c *InterfaceCollector) Addresses(ctx context.Context) (map[string][]model.InterfaceAddress, error) {
	list, err := c.reader.Interfaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read interface addresses: %w", err)
	}

	addrs := make(map[string][]model.InterfaceAddress, len(list))

	for _, iface := range list {
		var entries []model.InterfaceAddress

		if iface.HardwareAddr != "" {
			entries = append(entries, model.InterfaceAddress{
				Family:  model.FamilyLink,
				Address: iface.HardwareAddr,
			})
		}

		for _, a := range iface.Addrs {
			entries = append(entries, classifyAddress(a.Addr))
		}

		addrs[iface.Name] = entries
	}

	return addrs, nil
}

// classifyAddress turns an OS-reported address (usually CIDR notation)
// into a typed entry with derived netmask and, for IPv4, broadcast.
func classifyAddress(raw string) model.InterfaceAddress {
	entry := model.InterfaceAddress{Family: model.FamilyUnknown, Address: raw}

	ip, ipnet, err := net.ParseCIDR(raw)
	if err != nil {
		// Some platforms report bare addresses without a prefix.
		if ip = net.ParseIP(raw); ip == nil {
			return entry
		}
		entry.Family = familyOf(ip)
		entry.Address = ip.String()
		return entry
	}

	entry.Family = familyOf(ip)
	entry.Address = ip.String()
	entry.Netmask = net.IP(ipnet.Mask).String()

	if v4 := ip.To4(); v4 != nil && len(ipnet.Mask) == net.IPv4len {
		entry.Broadcast = broadcastOf(v4, ipnet.Mask).String()
	}

	return entry
}

func familyOf(ip net.IP) model.Family {
	if ip.To4() != nil {
		return model.FamilyIPv4
	}
	return model.FamilyIPv6
}

func broadcastOf(ip net.IP, mask net.IPMask) net.IP {
	b := make(net.IP, len(ip))
	for i := range ip {
		b[i] = ip[i] | ^mask[i]
	}
	return b
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if strings.EqualFold(f, want) {
			return true
		}
	}
	return false
}
