// Package report builds and serializes the network snapshot.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/user/netsnap/internal/collect"
	"github.com/user/netsnap/internal/model"
	"github.com/user/netsnap/internal/netstate"
	"github.com/user/netsnap/internal/util"
)

// Options controls what one snapshot includes.
type Options struct {
	// PerInterface adds a per-interface breakdown to the traffic
	// section in addition to the system-wide total.
	PerInterface bool

	// Kinds and Families filter the connection listing. An empty set
	// yields an empty listing.
	Kinds    []model.SocketType
	Families []model.Family

	// ProbeTimeout bounds each connectivity check.
	ProbeTimeout time.Duration

	// Probe targets; empty strings use the collector defaults.
	LocalhostTarget string
	InternetTarget  string
}

// DefaultOptions returns the "collect everything" options.
func DefaultOptions() Options {
	return Options{
		Kinds:        []model.SocketType{model.SocketTCP, model.SocketUDP},
		Families:     []model.Family{model.FamilyIPv4, model.FamilyIPv6},
		ProbeTimeout: collect.DefaultProbeTimeout,
	}
}

// Builder merges the collectors' outputs into one report.
type Builder struct {
	reader netstate.SystemReader
}

// NewBuilder creates a builder reading from the given system state.
func NewBuilder(reader netstate.SystemReader) *Builder {
	return &Builder{reader: reader}
}

// Build invokes the four collectors and merges their results. The
// collectors run concurrently and the merge waits for all of them; a
// failure in one degrades its own section and never blocks or
// corrupts another's. Build always returns a report.
func (b *Builder) Build(ctx context.Context, opts Options) *model.Report {
	interfaces := collect.NewInterfaceCollector(b.reader)
	connections := collect.NewConnectionLister(b.reader)
	traffic := collect.NewTrafficSampler(b.reader)
	probe := collect.NewConnectivityProbe(opts.ProbeTimeout, opts.LocalhostTarget, opts.InternetTarget)

	rep := &model.Report{}

	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		rep.Interfaces = buildInterfaceSection(ctx, interfaces)
	}()

	go func() {
		defer wg.Done()
		rep.Addresses = buildAddressSection(ctx, interfaces)
	}()

	go func() {
		defer wg.Done()
		rep.Connections = buildConnectionSection(ctx, connections, opts)
	}()

	go func() {
		defer wg.Done()
		rep.Traffic = buildTrafficSection(ctx, traffic, opts.PerInterface)
	}()

	go func() {
		defer wg.Done()
		rep.Connectivity = model.ConnectivitySection{
			Available:          true,
			LocalhostReachable: probe.CheckLocalhost(ctx),
			InternetReachable:  probe.CheckInternet(ctx),
		}
	}()

	wg.Wait()

	joinAddresses(rep)

	return rep
}

func buildInterfaceSection(ctx context.Context, c *collect.InterfaceCollector) model.InterfaceSection {
	stats, warnings, err := c.Stats(ctx)
	if err != nil {
		util.Warn("interface stats unavailable: %v", err)
		return model.InterfaceSection{Items: map[string]model.InterfaceStats{}}
	}
	return model.InterfaceSection{Available: true, Warnings: warnings, Items: stats}
}

func buildAddressSection(ctx context.Context, c *collect.InterfaceCollector) model.AddressSection {
	addrs, err := c.Addresses(ctx)
	if err != nil {
		util.Warn("interface addresses unavailable: %v", err)
		return model.AddressSection{Items: map[string][]model.InterfaceAddress{}}
	}
	return model.AddressSection{Available: true, Items: addrs}
}

func buildConnectionSection(ctx context.Context, l *collect.ConnectionLister, opts Options) model.ConnectionSection {
	conns, err := l.List(ctx, opts.Kinds, opts.Families)
	if err != nil {
		util.Warn("connection listing unavailable: %v", err)
		return model.ConnectionSection{Items: []model.Connection{}}
	}
	return model.ConnectionSection{Available: true, Items: conns}
}

func buildTrafficSection(ctx context.Context, s *collect.TrafficSampler, perInterface bool) model.TrafficSection {
	section := model.TrafficSection{}

	total, err := s.Total(ctx)
	if err != nil {
		util.Warn("traffic counters unavailable: %v", err)
		return section
	}
	section.Available = true
	section.Total = total

	if perInterface {
		byName, err := s.PerInterface(ctx)
		if err != nil {
			util.Warn("per-interface counters unavailable: %v", err)
		} else {
			section.PerInterface = byName
		}
	}

	return section
}

// joinAddresses enforces the report invariant: every interface name
// referenced by the address section must exist in the interface
// section. The two sections come from separate reads of an inherently
// racy table, so a stale reference is dropped and logged, never an
// error. The check is skipped when the interface section itself is
// unavailable, since an empty stats map says nothing then.
func joinAddresses(rep *model.Report) {
	if !rep.Interfaces.Available || !rep.Addresses.Available {
		return
	}

	for name := range rep.Addresses.Items {
		if _, ok := rep.Interfaces.Items[name]; !ok {
			delete(rep.Addresses.Items, name)
			warning := fmt.Sprintf("dropped addresses for %s: interface vanished between reads", name)
			rep.Addresses.Warnings = append(rep.Addresses.Warnings, warning)
			util.Warn("%s", warning)
		}
	}
}

// EncodeJSON serializes a report. Output is deterministic: the five
// top-level keys follow the struct field order and map keys are
// sorted, so successive runs diff cleanly.
func EncodeJSON(rep *model.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(rep, "", "  ")
	}
	return json.Marshal(rep)
}
