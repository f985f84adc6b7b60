package collect

import (
	"context"
	"fmt"

	gnet "github.com/shirou/gopsutil/v3/net"

	"github.com/user/netsnap/internal/model"
	"github.com/user/netsnap/internal/netstate"
)

// TrafficSampler reads cumulative OS traffic counters. It reports raw
// counters only; rate calculation is left to the caller.
type TrafficSampler struct {
	reader netstate.SystemReader
}

// NewTrafficSampler creates a traffic sampler.
func NewTrafficSampler(reader netstate.SystemReader) *TrafficSampler {
	return &TrafficSampler{reader: reader}
}

// Total returns the system-wide aggregate counters as a single
// atomic read.
func (s *TrafficSampler) Total(ctx context.Context) (model.TrafficCounters, error) {
	counters, err := s.reader.IOCounters(ctx, false)
	if err != nil {
		return model.TrafficCounters{}, fmt.Errorf("failed to read traffic counters: %w", err)
	}
	if len(counters) == 0 {
		return model.TrafficCounters{}, fmt.Errorf("platform exposes no traffic counters")
	}
	return convertCounters(counters[0]), nil
}

// PerInterface returns counters keyed by interface name.
func (s *TrafficSampler) PerInterface(ctx context.Context) (map[string]model.TrafficCounters, error) {
	counters, err := s.reader.IOCounters(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to read per-interface counters: %w", err)
	}

	byName := make(map[string]model.TrafficCounters, len(counters))
	for _, c := range counters {
		byName[c.Name] = convertCounters(c)
	}
	return byName, nil
}

func convertCounters(c gnet.IOCountersStat) model.TrafficCounters {
	return model.TrafficCounters{
		BytesSent:   c.BytesSent,
		BytesRecv:   c.BytesRecv,
		PacketsSent: c.PacketsSent,
		PacketsRecv: c.PacketsRecv,
		ErrIn:       c.Errin,
		ErrOut:      c.Errout,
		DropIn:      c.Dropin,
		DropOut:     c.Dropout,
	}
}
