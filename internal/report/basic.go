package report

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/user/netsnap/internal/collect"
	"github.com/user/netsnap/internal/model"
)

// BasicReport is the reduced snapshot: connectivity status and
// traffic counters only.
type BasicReport struct {
	Traffic      model.TrafficSection      `json:"traffic"`
	Connectivity model.ConnectivitySection `json:"connectivity"`
}

// BuildBasic collects only the traffic and connectivity sections.
// Like Build, it always returns a report.
func (b *Builder) BuildBasic(ctx context.Context, opts Options) *BasicReport {
	traffic := collect.NewTrafficSampler(b.reader)
	probe := collect.NewConnectivityProbe(opts.ProbeTimeout, opts.LocalhostTarget, opts.InternetTarget)

	rep := &BasicReport{}

	var wg sync.WaitGroup
	wg.Add(2)

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

	return rep
}

// EncodeBasicJSON serializes a basic report.
func EncodeBasicJSON(rep *BasicReport, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(rep, "", "  ")
	}
	return json.Marshal(rep)
}
