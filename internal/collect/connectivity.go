package collect

import (
	"context"
	"net"
	"time"
)

// DefaultProbeTimeout bounds each reachability check so a dead
// network cannot stall the whole report.
const DefaultProbeTimeout = 3 * time.Second

// DefaultLocalhostTarget is the loopback address resolved by the
// localhost check.
const DefaultLocalhostTarget = "127.0.0.1"

// DefaultInternetTarget is the well-known host resolved by the
// internet check.
const DefaultInternetTarget = "www.google.com"

// Resolver resolves a host name. *net.Resolver satisfies it; tests
// substitute a stub.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// ConnectivityProbe performs point-in-time reachability checks. Each
// check is a single bounded resolution attempt; any failure, timeout
// included, reads as unreachable and is never surfaced as an error.
type ConnectivityProbe struct {
	resolver        Resolver
	timeout         time.Duration
	localhostTarget string
	internetTarget  string
}

// NewConnectivityProbe creates a probe with the given timeout and
// targets. Empty targets fall back to the defaults; the timeout is
// taken as-is so a zero timeout deterministically fails both checks.
func NewConnectivityProbe(timeout time.Duration, localhostTarget, internetTarget string) *ConnectivityProbe {
	if localhostTarget == "" {
		localhostTarget = DefaultLocalhostTarget
	}
	if internetTarget == "" {
		internetTarget = DefaultInternetTarget
	}
	return &ConnectivityProbe{
		resolver:        net.DefaultResolver,
		timeout:         timeout,
		localhostTarget: localhostTarget,
		internetTarget:  internetTarget,
	}
}

// WithResolver substitutes the resolver, for tests.
func (p *ConnectivityProbe) WithResolver(r Resolver) *ConnectivityProbe {
	p.resolver = r
	return p
}

// CheckLocalhost reports whether the loopback target resolves within
// the probe timeout.
func (p *ConnectivityProbe) CheckLocalhost(ctx context.Context) bool {
	return p.check(ctx, p.localhostTarget)
}

// CheckInternet reports whether the external target resolves within
// the probe timeout. A timeout below the round-trip time forces a
// deterministic false.
func (p *ConnectivityProbe) CheckInternet(ctx context.Context) bool {
	return p.check(ctx, p.internetTarget)
}

func (p *ConnectivityProbe) check(ctx context.Context, target string) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	_, err := p.resolver.LookupHost(ctx, target)
	return err == nil
}
