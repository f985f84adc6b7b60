package collect

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mapResolver resolves only the hosts it was seeded with.
type mapResolver struct {
	hosts map[string][]string
}

func (r mapResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	addrs, ok := r.hosts[host]
	if !ok {
		return nil, errors.New("no such host")
	}
	return addrs, nil
}

// stallResolver never answers before the context expires.
type stallResolver struct{}

func (stallResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestCheckLocalhost_Resolves(t *testing.T) {
	p := NewConnectivityProbe(time.Second, "", "").WithResolver(mapResolver{
		hosts: map[string][]string{"127.0.0.1": {"127.0.0.1"}},
	})

	if !p.CheckLocalhost(context.Background()) {
		t.Fatalf("localhost should be reachable")
	}
}

func TestCheckInternet_ResolutionFailure(t *testing.T) {
	p := NewConnectivityProbe(time.Second, "", "").WithResolver(mapResolver{
		hosts: map[string][]string{"127.0.0.1": {"127.0.0.1"}},
	})

	if p.CheckInternet(context.Background()) {
		t.Fatalf("internet should be unreachable when resolution fails")
	}
}

func TestCheck_ZeroTimeoutFails(t *testing.T) {
	p := NewConnectivityProbe(0, "", "").WithResolver(stallResolver{})

	if p.CheckLocalhost(context.Background()) || p.CheckInternet(context.Background()) {
		t.Fatalf("a zero timeout should fail both checks")
	}
}

func TestCheck_CustomTargets(t *testing.T) {
	p := NewConnectivityProbe(time.Second, "loop.test", "edge.test").WithResolver(mapResolver{
		hosts: map[string][]string{"edge.test": {"203.0.113.7"}},
	})

	if p.CheckLocalhost(context.Background()) {
		t.Errorf("custom localhost target should not resolve")
	}
	if !p.CheckInternet(context.Background()) {
		t.Errorf("custom internet target should resolve")
	}
}
