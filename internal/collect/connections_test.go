package collect

import (
	"context"
	"syscall"
	"testing"

	gnet "github.com/shirou/gopsutil/v3/net"

	"github.com/user/netsnap/internal/model"
	"github.com/user/netsnap/internal/netstate"
)

func testConnectionReader() *netstate.StaticReader {
	return &netstate.StaticReader{
		ConnectionList: []gnet.ConnectionStat{
			{
				Family: syscall.AF_INET,
				Type:   syscall.SOCK_STREAM,
				Laddr:  gnet.Addr{IP: "10.0.0.2", Port: 44210},
				Raddr:  gnet.Addr{IP: "93.184.216.34", Port: 443},
				Status: "ESTABLISHED",
				Pid:    712,
			},
			{
				Family: syscall.AF_INET,
				Type:   syscall.SOCK_STREAM,
				Laddr:  gnet.Addr{IP: "0.0.0.0", Port: 22},
				Status: "LISTEN",
				Pid:    0,
			},
			{
				Family: syscall.AF_INET,
				Type:   syscall.SOCK_DGRAM,
				Laddr:  gnet.Addr{IP: "0.0.0.0", Port: 68},
				Status: "NONE",
				Pid:    501,
			},
			{
				Family: syscall.AF_INET6,
				Type:   syscall.SOCK_STREAM,
				Laddr:  gnet.Addr{IP: "::1", Port: 8080},
				Raddr:  gnet.Addr{IP: "::1", Port: 51044},
				Status: "ESTABLISHED",
				Pid:    713,
			},
		},
	}
}

func TestList_FiltersByKindAndFamily(t *testing.T) {
	l := NewConnectionLister(testConnectionReader())

	conns, err := l.List(context.Background(),
		[]model.SocketType{model.SocketTCP},
		[]model.Family{model.FamilyIPv4})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(conns) != 2 {
		t.Fatalf("got %d connections, want 2", len(conns))
	}
	for _, c := range conns {
		if c.Type != model.SocketTCP || c.Family != model.FamilyIPv4 {
			t.Errorf("connection escaped the filter: %+v", c)
		}
	}
}

func TestList_EmptyFilterYieldsEmptySlice(t *testing.T) {
	l := NewConnectionLister(testConnectionReader())

	conns, err := l.List(context.Background(), nil,
		[]model.Family{model.FamilyIPv4})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if conns == nil {
		t.Fatalf("empty result should be a non-nil slice")
	}
	if len(conns) != 0 {
		t.Fatalf("got %d connections, want 0", len(conns))
	}
}

func TestList_AllKindsAndFamilies(t *testing.T) {
	l := NewConnectionLister(testConnectionReader())

	conns, err := l.List(context.Background(),
		[]model.SocketType{model.SocketTCP, model.SocketUDP},
		[]model.Family{model.FamilyIPv4, model.FamilyIPv6})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(conns) != 4 {
		t.Fatalf("got %d connections, want 4", len(conns))
	}
}

func TestList_EndpointAndPIDShape(t *testing.T) {
	l := NewConnectionLister(testConnectionReader())

	conns, err := l.List(context.Background(),
		[]model.SocketType{model.SocketTCP},
		[]model.Family{model.FamilyIPv4})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	var established, listening *model.Connection
	for i := range conns {
		switch conns[i].State {
		case model.StateEstablished:
			established = &conns[i]
		case model.StateListen:
			listening = &conns[i]
		}
	}
	if established == nil || listening == nil {
		t.Fatalf("expected one established and one listening connection: %+v", conns)
	}

	if established.Local.Address != "10.0.0.2" || established.Local.Port != 44210 {
		t.Errorf("unexpected local endpoint: %+v", established.Local)
	}
	if established.Remote == nil || established.Remote.Address != "93.184.216.34" {
		t.Errorf("unexpected remote endpoint: %+v", established.Remote)
	}
	if established.PID == nil || *established.PID != 712 {
		t.Errorf("unexpected pid: %v", established.PID)
	}

	if listening.Remote != nil {
		t.Errorf("listening socket should have no remote endpoint: %+v", listening.Remote)
	}
	if listening.PID != nil {
		t.Errorf("pid should be nil when the platform reports none, got %v", *listening.PID)
	}
}

func TestList_UDPHasNoState(t *testing.T) {
	l := NewConnectionLister(testConnectionReader())

	conns, err := l.List(context.Background(),
		[]model.SocketType{model.SocketUDP},
		[]model.Family{model.FamilyIPv4})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(conns) != 1 {
		t.Fatalf("got %d connections, want 1", len(conns))
	}
	if conns[0].State != model.StateNone {
		t.Errorf("udp socket state = %q, want none", conns[0].State)
	}
}
