package collect

import (
	"context"
	"fmt"
	"syscall"

	gnet "github.com/shirou/gopsutil/v3/net"

	"github.com/user/netsnap/internal/model"
	"github.com/user/netsnap/internal/netstate"
)

// ConnectionLister enumerates active sockets.
type ConnectionLister struct {
	reader netstate.SystemReader
}

// NewConnectionLister creates a connection lister.
func NewConnectionLister(reader netstate.SystemReader) *ConnectionLister {
	return &ConnectionLister{reader: reader}
}

// List returns a live snapshot of the sockets matching the requested
// kind and family sets. An empty kind set or family set yields an
// empty result. Sockets without an established peer report no remote
// endpoint, and sockets the OS refuses to attribute report a nil PID.
func (l *ConnectionLister) List(ctx context.Context, kinds []model.SocketType, families []model.Family) ([]model.Connection, error) {
	conns := []model.Connection{}
	if len(kinds) == 0 || len(families) == 0 {
		return conns, nil
	}

	wantKind := make(map[model.SocketType]bool, len(kinds))
	for _, k := range kinds {
		wantKind[k] = true
	}
	wantFamily := make(map[model.Family]bool, len(families))
	for _, f := range families {
		wantFamily[f] = true
	}

	raw, err := l.reader.Connections(ctx, "inet")
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}

	for _, c := range raw {
		conn := convertConnection(c)
		if !wantKind[conn.Type] || !wantFamily[conn.Family] {
			continue
		}
		conns = append(conns, conn)
	}

	return conns, nil
}

func convertConnection(c gnet.ConnectionStat) model.Connection {
	conn := model.Connection{
		Family: rawFamily(c.Family),
		Type:   rawSocketType(c.Type),
		Local:  model.Endpoint{Address: c.Laddr.IP, Port: c.Laddr.Port},
	}

	// LISTEN and unconnected UDP sockets carry an empty peer; report
	// it as absent rather than a zero placeholder.
	if c.Raddr.IP != "" {
		conn.Remote = &model.Endpoint{Address: c.Raddr.IP, Port: c.Raddr.Port}
	}

	if conn.Type == model.SocketTCP {
		conn.State = model.ParseConnState(c.Status)
	}

	// PID 0 means the OS denied process attribution.
	if c.Pid != 0 {
		pid := c.Pid
		conn.PID = &pid
	}

	return conn
}

func rawFamily(family uint32) model.Family {
	switch family {
	case syscall.AF_INET:
		return model.FamilyIPv4
	case syscall.AF_INET6:
		return model.FamilyIPv6
	default:
		return model.FamilyUnknown
	}
}

func rawSocketType(sockType uint32) model.SocketType {
	switch sockType {
	case syscall.SOCK_STREAM:
		return model.SocketTCP
	case syscall.SOCK_DGRAM:
		return model.SocketUDP
	default:
		return model.SocketUnknown
	}
}
