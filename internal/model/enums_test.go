package model

import "testing"

func TestParseDuplex(t *testing.T) {
	cases := []struct {
		in   string
		want Duplex
	}{
		{"full", DuplexFull},
		{"Half", DuplexHalf},
		{" full\n", DuplexFull},
		{"simplex", DuplexUnknown},
		{"", DuplexUnknown},
	}
	for _, c := range cases {
		if got := ParseDuplex(c.in); got != c.want {
			t.Errorf("ParseDuplex(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseFamily(t *testing.T) {
	cases := []struct {
		in   string
		want Family
	}{
		{"ipv4", FamilyIPv4},
		{"inet", FamilyIPv4},
		{"IPv6", FamilyIPv6},
		{"inet6", FamilyIPv6},
		{"link", FamilyLink},
		{"packet", FamilyLink},
		{"appletalk", FamilyUnknown},
	}
	for _, c := range cases {
		if got := ParseFamily(c.in); got != c.want {
			t.Errorf("ParseFamily(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseSocketType(t *testing.T) {
	cases := []struct {
		in   string
		want SocketType
	}{
		{"tcp", SocketTCP},
		{"stream", SocketTCP},
		{"UDP", SocketUDP},
		{"dgram", SocketUDP},
		{"raw", SocketUnknown},
	}
	for _, c := range cases {
		if got := ParseSocketType(c.in); got != c.want {
			t.Errorf("ParseSocketType(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseConnState(t *testing.T) {
	cases := []struct {
		in   string
		want ConnState
	}{
		{"ESTABLISHED", StateEstablished},
		{"listen", StateListen},
		{"TIME_WAIT", StateTimeWait},
		{"", StateNone},
		{"NONE", StateNone},
		{"HALF_OPEN", StateUnknown},
	}
	for _, c := range cases {
		if got := ParseConnState(c.in); got != c.want {
			t.Errorf("ParseConnState(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
