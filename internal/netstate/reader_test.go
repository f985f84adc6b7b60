package netstate

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSysfs(t *testing.T, root, iface, speed, duplex string) {
	t.Helper()
	dir := filepath.Join(root, iface)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if speed != "" {
		if err := os.WriteFile(filepath.Join(dir, "speed"), []byte(speed), 0644); err != nil {
			t.Fatalf("write speed: %v", err)
		}
	}
	if duplex != "" {
		if err := os.WriteFile(filepath.Join(dir, "duplex"), []byte(duplex), 0644); err != nil {
			t.Fatalf("write duplex: %v", err)
		}
	}
}

func TestInterfaceDetail_ReadsSysfs(t *testing.T) {
	root := t.TempDir()
	writeSysfs(t, root, "eth0", "1000\n", "full\n")

	r := NewOSReaderAt(root)
	speed, duplex, err := r.InterfaceDetail("eth0")
	if err != nil {
		t.Fatalf("InterfaceDetail: %v", err)
	}
	if speed != 1000 {
		t.Errorf("speed = %d, want 1000", speed)
	}
	if duplex != "full" {
		t.Errorf("duplex = %q, want full", duplex)
	}
}

func TestInterfaceDetail_LinkDownSpeed(t *testing.T) {
	// The kernel reports -1 for a down link
	root := t.TempDir()
	writeSysfs(t, root, "eth0", "-1\n", "unknown\n")

	r := NewOSReaderAt(root)
	speed, _, err := r.InterfaceDetail("eth0")
	if err != nil {
		t.Fatalf("InterfaceDetail: %v", err)
	}
	if speed != 0 {
		t.Errorf("speed = %d, want 0 for a down link", speed)
	}
}

func TestInterfaceDetail_MissingAttributes(t *testing.T) {
	root := t.TempDir()
	writeSysfs(t, root, "wlan0", "", "")

	r := NewOSReaderAt(root)
	if _, _, err := r.InterfaceDetail("wlan0"); err == nil {
		t.Fatalf("expected error for an interface without speed/duplex")
	}
	if _, _, err := r.InterfaceDetail("ghost0"); err == nil {
		t.Fatalf("expected error for a missing interface")
	}
}
