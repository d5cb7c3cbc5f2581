package printer_test

import (
	"net"
	"testing"
	"time"

	"github.com/supthawee/farmgate-api/pkg/printer"
)

func TestPrinterFromConfigSelectsTransport(t *testing.T) {
	for _, tc := range []struct {
		printerType string
		usbPath     string
		address     string
		wantErr     bool
	}{
		{printerType: "usb", usbPath: "/dev/usb/lp0"},
		{printerType: "usb", wantErr: true},
		{printerType: "network", address: "127.0.0.1:9100"},
		{printerType: "network", wantErr: true},
		{printerType: "none"},
		{printerType: ""},
		{printerType: "carrier-pigeon", wantErr: true},
	} {
		p, err := printer.NewPrinterFromConfig(tc.printerType, tc.usbPath, tc.address, 0, 0)
		if tc.wantErr {
			if err == nil {
				t.Errorf("type %q: expected an error", tc.printerType)
			}
			continue
		}
		if err != nil || p == nil {
			t.Errorf("type %q: %v", tc.printerType, err)
		}
	}
}

func TestNullPrinterDiscards(t *testing.T) {
	p := printer.NewNullPrinter()
	if err := p.Print([]byte{0x1B, '@'}); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if p.IsConnected() {
		t.Error("null printer reports connected")
	}
}

func TestNetworkPrinterSendsJob(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	// IsConnected dials and hangs up without sending, so keep accepting
	// until a connection carries data.
	received := make(chan []byte, 1)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			buf := make([]byte, 64)
			n, _ := conn.Read(buf)
			conn.Close()
			if n > 0 {
				received <- buf[:n]
				return
			}
		}
	}()

	p := printer.NewNetworkPrinter(ln.Addr().String(), time.Second, time.Second)
	if !p.IsConnected() {
		t.Error("listener up but IsConnected is false")
	}
	if err := p.Print([]byte("receipt")); err != nil {
		t.Fatalf("Print: %v", err)
	}
	select {
	case got := <-received:
		if string(got) != "receipt" {
			t.Errorf("received %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("job never arrived")
	}
}
