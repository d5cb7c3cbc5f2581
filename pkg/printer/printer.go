package printer

import (
	"fmt"
	"net"
	"os"
	"time"
)

// Printer sends rendered ESC/POS bytes to a receipt device. Every transport
// opens a fresh connection per job; thermal printers drop half-open sockets
// and stale device handles quickly, so nothing is held between jobs.
type Printer interface {
	Print(data []byte) error
	Close() error
	IsConnected() bool
}

// Fallbacks when the config carries no timeouts.
const (
	defaultDialTimeout  = 5 * time.Second
	defaultWriteTimeout = 10 * time.Second
)

type usbPrinter struct {
	path string
}

// NewUSBPrinter writes jobs to a line-printer device file such as
// /dev/usb/lp0.
func NewUSBPrinter(path string) Printer {
	return &usbPrinter{path: path}
}

func (p *usbPrinter) Print(data []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: open %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.path, err)
	}
	return nil
}

func (p *usbPrinter) Close() error {
	return nil
}

// IsConnected reports whether the device file exists; the kernel removes it
// when the printer is unplugged.
func (p *usbPrinter) IsConnected() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

type networkPrinter struct {
	address      string
	dialTimeout  time.Duration
	writeTimeout time.Duration
}

// NewNetworkPrinter dials a raw-socket printer per job, the JetDirect
// port-9100 convention. Non-positive timeouts fall back to the package
// defaults.
func NewNetworkPrinter(address string, dialTimeout, writeTimeout time.Duration) Printer {
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	return &networkPrinter{
		address:      address,
		dialTimeout:  dialTimeout,
		writeTimeout: writeTimeout,
	}
}

func (p *networkPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, p.dialTimeout)
	if err != nil {
		return fmt.Errorf("printer: connect %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(p.writeTimeout))
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) Close() error {
	return nil
}

func (p *networkPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, p.dialTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

type nullPrinter struct{}

// NewNullPrinter discards every job, for terminals without hardware.
func NewNullPrinter() Printer {
	return &nullPrinter{}
}

func (p *nullPrinter) Print([]byte) error {
	return nil
}

func (p *nullPrinter) Close() error {
	return nil
}

func (p *nullPrinter) IsConnected() bool {
	return false
}

// NewPrinterFromConfig selects the transport: "usb" needs a device path,
// "network" needs a host:port address, "none" or empty yields the null
// printer. The timeouts apply to the network transport only.
func NewPrinterFromConfig(printerType, usbPath, address string, dialTimeout, writeTimeout time.Duration) (Printer, error) {
	switch printerType {
	case "usb":
		if usbPath == "" {
			return nil, fmt.Errorf("printer: usb transport needs a device path")
		}
		return NewUSBPrinter(usbPath), nil
	case "network":
		if address == "" {
			return nil, fmt.Errorf("printer: network transport needs an address")
		}
		return NewNetworkPrinter(address, dialTimeout, writeTimeout), nil
	case "none", "":
		return NewNullPrinter(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use usb, network, or none)", printerType)
	}
}
