// Package printer drives the till's ESC/POS thermal printer. The console
// machine usually has one attached; when it does not, the null printer keeps
// receipt submission working without paper copies.
package printer

import (
	"fmt"
	"net"
	"os"
	"time"
)

// Printer sends a raw ESC/POS byte stream to a receipt printer.
type Printer interface {
	Print(data []byte) error
}

// usbPrinter writes to a device file such as /dev/usb/lp0. The device is
// opened per job so an unplugged printer only fails the print, not startup.
type usbPrinter struct {
	path string
}

// NewUSBPrinter creates a printer backed by a USB device file.
func NewUSBPrinter(devicePath string) Printer {
	return &usbPrinter{path: devicePath}
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

// networkPrinter dials a raw TCP printer, e.g. "192.168.1.100:9100". One
// connection per job.
type networkPrinter struct {
	address string
	timeout time.Duration
}

// NewNetworkPrinter creates a printer reached over TCP.
func NewNetworkPrinter(address string) Printer {
	return &networkPrinter{address: address, timeout: 5 * time.Second}
}

func (p *networkPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, p.timeout)
	if err != nil {
		return fmt.Errorf("printer: connect %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.address, err)
	}
	return nil
}

// nullPrinter swallows every job. Used when no printer is configured.
type nullPrinter struct{}

// NewNullPrinter creates a no-op printer for consoles without hardware.
func NewNullPrinter() Printer {
	return &nullPrinter{}
}

func (p *nullPrinter) Print(data []byte) error {
	return nil
}

// FromConfig creates the Printer the configuration names.
//
//	printerType: "usb", "network", or "none"
//	usbPath: device path for USB printers
//	address: host:port for network printers
func FromConfig(printerType, usbPath, address string) (Printer, error) {
	switch printerType {
	case "usb":
		if usbPath == "" {
			return nil, fmt.Errorf("printer: USB path is required for printer type usb")
		}
		return NewUSBPrinter(usbPath), nil
	case "network":
		if address == "" {
			return nil, fmt.Errorf("printer: address is required for printer type network")
		}
		return NewNetworkPrinter(address), nil
	case "none", "":
		return NewNullPrinter(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use usb, network, or none)", printerType)
	}
}
