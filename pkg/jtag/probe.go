package jtag

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/gousb"
)

// Probe describes a CMSIS-DAP capable USB device.
type Probe struct {
	VendorID    uint16
	ProductID   uint16
	Description string
	Serial      string
}

// USBID formats the probe's IDs the way ParseUSBID reads them.
func (p Probe) USBID() string {
	return fmt.Sprintf("%04x:%04x", p.VendorID, p.ProductID)
}

// KnownProbes lists CMSIS-DAP probes recognised by ListProbes.
var KnownProbes = []Probe{
	{VendorID: 0x2e8a, ProductID: 0x000c, Description: "Raspberry Pi Debug Probe"},
	{VendorID: 0x0d28, ProductID: 0x0204, Description: "DAPLink CMSIS-DAP"},
	{VendorID: 0x1366, ProductID: 0x0101, Description: "SEGGER J-Link CMSIS-DAP"},
	{VendorID: 0x03eb, ProductID: 0x2175, Description: "Microchip EDBG"},
}

// ParseUSBID parses "VID:PID" with hex fields, e.g. "2e8a:000c".
func ParseUSBID(s string) (vid, pid uint16, err error) {
	v, p, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, 0, fmt.Errorf("jtag: invalid USB ID %q (expected VID:PID)", s)
	}
	vv, err := strconv.ParseUint(strings.TrimPrefix(v, "0x"), 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("jtag: invalid vendor ID %q: %w", v, err)
	}
	pv, err := strconv.ParseUint(strings.TrimPrefix(p, "0x"), 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("jtag: invalid product ID %q: %w", p, err)
	}
	return uint16(vv), uint16(pv), nil
}

func knownProbe(vid, pid uint16) (Probe, bool) {
	for _, p := range KnownProbes {
		if p.VendorID == vid && p.ProductID == pid {
			return p, true
		}
	}
	return Probe{}, false
}

// ListProbes enumerates connected USB devices that match KnownProbes. Devices
// that cannot be opened are still listed, without a serial number.
func ListProbes(ctx context.Context) ([]Probe, error) {
	usb := gousb.NewContext()
	defer usb.Close()

	var found []Probe
	devs, err := usb.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		if ctx.Err() != nil {
			return false
		}
		p, ok := knownProbe(uint16(desc.Vendor), uint16(desc.Product))
		if ok {
			found = append(found, p)
		}
		return ok
	})
	for _, dev := range devs {
		vid, pid := uint16(dev.Desc.Vendor), uint16(dev.Desc.Product)
		for i := range found {
			if found[i].VendorID == vid && found[i].ProductID == pid && found[i].Serial == "" {
				found[i].Serial, _ = dev.SerialNumber()
				break
			}
		}
		dev.Close()
	}
	if err != nil && !errors.Is(err, gousb.ErrorAccess) {
		return found, fmt.Errorf("jtag: enumerate USB: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return found, err
	}
	return found, nil
}
