package jtag

import (
	"fmt"

	"github.com/google/gousb"
)

const defaultPacketSize = 64

// dapTransport carries one CMSIS-DAP command and its response.
type dapTransport interface {
	Transact(cmd []byte) ([]byte, error)
	PacketSize() int
	Close() error
}

// usbTransport talks to a CMSIS-DAP v2 probe over its vendor bulk interface.
type usbTransport struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	cfg  *gousb.Config
	intf *gousb.Interface

	out *gousb.OutEndpoint
	in  *gousb.InEndpoint

	packetSize int
}

func openUSBTransport(vid, pid uint16) (*usbTransport, error) {
	t := &usbTransport{ctx: gousb.NewContext(), packetSize: defaultPacketSize}

	dev, err := t.ctx.OpenDeviceWithVIDPID(gousb.ID(vid), gousb.ID(pid))
	if err != nil {
		t.Close()
		return nil, fmt.Errorf("usb: %w", err)
	}
	if dev == nil {
		t.Close()
		return nil, fmt.Errorf("usb: no device %04x:%04x", vid, pid)
	}
	t.dev = dev
	// Not supported on every platform.
	_ = dev.SetAutoDetach(true)

	if err := t.claim(); err != nil {
		t.Close()
		return nil, err
	}
	return t, nil
}

// claim opens the first vendor-class interface with a bulk endpoint pair,
// falling back to interface 0.
func (t *usbTransport) claim() error {
	num, err := t.dev.ActiveConfigNum()
	if err != nil {
		return fmt.Errorf("usb: active config: %w", err)
	}
	cfg, err := t.dev.Config(num)
	if err != nil {
		return fmt.Errorf("usb: config %d: %w", num, err)
	}
	t.cfg = cfg

	ifNum := 0
	for _, desc := range cfg.Desc.Interfaces {
		if len(desc.AltSettings) > 0 && desc.AltSettings[0].Class == gousb.ClassVendorSpec {
			ifNum = desc.Number
			break
		}
	}
	intf, err := cfg.Interface(ifNum, 0)
	if err != nil {
		return fmt.Errorf("usb: claim interface %d: %w", ifNum, err)
	}
	t.intf = intf

	for _, ep := range intf.Setting.Endpoints {
		if ep.TransferType != gousb.TransferTypeBulk {
			continue
		}
		switch {
		case ep.Direction == gousb.EndpointDirectionOut && t.out == nil:
			if t.out, err = intf.OutEndpoint(ep.Number); err != nil {
				return fmt.Errorf("usb: open OUT endpoint: %w", err)
			}
		case ep.Direction == gousb.EndpointDirectionIn && t.in == nil:
			if t.in, err = intf.InEndpoint(ep.Number); err != nil {
				return fmt.Errorf("usb: open IN endpoint: %w", err)
			}
			t.packetSize = ep.MaxPacketSize
		}
	}
	if t.out == nil || t.in == nil {
		return fmt.Errorf("usb: interface %d has no bulk endpoint pair", ifNum)
	}
	return nil
}

func (t *usbTransport) Transact(cmd []byte) ([]byte, error) {
	if len(cmd) > t.packetSize {
		return nil, fmt.Errorf("usb: command of %d bytes exceeds packet size %d", len(cmd), t.packetSize)
	}
	if _, err := t.out.Write(cmd); err != nil {
		return nil, fmt.Errorf("usb: write: %w", err)
	}
	resp := make([]byte, t.packetSize)
	n, err := t.in.Read(resp)
	if err != nil {
		return nil, fmt.Errorf("usb: read: %w", err)
	}
	return resp[:n], nil
}

func (t *usbTransport) PacketSize() int {
	return t.packetSize
}

func (t *usbTransport) Close() error {
	if t.intf != nil {
		t.intf.Close()
		t.intf = nil
	}
	if t.cfg != nil {
		t.cfg.Close()
		t.cfg = nil
	}
	if t.dev != nil {
		t.dev.Close()
		t.dev = nil
	}
	if t.ctx != nil {
		err := t.ctx.Close()
		t.ctx = nil
		return err
	}
	return nil
}
