package printer

import (
	"errors"
	"fmt"

	"github.com/google/gousb"
)

// USB interface class for printers.
// Reference: http://www.usb.org/developers/defined_class
const usbClassPrinter = 0x07

// USBTransport drives a printer attached over USB bulk endpoints.
type USBTransport struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	cfg  *gousb.Config
	intf *gousb.Interface
	out  *gousb.OutEndpoint
	in   *gousb.InEndpoint
}

// OpenUSB opens the device with the given vendor and product IDs and
// claims its printer interface.
func OpenUSB(vendorID, productID gousb.ID) (*USBTransport, error) {
	ctx := gousb.NewContext()

	dev, err := ctx.OpenDeviceWithVIDPID(vendorID, productID)
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("open usb device %s:%s: %w", vendorID, productID, err)
	}
	if dev == nil {
		ctx.Close()
		return nil, fmt.Errorf("usb device %s:%s not found", vendorID, productID)
	}

	return claimPrinterInterface(ctx, dev)
}

// OpenUSBAuto opens the first attached USB device that exposes a
// printer-class interface.
func OpenUSBAuto() (*USBTransport, error) {
	ctx := gousb.NewContext()

	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return hasPrinterInterface(desc)
	})
	if len(devs) == 0 {
		ctx.Close()
		if err != nil {
			return nil, fmt.Errorf("scan usb devices: %w", err)
		}
		return nil, errors.New("no usb printer found")
	}
	for _, d := range devs[1:] {
		d.Close()
	}

	return claimPrinterInterface(ctx, devs[0])
}

func hasPrinterInterface(desc *gousb.DeviceDesc) bool {
	for _, cfg := range desc.Configs {
		for _, intf := range cfg.Interfaces {
			for _, alt := range intf.AltSettings {
				if alt.Class == usbClassPrinter {
					return true
				}
			}
		}
	}
	return false
}

func claimPrinterInterface(ctx *gousb.Context, dev *gousb.Device) (*USBTransport, error) {
	dev.SetAutoDetach(true)

	cfgNum, err := dev.ActiveConfigNum()
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("get active config: %w", err)
	}

	cfg, err := dev.Config(cfgNum)
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("claim config %d: %w", cfgNum, err)
	}

	ifaceNum := -1
	for _, intf := range cfg.Desc.Interfaces {
		for _, alt := range intf.AltSettings {
			if alt.Class == usbClassPrinter {
				ifaceNum = intf.Number
				break
			}
		}
		if ifaceNum >= 0 {
			break
		}
	}
	if ifaceNum < 0 {
		cfg.Close()
		dev.Close()
		ctx.Close()
		return nil, errors.New("no printer-class interface on device")
	}

	intf, err := cfg.Interface(ifaceNum, 0)
	if err != nil {
		cfg.Close()
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("claim interface %d: %w", ifaceNum, err)
	}

	t := &USBTransport{ctx: ctx, dev: dev, cfg: cfg, intf: intf}
	for _, ep := range intf.Setting.Endpoints {
		if ep.Direction == gousb.EndpointDirectionOut && t.out == nil {
			if e, err := intf.OutEndpoint(ep.Number); err == nil {
				t.out = e
			}
		}
		if ep.Direction == gousb.EndpointDirectionIn && t.in == nil {
			if e, err := intf.InEndpoint(ep.Number); err == nil {
				t.in = e
			}
		}
	}
	if t.out == nil {
		t.Close()
		return nil, errors.New("no out endpoint on printer interface")
	}

	return t, nil
}

// Write delivers all of data to the out endpoint, retrying short writes.
func (u *USBTransport) Write(data []byte) error {
	for len(data) > 0 {
		n, err := u.out.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Read reads from the in endpoint. Not every printer exposes one.
func (u *USBTransport) Read(buf []byte) (int, error) {
	if u.in == nil {
		return 0, errors.New("usb transport has no in endpoint")
	}
	return u.in.Read(buf)
}

func (u *USBTransport) Close() error {
	if u.intf != nil {
		u.intf.Close()
		u.intf = nil
	}
	if u.cfg != nil {
		u.cfg.Close()
		u.cfg = nil
	}
	if u.dev != nil {
		u.dev.Close()
		u.dev = nil
	}
	if u.ctx != nil {
		u.ctx.Close()
		u.ctx = nil
	}
	return nil
}
