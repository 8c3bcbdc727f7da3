//go:build linux
// +build linux

// File: display/bus_linux.go
// Author: momentics <momentics@gmail.com>
//
// drivers.I2C implementation over the Linux i2c-dev interface.

package display

import (
	"io"
	"os"

	"golang.org/x/sys/unix"

	"github.com/momentics/blinkloop/api"
)

// i2cSlave is the I2C_SLAVE ioctl request from <linux/i2c-dev.h>;
// golang.org/x/sys/unix does not export it.
const i2cSlave = 0x0703

// I2CBus adapts an i2c-dev node to the drivers.I2C transfer contract.
type I2CBus struct {
	f    *os.File
	addr uint16 // currently selected target
}

// OpenI2C opens the given i2c-dev node, e.g. "/dev/i2c-2".
func OpenI2C(device string) (*I2CBus, error) {
	f, err := os.OpenFile(device, os.O_RDWR, 0)
	if err != nil {
		return nil, api.NewResourceError("i2c open", err)
	}
	return &I2CBus{f: f, addr: 0xFFFF}, nil
}

// Tx selects addr and performs a write followed by an optional read.
func (b *I2CBus) Tx(addr uint16, w, r []byte) error {
	if addr != b.addr {
		if err := unix.IoctlSetInt(int(b.f.Fd()), i2cSlave, int(addr)); err != nil {
			return api.NewIOError("i2c select target", err)
		}
		b.addr = addr
	}
	if len(w) > 0 {
		if _, err := b.f.Write(w); err != nil {
			return api.NewIOError("i2c write", err)
		}
	}
	if len(r) > 0 {
		if _, err := io.ReadFull(b.f, r); err != nil {
			return api.NewIOError("i2c read", err)
		}
	}
	return nil
}

// Close releases the device node.
func (b *I2CBus) Close() error { return b.f.Close() }
