// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

// Transfer records one I2C transaction.
type Transfer struct {
	Addr uint16
	W    []byte
	R    int // requested read length
}

// Bus is a recording drivers.I2C implementation.
type Bus struct {
	Transfers []Transfer
	Err       error
}

// Tx records the transaction and fills reads with zeros.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	if b.Err != nil {
		return b.Err
	}
	t := Transfer{Addr: addr, W: append([]byte(nil), w...), R: len(r)}
	b.Transfers = append(b.Transfers, t)
	for i := range r {
		r[i] = 0
	}
	return nil
}
