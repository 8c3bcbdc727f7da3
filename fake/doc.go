// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

// Package fake provides in-memory test doubles for the event core: a
// scripted registry, a manually fired timer source, a GPIO pin, and a
// recording I2C bus.
package fake
