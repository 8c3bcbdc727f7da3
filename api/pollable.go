// File: api/pollable.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Pollable is any event source backed by an OS descriptor. The descriptor
// is stable for the source's lifetime once created.
type Pollable interface {
	Fd() uintptr
}
