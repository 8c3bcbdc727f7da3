// Copyright (c) 2026
// Author: momentics <momentics@gmail.com>

// Package control holds run configuration and runtime metrics for the
// blinkloop demo.
package control
