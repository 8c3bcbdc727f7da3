// Copyright (c) 2026
// Author: momentics <momentics@gmail.com>

// Package blinker holds the two policy handlers of the demo: the LED
// toggle handler and the button poll handler that cycles the blink rate.
package blinker
