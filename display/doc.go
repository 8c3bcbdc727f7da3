// Copyright (c) 2026
// Author: momentics <momentics@gmail.com>

// Package display drives the board's SSD1308 OLED status panel. The
// panel is a fire-and-forget collaborator: operations are queued and
// drained from the dispatch thread after each cycle, and failures are
// logged without ever propagating into the event loop.
package display
