// Copyright (c) 2026
// Author: momentics <momentics@gmail.com>

// Package api defines the contracts shared by the blinkloop event core:
// pollable event sources, per-source handlers, the readiness registry,
// and the error taxonomy used across setup and steady-state operation.
package api
