// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import "errors"

// Acquisition errors. Backends return these (directly or wrapped) from
// Surface.Acquire so callers can classify failures with errors.Is.
var (
	// ErrSurfaceOutdated is returned when the surface's configuration no
	// longer matches the window, typically mid-resize. Recoverable:
	// reconfigure the surface and retry once.
	ErrSurfaceOutdated = errors.New("gpu: surface outdated")

	// ErrSurfaceTimeout is returned when the driver did not deliver a
	// texture in time. Fatal except where a platform quirk policy says
	// otherwise.
	ErrSurfaceTimeout = errors.New("gpu: surface acquisition timed out")

	// ErrSurfaceLost is returned when the surface can no longer be used
	// and reconfiguration cannot bring it back. Unrecoverable.
	ErrSurfaceLost = errors.New("gpu: surface lost")

	// ErrDeviceLost is returned when the logical device is gone.
	// Unrecoverable.
	ErrDeviceLost = errors.New("gpu: device lost")

	// ErrOutOfMemory is returned when the driver has no memory for a new
	// texture. Unrecoverable.
	ErrOutOfMemory = errors.New("gpu: out of memory")
)
