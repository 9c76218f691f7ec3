// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

import (
	"errors"
	"fmt"

	"github.com/gogpu/viewport/gpu"
	"github.com/gogpu/viewport/window"
)

// Prepare acquires a presentable texture for every live window that has
// a surface, storing the texture and its display-ready view on the
// window snapshot.
//
// A window with no surface entry is skipped silently: it was first seen
// this frame and gets its surface on the next configuration pass. The
// surface's active color format is recorded on the snapshot up front, so
// downstream consumers can query the expected format even when
// acquisition fails below.
//
// Failure handling, per window:
//
//   - gpu.ErrSurfaceOutdated: the surface is reconfigured with its
//     stored configuration and acquisition retried exactly once. A
//     second failure is logged and the window skipped for the frame —
//     common on X11 and Xwayland while the window is resized
//     concurrently with frame submission.
//   - gpu.ErrSurfaceTimeout, when quirk reports it ignorable: skipped
//     silently apart from a debug line. Some Linux driver stacks time
//     out spuriously; see DefaultTimeoutPolicy.
//   - anything else: panics naming the underlying GPU error. Device
//     loss, memory exhaustion and validation failures leave the
//     application in a state with no defined recovery, and continuing
//     risks silent corruption or a frozen, unclosable window.
//
// Acquisition may block the calling goroutine waiting on the GPU or
// driver; that is a known performance hazard, not an error, and no
// timeout is applied here.
func (r *Registry) Prepare(device gpu.Device, m *window.Mirror, quirk TimeoutPolicy) {
	if quirk == nil {
		quirk = FatalTimeouts{}
	}

	for id, w := range m.Windows() {
		entry, ok := r.surfaces[id]
		if !ok {
			continue
		}

		w.SwapChainTextureFormat = entry.Config.Format

		tex, err := entry.Surface.Acquire()
		switch {
		case err == nil:
			w.SetSwapchainTexture(tex)

		case errors.Is(err, gpu.ErrSurfaceOutdated):
			device.ConfigureSurface(entry.Surface, &entry.Config)
			tex, err = entry.Surface.Acquire()
			if err != nil {
				slogger().Warn("swapchain: could not acquire texture after reconfigure",
					"window", id, "error", err)
				continue
			}
			w.SetSwapchainTexture(tex)

		case errors.Is(err, gpu.ErrSurfaceTimeout) && quirk.IgnorableTimeout():
			slogger().Debug("swapchain: acquisition timed out; known driver quirk, skipping frame",
				"window", id)

		default:
			panic(fmt.Sprintf("swapchain: could not acquire texture, operation unrecoverable: %v", err))
		}
	}
}
