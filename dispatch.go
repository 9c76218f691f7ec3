// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package viewport

import (
	"fmt"
	"image/color"

	types "github.com/gogpu/gputypes"

	"github.com/gogpu/viewport/gpu"
	"github.com/gogpu/viewport/window"
)

// Driver dispatches cameras against the current frame's windows.
//
// A Driver is not safe for concurrent use; one drives one frame at a
// time.
type Driver struct {
	clearColor types.Color
}

// NewDriver returns a Driver that clears unserviced windows to opaque
// black.
func NewDriver() *Driver {
	return &Driver{
		clearColor: types.Color{R: 0, G: 0, B: 0, A: 1},
	}
}

// SetClearColor sets the color written by the fallback clear pass.
func (d *Driver) SetClearColor(c color.Color) {
	r, g, b, a := c.RGBA()
	d.clearColor = types.Color{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
		A: float64(a) / 0xffff,
	}
}

// ClearColor returns the color written by the fallback clear pass.
func (d *Driver) ClearColor() types.Color {
	return d.clearColor
}

// Run dispatches every camera in priority order, then issues a fallback
// clear pass on each window that was acquired but not serviced.
//
// A camera targeting a window that is missing from the mirror or has a
// degenerate (zero) size is skipped without invoking its graph: a
// destroyed window cannot sensibly be rendered to, and this is expected
// during window lifecycle transitions. Multiple cameras may target the
// same window; each is dispatched. A render-graph error aborts the pass
// immediately rather than rendering a partial frame.
//
// Backends generally require that a surface whose texture was acquired
// also receives submitted work and a present. The clear pass — one color
// attachment, no depth/stencil, no draws — is the minimal legal
// "nothing to render" unit of work for windows no camera touched.
func (d *Driver) Run(encoder gpu.CommandEncoder, graphs GraphRunner, cameras []Camera, m *window.Mirror) error {
	serviced := make(map[window.ID]struct{})

	for i := range cameras {
		cam := &cameras[i]
		run := true

		switch cam.Target.Kind {
		case TargetKindWindow:
			w, ok := m.Get(cam.Target.Window)
			if ok && w.PhysicalWidth > 0 && w.PhysicalHeight > 0 {
				serviced[cam.Target.Window] = struct{}{}
			} else {
				slogger().Debug("viewport: skipping camera, target window missing or zero-sized",
					"camera", cam.Entity, "window", cam.Target.Window)
				run = false
			}
		case TargetKindTexture, TargetKindNone:
			// Offscreen and untargeted cameras always dispatch.
		}

		if !run {
			continue
		}
		if err := graphs.RunGraph(cam.Graph, cam.Entity); err != nil {
			return fmt.Errorf("viewport: render graph %q for camera %d: %w", cam.Graph, cam.Entity, err)
		}
	}

	for id, w := range m.Windows() {
		if _, ok := serviced[id]; ok {
			continue
		}
		if w.SwapChainTextureView == nil {
			continue
		}

		pass := encoder.BeginRenderPass(&gpu.RenderPassDescriptor{
			Label: "no_camera_clear_pass",
			ColorAttachments: []gpu.RenderPassColorAttachment{{
				View:       w.SwapChainTextureView,
				LoadOp:     types.LoadOpClear,
				StoreOp:    types.StoreOpStore,
				ClearValue: d.clearColor,
			}},
		})
		pass.End()
	}

	return nil
}
