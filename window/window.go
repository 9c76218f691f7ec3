// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window mirrors presentation-relevant window state into the
// render frame.
//
// The windowing system (glfw, an OS shell, a test harness) describes its
// open windows once per frame as a slice of State values plus a list of
// closed window IDs. Mirror.Sync folds that description into a set of
// ExtractedWindow snapshots that the rest of the frame reads without
// touching the windowing system again.
//
// A Mirror is not safe for concurrent use. It is mutated exactly once
// per frame (during Sync) and is read-only for the remainder of the
// frame; stage ordering, not locking, protects it.
package window

import (
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/viewport/gpu"
)

// ID is a stable, opaque identifier for one window, assigned by the
// windowing collaborator. IDs are never reused within a run.
type ID uint64

// Handle carries the raw platform pointers needed to bind a presentation
// surface to a window. Both pointers are owned by the windowing system
// and are valid only while the window is open.
type Handle struct {
	// Display is the raw display/connection handle (e.g. a Wayland
	// display or X11 connection pointer).
	Display uintptr

	// Window is the raw window handle.
	Window uintptr
}

// State is the windowing collaborator's per-frame description of one
// open window.
type State struct {
	// ID identifies the window.
	ID ID

	// Handle is the window's raw platform handle.
	Handle Handle

	// PhysicalWidth and PhysicalHeight are the window's size in physical
	// pixels. Zero values are clamped to 1 during extraction.
	PhysicalWidth  uint32
	PhysicalHeight uint32

	// PresentMode is the requested present mode.
	PresentMode gpu.PresentMode

	// FrameLatency is the desired maximum number of in-flight frames.
	// Zero means the backend default applies.
	FrameLatency uint32

	// AlphaMode is the requested compositing mode.
	AlphaMode gpu.AlphaMode

	// Primary marks the window collaborators should treat as the default
	// target. At most one window per frame should set it.
	Primary bool
}

// ExtractedWindow is the frame-local snapshot of one live window. One
// instance exists per open window, keyed by ID in the Mirror, created on
// first sighting and removed the same frame the window closes.
type ExtractedWindow struct {
	// ID identifies the window.
	ID ID

	// Handle is the raw platform handle, used only to create a surface.
	Handle Handle

	// PhysicalWidth and PhysicalHeight are the stored size in physical
	// pixels, always at least 1.
	PhysicalWidth  uint32
	PhysicalHeight uint32

	// PresentMode is the stored present-mode request.
	PresentMode gpu.PresentMode

	// FrameLatency is the stored buffering-depth request; zero means the
	// backend default.
	FrameLatency uint32

	// AlphaMode is the stored compositing mode.
	AlphaMode gpu.AlphaMode

	// SizeChanged is true iff this frame's physical size differs from
	// last frame's stored size. Recomputed every Sync.
	SizeChanged bool

	// PresentModeChanged is true iff this frame's present-mode request
	// differs from last frame's. Recomputed every Sync.
	PresentModeChanged bool

	// SwapChainTexture is the texture acquired for this frame, or nil
	// when not yet acquired or acquisition failed.
	SwapChainTexture gpu.SurfaceTexture

	// SwapChainTextureView is the display-ready view of SwapChainTexture.
	// When taking a screenshot this may instead point at an intermediate
	// texture so the result can be copied back to the CPU.
	SwapChainTextureView gpu.TextureView

	// SwapChainTextureFormat is the surface's active color format, or
	// TextureFormatUndefined before the first configuration. Recorded
	// even on frames where acquisition fails, so downstream consumers
	// can still query the expected format.
	SwapChainTextureFormat types.TextureFormat
}

// SetSwapchainTexture stores the frame's acquired texture and derives a
// display-ready view from it, overriding the view format with the sRGB
// variant of the texture's format so consumers always composite in sRGB.
func (w *ExtractedWindow) SetSwapchainTexture(tex gpu.SurfaceTexture) {
	w.SwapChainTextureView = tex.CreateView(&gpu.TextureViewDescriptor{
		Format: gpu.SRGBVariant(tex.Format()),
	})
	w.SwapChainTexture = tex
}

// SurfaceRemover removes the presentation surface owned for a window.
// Implemented by swapchain.Registry; Mirror.Sync calls it so that a
// window's snapshot and its surface are removed in the same frame.
type SurfaceRemover interface {
	Remove(id ID)
}
