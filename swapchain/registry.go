// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package swapchain owns one GPU presentation surface per window and the
// per-frame configure/acquire pipeline that keeps each surface matched
// to its window.
//
// The Registry is not safe for concurrent use. Its map of surfaces is
// mutated only during the configuration stage and read-only during
// acquisition and dispatch within the same frame; stage sequencing, not
// locking, enforces this.
package swapchain

import (
	"fmt"

	"github.com/gogpu/viewport/gpu"
	"github.com/gogpu/viewport/window"
)

// Entry pairs a live presentation surface with its last-applied
// configuration.
type Entry struct {
	// Surface is the GPU presentation surface bound to the window.
	Surface gpu.Surface

	// Config is the configuration last applied to Surface. After a
	// frame's configuration pass its dimensions and present mode equal
	// the window's current values.
	Config gpu.SurfaceConfig
}

// Registry owns the presentation surface of every window that has ever
// been configured.
type Registry struct {
	surfaces map[window.ID]*Entry

	// configured tracks windows that have completed at least one
	// configuration pass, forcing configuration on first sight of a
	// window even when its size and mode happen to match defaults.
	configured map[window.ID]struct{}
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		surfaces:   make(map[window.ID]*Entry),
		configured: make(map[window.ID]struct{}),
	}
}

// Get returns the surface entry for id, if one exists.
func (r *Registry) Get(id window.ID) (*Entry, bool) {
	e, ok := r.surfaces[id]
	return e, ok
}

// Len returns the number of owned surfaces.
func (r *Registry) Len() int {
	return len(r.surfaces)
}

// Configured reports whether id has completed a configuration pass.
func (r *Registry) Configured(id window.ID) bool {
	_, ok := r.configured[id]
	return ok
}

// Remove releases the surface owned for id and forgets its configured
// status. window.Mirror.Sync calls it exactly once per window close, in
// the same frame the snapshot is deleted, so no frame ever references a
// surface whose window is gone. Removing an unknown id is a no-op.
func (r *Registry) Remove(id window.ID) {
	if e, ok := r.surfaces[id]; ok {
		e.Surface.Release()
		delete(r.surfaces, id)
	}
	delete(r.configured, id)
}

// NeedsConfiguration reports whether any live window requires a
// configuration pass this frame: it has never been configured, or its
// size or present mode changed. This is the cheap pre-check that gates
// CreateSurfaces so the expensive pass only runs when required.
func (r *Registry) NeedsConfiguration(m *window.Mirror) bool {
	for id, w := range m.Windows() {
		if !r.Configured(id) || w.SizeChanged || w.PresentModeChanged {
			return true
		}
	}
	return false
}

// CreateSurfaces creates and configures surfaces for every live window.
//
// For a window with no surface yet, a surface is created from the raw
// platform handle and configured from scratch; the window's handle must
// stay valid for the surface's lifetime, which the mirror guarantees by
// removing surfaces the frame their window closes. For a window whose
// size or present mode changed, the stored configuration is updated in
// place and reapplied to the device before this frame's acquisition.
//
// CreateSurfaces is idempotent within a frame: a window that already has
// a surface and no pending change is left untouched.
//
// Surface creation must happen on the main thread on some operating
// systems; callers schedule this stage accordingly.
//
// Panics when surface creation fails or when the adapter reports zero
// supported formats for a surface: no window could ever present, and
// there is no defined recovery.
func (r *Registry) CreateSurfaces(instance gpu.Instance, adapter gpu.Adapter, device gpu.Device, m *window.Mirror) {
	for id, w := range m.Windows() {
		entry, ok := r.surfaces[id]
		if !ok {
			surf, err := instance.CreateSurface(w.Handle.Display, w.Handle.Window)
			if err != nil {
				panic(fmt.Sprintf("swapchain: failed to create surface for window %d: %v", id, err))
			}
			cfg := BuildConfig(w, adapter.SurfaceFormats(surf))
			device.ConfigureSurface(surf, &cfg)
			entry = &Entry{Surface: surf, Config: cfg}
			r.surfaces[id] = entry
			slogger().Debug("swapchain: surface created",
				"window", id, "format", cfg.Format,
				"width", cfg.Width, "height", cfg.Height)
		}

		if w.SizeChanged || w.PresentModeChanged {
			entry.Config.Width = w.PhysicalWidth
			entry.Config.Height = w.PhysicalHeight
			entry.Config.PresentMode = w.PresentMode
			device.ConfigureSurface(entry.Surface, &entry.Config)
		}

		r.configured[id] = struct{}{}
	}
}
