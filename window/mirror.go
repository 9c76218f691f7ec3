// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

// Mirror is the frame-local, authoritative snapshot of all live windows.
// It holds at most one ExtractedWindow per ID.
type Mirror struct {
	windows map[ID]*ExtractedWindow

	primary    ID
	hasPrimary bool
}

// NewMirror returns an empty Mirror.
func NewMirror() *Mirror {
	return &Mirror{
		windows: make(map[ID]*ExtractedWindow),
	}
}

// Sync rebuilds the mirror from the windowing system's current state.
//
// For every open window it creates or updates the ExtractedWindow:
// the change flags compare the incoming values against last frame's
// stored values (the configuration policy always looks backward one
// frame), stored values are then overwritten, and any texture acquired
// last frame is dropped — a new frame must reacquire, never reuse, since
// holding a texture across frames blocks presentation.
//
// For every ID in closed, the snapshot is deleted and surfaces.Remove is
// called so the window's surface disappears in the same frame. A nil
// surfaces is allowed when no registry is in play (tests).
func (m *Mirror) Sync(states []State, closed []ID, surfaces SurfaceRemover) {
	for i := range states {
		s := &states[i]
		if s.Primary {
			m.primary = s.ID
			m.hasPrimary = true
		}

		newWidth := max(s.PhysicalWidth, 1)
		newHeight := max(s.PhysicalHeight, 1)

		w, ok := m.windows[s.ID]
		if !ok {
			w = &ExtractedWindow{
				ID:             s.ID,
				Handle:         s.Handle,
				PhysicalWidth:  newWidth,
				PhysicalHeight: newHeight,
				PresentMode:    s.PresentMode,
				FrameLatency:   s.FrameLatency,
				AlphaMode:      s.AlphaMode,
			}
			m.windows[s.ID] = w
		}

		// Drop last frame's acquired texture.
		w.SwapChainTexture = nil
		w.SwapChainTextureView = nil

		w.SizeChanged = newWidth != w.PhysicalWidth || newHeight != w.PhysicalHeight
		w.PresentModeChanged = s.PresentMode != w.PresentMode

		if w.SizeChanged {
			slogger().Debug("window: size changed",
				"window", w.ID,
				"from_width", w.PhysicalWidth, "from_height", w.PhysicalHeight,
				"to_width", newWidth, "to_height", newHeight)
			w.PhysicalWidth = newWidth
			w.PhysicalHeight = newHeight
		}

		if w.PresentModeChanged {
			slogger().Debug("window: present mode changed",
				"window", w.ID,
				"from", w.PresentMode, "to", s.PresentMode)
			w.PresentMode = s.PresentMode
		}

		w.Handle = s.Handle
		w.FrameLatency = s.FrameLatency
		w.AlphaMode = s.AlphaMode
	}

	for _, id := range closed {
		delete(m.windows, id)
		if surfaces != nil {
			surfaces.Remove(id)
		}
	}
}

// Get returns the snapshot for id, if the window is live.
func (m *Mirror) Get(id ID) (*ExtractedWindow, bool) {
	w, ok := m.windows[id]
	return w, ok
}

// Windows returns the live snapshots keyed by ID. The map is owned by
// the mirror; callers must not add or remove entries.
func (m *Mirror) Windows() map[ID]*ExtractedWindow {
	return m.windows
}

// Len returns the number of live windows.
func (m *Mirror) Len() int {
	return len(m.windows)
}

// Primary returns the ID of the primary window, if one was marked and is
// still live.
func (m *Mirror) Primary() (ID, bool) {
	if !m.hasPrimary {
		return 0, false
	}
	if _, ok := m.windows[m.primary]; !ok {
		return 0, false
	}
	return m.primary, true
}
