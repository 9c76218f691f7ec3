// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

import (
	"testing"

	types "github.com/gogpu/gputypes"

	"github.com/gogpu/viewport/gpu"
	"github.com/gogpu/viewport/window"
)

// prepareFixture wires one extracted window to one registered surface.
func prepareFixture(t *testing.T, results ...acquireResult) (*Registry, *window.Mirror, *mockSurface, *mockDevice) {
	t.Helper()
	m := window.NewMirror()
	r := NewRegistry()
	syncOne(t, m, window.State{ID: 1, PhysicalWidth: 800, PhysicalHeight: 600})

	instance := &mockInstance{}
	adapter := &mockAdapter{formats: []types.TextureFormat{types.TextureFormatBGRA8UnormSrgb}}
	device := &mockDevice{}
	r.CreateSurfaces(instance, adapter, device, m)
	device.calls = nil // only track calls made by Prepare

	instance.lastSurf.results = results
	return r, m, instance.lastSurf, device
}

func TestPrepareSuccess(t *testing.T) {
	r, m, surf, device := prepareFixture(t, acquireResult{
		tex: &mockSurfaceTexture{format: types.TextureFormatBGRA8UnormSrgb},
	})

	r.Prepare(device, m, FatalTimeouts{})

	w, _ := m.Get(1)
	if w.SwapChainTexture == nil || w.SwapChainTextureView == nil {
		t.Fatal("texture and view not stored on success")
	}
	if w.SwapChainTextureFormat != types.TextureFormatBGRA8UnormSrgb {
		t.Errorf("format = %v, want BGRA8UnormSrgb", w.SwapChainTextureFormat)
	}
	if surf.acquires != 1 {
		t.Errorf("acquires = %d, want 1", surf.acquires)
	}
	if len(device.calls) != 0 {
		t.Errorf("Prepare reconfigured on success: %d calls", len(device.calls))
	}
}

func TestPrepareSkipsWindowWithoutSurface(t *testing.T) {
	m := window.NewMirror()
	r := NewRegistry()
	syncOne(t, m, window.State{ID: 1, PhysicalWidth: 10, PhysicalHeight: 10})

	// No CreateSurfaces pass ran: nothing to acquire, nothing to panic.
	r.Prepare(&mockDevice{}, m, FatalTimeouts{})

	w, _ := m.Get(1)
	if w.SwapChainTexture != nil {
		t.Error("texture set on a window with no surface")
	}
	if w.SwapChainTextureFormat != types.TextureFormatUndefined {
		t.Errorf("format = %v, want Undefined (never configured)", w.SwapChainTextureFormat)
	}
}

func TestPrepareOutdatedRetrySucceeds(t *testing.T) {
	r, m, surf, device := prepareFixture(t,
		acquireResult{err: gpu.ErrSurfaceOutdated},
		acquireResult{tex: &mockSurfaceTexture{format: types.TextureFormatBGRA8UnormSrgb}},
	)

	r.Prepare(device, m, FatalTimeouts{})

	w, _ := m.Get(1)
	if w.SwapChainTextureView == nil {
		t.Fatal("view not stored after successful retry")
	}
	if surf.acquires != 2 {
		t.Errorf("acquires = %d, want 2 (original + one retry)", surf.acquires)
	}
	if len(device.calls) != 1 {
		t.Fatalf("reconfigures = %d, want 1", len(device.calls))
	}
	if device.calls[0].config.Width != 800 || device.calls[0].config.Height != 600 {
		t.Errorf("retry reconfigured with %dx%d, want stored 800x600",
			device.calls[0].config.Width, device.calls[0].config.Height)
	}
}

func TestPrepareOutdatedRetryFailsSkipsFrame(t *testing.T) {
	r, m, surf, device := prepareFixture(t,
		acquireResult{err: gpu.ErrSurfaceOutdated},
		acquireResult{err: gpu.ErrSurfaceOutdated},
	)

	r.Prepare(device, m, FatalTimeouts{})

	w, _ := m.Get(1)
	if w.SwapChainTexture != nil || w.SwapChainTextureView != nil {
		t.Error("texture stored despite failed retry")
	}
	// The expected format is still recorded for downstream consumers.
	if w.SwapChainTextureFormat != types.TextureFormatBGRA8UnormSrgb {
		t.Errorf("format = %v, want BGRA8UnormSrgb recorded despite failure", w.SwapChainTextureFormat)
	}
	if surf.acquires != 2 {
		t.Errorf("acquires = %d, want exactly 2 (retry at most once)", surf.acquires)
	}
}

func TestPrepareTimeoutIgnorableUnderQuirk(t *testing.T) {
	r, m, _, device := prepareFixture(t, acquireResult{err: gpu.ErrSurfaceTimeout})

	r.Prepare(device, m, IgnoreTimeouts{})

	w, _ := m.Get(1)
	if w.SwapChainTexture != nil {
		t.Error("texture stored despite timeout")
	}
	if len(device.calls) != 0 {
		t.Error("ignorable timeout must not trigger reconfiguration")
	}
}

func TestPrepareTimeoutFatalWithoutQuirk(t *testing.T) {
	r, m, _, device := prepareFixture(t, acquireResult{err: gpu.ErrSurfaceTimeout})

	defer func() {
		if recover() == nil {
			t.Error("timeout without quirk policy did not panic")
		}
	}()
	r.Prepare(device, m, FatalTimeouts{})
}

func TestPrepareDeviceLostFatal(t *testing.T) {
	r, m, _, device := prepareFixture(t, acquireResult{err: gpu.ErrDeviceLost})

	defer func() {
		if recover() == nil {
			t.Error("device loss did not panic")
		}
	}()
	// Device loss stays fatal even where timeouts are ignorable.
	r.Prepare(device, m, IgnoreTimeouts{})
}

func TestPrepareNilPolicyDefaultsToFatal(t *testing.T) {
	r, m, _, device := prepareFixture(t, acquireResult{err: gpu.ErrSurfaceTimeout})

	defer func() {
		if recover() == nil {
			t.Error("nil policy should treat timeouts as fatal")
		}
	}()
	r.Prepare(device, m, nil)
}
