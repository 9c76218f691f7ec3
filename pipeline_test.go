// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package viewport

import (
	"errors"
	"testing"

	types "github.com/gogpu/gputypes"

	"github.com/gogpu/viewport/gpu"
	"github.com/gogpu/viewport/swapchain"
	"github.com/gogpu/viewport/window"
)

// mockSurface is a test double for gpu.Surface: every acquisition
// succeeds with a fresh BGRA8UnormSrgb texture.
type mockSurface struct {
	acquires int
	released bool
}

func (s *mockSurface) Acquire() (gpu.SurfaceTexture, error) {
	s.acquires++
	return &mockSurfaceTexture{format: types.TextureFormatBGRA8UnormSrgb}, nil
}

func (s *mockSurface) Release() { s.released = true }

// mockInstance is a test double for gpu.Instance.
type mockInstance struct {
	created  int
	lastSurf *mockSurface
}

func (i *mockInstance) CreateSurface(display, win uintptr) (gpu.Surface, error) {
	i.created++
	i.lastSurf = &mockSurface{}
	return i.lastSurf, nil
}

// mockAdapter is a test double for gpu.Adapter.
type mockAdapter struct {
	formats []types.TextureFormat
}

func (a *mockAdapter) SurfaceFormats(s gpu.Surface) []types.TextureFormat {
	return a.formats
}

// mockDevice is a test double for gpu.Device.
type mockDevice struct {
	configures int
}

func (d *mockDevice) ConfigureSurface(s gpu.Surface, cfg *gpu.SurfaceConfig) {
	d.configures++
}

// newTestPipeline wires a Pipeline to fresh mocks.
func newTestPipeline(t *testing.T) (*Pipeline, *mockInstance, *mockDevice) {
	t.Helper()
	instance := &mockInstance{}
	device := &mockDevice{}
	p, err := NewPipeline(Options{
		Instance: instance,
		Adapter: &mockAdapter{formats: []types.TextureFormat{
			types.TextureFormatRGBA8Unorm,
			types.TextureFormatBGRA8UnormSrgb,
		}},
		Device:        device,
		TimeoutPolicy: swapchain.FatalTimeouts{},
	})
	if err != nil {
		t.Fatalf("NewPipeline() = %v", err)
	}
	return p, instance, device
}

func TestNewPipelineRequiresCollaborators(t *testing.T) {
	_, err := NewPipeline(Options{Instance: &mockInstance{}, Adapter: &mockAdapter{}})
	if !errors.Is(err, ErrMissingCollaborator) {
		t.Errorf("NewPipeline without device = %v, want ErrMissingCollaborator", err)
	}
}

func TestRunFrameFirstFrame(t *testing.T) {
	p, instance, _ := newTestPipeline(t)

	encoder := &mockEncoder{}
	graphs := &mockGraphRunner{}
	err := p.RunFrame(FrameInput{
		Windows: []window.State{{ID: 1, PhysicalWidth: 800, PhysicalHeight: 600, Primary: true}},
		Cameras: []Camera{{Entity: 10, Graph: "main_3d", Target: WindowTarget(1)}},
		Encoder: encoder,
		Graphs:  graphs,
	})
	if err != nil {
		t.Fatalf("RunFrame() = %v", err)
	}

	if instance.created != 1 {
		t.Errorf("surfaces created = %d, want 1", instance.created)
	}
	if instance.lastSurf.acquires != 1 {
		t.Errorf("acquires = %d, want 1", instance.lastSurf.acquires)
	}
	if len(graphs.calls) != 1 {
		t.Errorf("graph calls = %d, want 1", len(graphs.calls))
	}
	if len(encoder.passes) != 0 {
		t.Errorf("clear passes = %d for a serviced window, want 0", len(encoder.passes))
	}

	w, ok := p.Mirror().Get(1)
	if !ok {
		t.Fatal("window 1 not in mirror after RunFrame")
	}
	if w.SwapChainTextureFormat != types.TextureFormatBGRA8UnormSrgb {
		t.Errorf("format = %v, want BGRA8UnormSrgb (sRGB-preferring pick)", w.SwapChainTextureFormat)
	}
	if id, ok := p.Mirror().Primary(); !ok || id != 1 {
		t.Errorf("Primary() = %d, %v, want 1, true", id, ok)
	}
}

func TestRunFrameClearsCameralessWindow(t *testing.T) {
	p, _, _ := newTestPipeline(t)

	encoder := &mockEncoder{}
	err := p.RunFrame(FrameInput{
		Windows: []window.State{{ID: 1, PhysicalWidth: 800, PhysicalHeight: 600}},
		Encoder: encoder,
		Graphs:  &mockGraphRunner{},
	})
	if err != nil {
		t.Fatalf("RunFrame() = %v", err)
	}
	if len(encoder.passes) != 1 {
		t.Fatalf("clear passes = %d for an acquired, unserviced window, want 1", len(encoder.passes))
	}
}

func TestRunFrameStableWindowSkipsConfiguration(t *testing.T) {
	p, instance, device := newTestPipeline(t)

	frame := FrameInput{
		Windows: []window.State{{ID: 1, PhysicalWidth: 800, PhysicalHeight: 600}},
		Encoder: &mockEncoder{},
		Graphs:  &mockGraphRunner{},
	}
	if err := p.RunFrame(frame); err != nil {
		t.Fatalf("frame 1: %v", err)
	}
	configsAfterFirst := device.configures

	frame.Encoder = &mockEncoder{}
	if err := p.RunFrame(frame); err != nil {
		t.Fatalf("frame 2: %v", err)
	}

	if instance.created != 1 {
		t.Errorf("surfaces created = %d over two stable frames, want 1", instance.created)
	}
	if device.configures != configsAfterFirst {
		t.Errorf("configures = %d, want %d (no reconfiguration without change)",
			device.configures, configsAfterFirst)
	}
	if instance.lastSurf.acquires != 2 {
		t.Errorf("acquires = %d over two frames, want 2 (one per frame)", instance.lastSurf.acquires)
	}
}

func TestRunFrameResizeReconfigures(t *testing.T) {
	p, instance, device := newTestPipeline(t)

	if err := p.RunFrame(FrameInput{
		Windows: []window.State{{ID: 1, PhysicalWidth: 800, PhysicalHeight: 600}},
		Encoder: &mockEncoder{},
		Graphs:  &mockGraphRunner{},
	}); err != nil {
		t.Fatalf("frame 1: %v", err)
	}
	configsAfterFirst := device.configures

	if err := p.RunFrame(FrameInput{
		Windows: []window.State{{ID: 1, PhysicalWidth: 1024, PhysicalHeight: 768}},
		Encoder: &mockEncoder{},
		Graphs:  &mockGraphRunner{},
	}); err != nil {
		t.Fatalf("frame 2: %v", err)
	}

	if instance.created != 1 {
		t.Errorf("surfaces created = %d across a resize, want 1 (reconfigure, not recreate)", instance.created)
	}
	if device.configures != configsAfterFirst+1 {
		t.Errorf("configures = %d, want %d (one reconfiguration for the resize)",
			device.configures, configsAfterFirst+1)
	}
	entry, ok := p.Surfaces().Get(1)
	if !ok {
		t.Fatal("no surface entry for window 1")
	}
	if entry.Config.Width != 1024 || entry.Config.Height != 768 {
		t.Errorf("config size = %dx%d, want 1024x768", entry.Config.Width, entry.Config.Height)
	}
}

func TestRunFrameWindowCloseReleasesSurface(t *testing.T) {
	p, instance, _ := newTestPipeline(t)

	if err := p.RunFrame(FrameInput{
		Windows: []window.State{{ID: 1, PhysicalWidth: 10, PhysicalHeight: 10}},
		Encoder: &mockEncoder{},
		Graphs:  &mockGraphRunner{},
	}); err != nil {
		t.Fatalf("frame 1: %v", err)
	}

	if err := p.RunFrame(FrameInput{
		Closed:  []window.ID{1},
		Encoder: &mockEncoder{},
		Graphs:  &mockGraphRunner{},
	}); err != nil {
		t.Fatalf("frame 2: %v", err)
	}

	if !instance.lastSurf.released {
		t.Error("surface not released when its window closed")
	}
	if p.Mirror().Len() != 0 {
		t.Error("closed window still in mirror")
	}
	if p.Surfaces().Len() != 0 {
		t.Error("closed window's surface still registered")
	}
}

func TestRunFramePropagatesGraphError(t *testing.T) {
	p, _, _ := newTestPipeline(t)

	boom := errors.New("node failed")
	err := p.RunFrame(FrameInput{
		Windows: []window.State{{ID: 1, PhysicalWidth: 10, PhysicalHeight: 10}},
		Cameras: []Camera{{Entity: 1, Graph: "bad", Target: WindowTarget(1)}},
		Encoder: &mockEncoder{},
		Graphs:  &mockGraphRunner{fail: map[GraphID]error{"bad": boom}},
	})
	if !errors.Is(err, boom) {
		t.Errorf("RunFrame() = %v, want wrapped %v", err, boom)
	}
}
