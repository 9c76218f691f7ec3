// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package viewport

import (
	"errors"

	"github.com/gogpu/viewport/gpu"
	"github.com/gogpu/viewport/swapchain"
	"github.com/gogpu/viewport/window"
)

// Pipeline errors.
var (
	// ErrMissingCollaborator is returned by NewPipeline when a required
	// GPU collaborator is nil.
	ErrMissingCollaborator = errors.New("viewport: Instance, Adapter and Device are required")
)

// Options configures a Pipeline.
type Options struct {
	// Instance, Adapter and Device are the GPU collaborators. All three
	// are required.
	Instance gpu.Instance
	Adapter  gpu.Adapter
	Device   gpu.Device

	// TimeoutPolicy decides whether acquisition timeouts are ignorable.
	// Nil selects swapchain.DefaultTimeoutPolicy for the host platform.
	TimeoutPolicy swapchain.TimeoutPolicy
}

// FrameInput is everything one frame needs from the collaborators.
type FrameInput struct {
	// Windows enumerates the currently-open windows.
	Windows []window.State

	// Closed lists windows closed (or stripped of their platform
	// handle) since the previous frame.
	Closed []window.ID

	// Cameras is the priority-ordered camera list; see SortCameras.
	Cameras []Camera

	// Encoder records the frame's fallback clear passes.
	Encoder gpu.CommandEncoder

	// Graphs executes the render sub-graphs.
	Graphs GraphRunner
}

// Pipeline runs the four per-frame stages — extract, configure, prepare,
// dispatch — in dependency order against one set of collaborators.
//
// A Pipeline is not safe for concurrent use: it is built for a single
// render loop, where stage sequencing inside RunFrame replaces locking.
// On platforms whose windowing integration forbids cross-thread surface
// creation, RunFrame must be called on the main thread, because the
// configure stage creates surfaces.
type Pipeline struct {
	mirror   *window.Mirror
	surfaces *swapchain.Registry
	driver   *Driver

	instance gpu.Instance
	adapter  gpu.Adapter
	device   gpu.Device
	quirk    swapchain.TimeoutPolicy
}

// NewPipeline returns a Pipeline wired to the given collaborators.
func NewPipeline(opts Options) (*Pipeline, error) {
	if opts.Instance == nil || opts.Adapter == nil || opts.Device == nil {
		return nil, ErrMissingCollaborator
	}
	quirk := opts.TimeoutPolicy
	if quirk == nil {
		quirk = swapchain.DefaultTimeoutPolicy()
	}
	return &Pipeline{
		mirror:   window.NewMirror(),
		surfaces: swapchain.NewRegistry(),
		driver:   NewDriver(),
		instance: opts.Instance,
		adapter:  opts.Adapter,
		device:   opts.Device,
		quirk:    quirk,
	}, nil
}

// Mirror returns the pipeline's window state mirror. Between frames it
// reflects the last synced state; during RunFrame it must not be
// mutated by the caller.
func (p *Pipeline) Mirror() *window.Mirror {
	return p.mirror
}

// Surfaces returns the pipeline's surface registry.
func (p *Pipeline) Surfaces() *swapchain.Registry {
	return p.surfaces
}

// Driver returns the pipeline's camera dispatch driver, e.g. to set the
// fallback clear color.
func (p *Pipeline) Driver() *Driver {
	return p.driver
}

// RunFrame runs one frame: extraction, conditional configuration,
// acquisition, camera dispatch. The two branches downstream of
// extraction — surface preparation and camera dispatch — both complete
// before RunFrame returns, so the caller may submit the frame's command
// buffers afterwards.
//
// The returned error comes from the render-graph collaborator; surface
// and acquisition failures follow the taxonomy documented on
// swapchain.Registry (skip, log, or panic) and never surface here.
func (p *Pipeline) RunFrame(frame FrameInput) error {
	p.mirror.Sync(frame.Windows, frame.Closed, p.surfaces)

	if p.surfaces.NeedsConfiguration(p.mirror) {
		p.surfaces.CreateSurfaces(p.instance, p.adapter, p.device, p.mirror)
	}

	p.surfaces.Prepare(p.device, p.mirror, p.quirk)

	return p.driver.Run(frame.Encoder, frame.Graphs, frame.Cameras, p.mirror)
}
