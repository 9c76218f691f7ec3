// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	types "github.com/gogpu/gputypes"
)

// DefaultFrameLatency is the buffering depth used when a window does not
// request one. 2 is the backend default. 1 is the legal minimum but may
// cause lower framerates: the CPU waits for the GPU to finish all work
// for the previous frame before starting the next, which then leaves the
// GPU waiting on the CPU in turn. Callers that want that trade-off must
// request it explicitly.
const DefaultFrameLatency uint32 = 2

// Instance creates presentation surfaces.
type Instance interface {
	// CreateSurface binds a presentation surface to a raw platform window.
	//
	// This is an unsafe boundary: displayHandle and windowHandle are raw
	// pointers owned by the windowing system, and the returned Surface is
	// valid only as long as both remain valid. The caller must release the
	// surface the same frame its window closes or loses its handle.
	//
	// On some operating systems this must be called from the main thread.
	CreateSurface(displayHandle, windowHandle uintptr) (Surface, error)
}

// Adapter answers capability queries for a physical GPU.
type Adapter interface {
	// SurfaceFormats returns the texture formats the adapter can present
	// to the given surface, in the adapter's preference order. An empty
	// slice means the surface can never present.
	SurfaceFormats(s Surface) []types.TextureFormat
}

// Device applies surface configurations.
type Device interface {
	// ConfigureSurface applies cfg to s. It must be called before the
	// first acquisition on s, and again before the next acquisition
	// whenever the window's size or present mode changed since the last
	// configuration. Acquiring from a stale configuration yields
	// undefined failures on some backends.
	ConfigureSurface(s Surface, cfg *SurfaceConfig)
}

// Surface is a GPU presentation surface bound to one window.
type Surface interface {
	// Acquire requests the next presentable texture for the current
	// frame. Failures are classified by the sentinel errors in this
	// package. Acquire may block waiting on the GPU or driver.
	Acquire() (SurfaceTexture, error)

	// Release destroys the surface. The surface must not be used after
	// Release returns.
	Release()
}

// SurfaceTexture is one presentable texture acquired from a Surface.
// Once acquired, the texture must receive at least one unit of GPU work
// and be presented; skipping either stalls or crashes some backends.
type SurfaceTexture interface {
	// Format returns the texture's pixel format.
	Format() types.TextureFormat

	// CreateView creates a view of the texture. If desc is nil, a default
	// view in the texture's own format is created.
	CreateView(desc *TextureViewDescriptor) TextureView

	// Present schedules the texture for display and consumes it.
	Present()
}

// TextureView is a view into a texture, usable as a render attachment.
type TextureView interface {
	// Destroy releases resources associated with this view.
	Destroy()
}

// TextureViewDescriptor describes parameters for creating a texture view.
type TextureViewDescriptor struct {
	// Label is an optional debug label for the view.
	Label string

	// Format is the view format. It must be the texture's own format or
	// one of the additional view formats registered in the surface
	// configuration. TextureFormatUndefined means the texture's format.
	Format types.TextureFormat
}

// SurfaceConfig is the full configuration of a presentation surface.
type SurfaceConfig struct {
	// Format is the color format of the surface's textures.
	Format types.TextureFormat

	// Width and Height are the surface dimensions in physical pixels.
	Width  uint32
	Height uint32

	// PresentMode controls frame pacing and tearing.
	PresentMode PresentMode

	// AlphaMode controls compositing with other OS windows.
	AlphaMode AlphaMode

	// FrameLatency is the desired maximum number of in-flight frames.
	FrameLatency uint32

	// ViewFormats lists additional formats that views of the surface's
	// textures may use, beyond Format itself.
	ViewFormats []types.TextureFormat
}

// CommandEncoder records GPU passes into a command buffer.
type CommandEncoder interface {
	// BeginRenderPass begins recording a render pass. The pass must be
	// ended before another pass can begin on this encoder.
	BeginRenderPass(desc *RenderPassDescriptor) RenderPassEncoder
}

// RenderPassEncoder records commands within a render pass.
type RenderPassEncoder interface {
	// End finishes recording the pass.
	End()
}

// RenderPassDescriptor describes a render pass.
type RenderPassDescriptor struct {
	// Label is an optional debug label for the pass.
	Label string

	// ColorAttachments are the color targets of the pass.
	ColorAttachments []RenderPassColorAttachment
}

// RenderPassColorAttachment describes one color target of a render pass.
type RenderPassColorAttachment struct {
	// View is the texture view to render into.
	View TextureView

	// LoadOp is the operation applied to View at the start of the pass.
	LoadOp types.LoadOp

	// StoreOp is the operation applied to View at the end of the pass.
	StoreOp types.StoreOp

	// ClearValue is the clear color used when LoadOp is LoadOpClear.
	ClearValue types.Color
}
