// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package viewport

import (
	"sort"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/viewport/window"
)

// EntityID identifies the scene entity a camera renders from. It is
// assigned by the scene collaborator and opaque to viewport; it is
// passed through as the root input of the camera's render sub-graph.
type EntityID uint64

// GraphID names a render sub-graph registered with the render-graph
// collaborator.
type GraphID string

// TargetKind discriminates the kinds of render target a camera can have.
type TargetKind uint8

const (
	// TargetKindNone marks a camera with no explicit target; its graph
	// decides where output goes.
	TargetKindNone TargetKind = iota

	// TargetKindWindow targets a window's swapchain texture.
	TargetKindWindow

	// TargetKindTexture targets an offscreen texture.
	TargetKindTexture
)

// String returns the string representation of the target kind.
func (k TargetKind) String() string {
	switch k {
	case TargetKindNone:
		return "None"
	case TargetKindWindow:
		return "Window"
	case TargetKindTexture:
		return "Texture"
	default:
		return "Unknown"
	}
}

// RenderTarget is a tagged variant over the places a camera can render
// to. Exactly the field selected by Kind is meaningful.
type RenderTarget struct {
	// Kind selects the variant.
	Kind TargetKind

	// Window is the target window. Valid when Kind is TargetKindWindow.
	Window window.ID

	// Texture is the offscreen target, shared with the host through the
	// gpucontext ecosystem. Valid when Kind is TargetKindTexture.
	Texture gpucontext.Texture
}

// WindowTarget returns a RenderTarget for a window's swapchain.
func WindowTarget(id window.ID) RenderTarget {
	return RenderTarget{Kind: TargetKindWindow, Window: id}
}

// TextureTarget returns a RenderTarget for an offscreen texture.
func TextureTarget(tex gpucontext.Texture) RenderTarget {
	return RenderTarget{Kind: TargetKindTexture, Texture: tex}
}

// Camera describes one camera the scene collaborator wants rendered.
type Camera struct {
	// Entity is the camera's scene entity, passed to the render graph
	// as the sub-graph root input.
	Entity EntityID

	// Graph names the render sub-graph that draws this camera's view.
	Graph GraphID

	// Order is the camera's priority; lower orders render first.
	Order int

	// Target is where the camera's output goes.
	Target RenderTarget
}

// SortCameras orders cameras by ascending Order, preserving the input
// order of cameras with equal Order. Driver.Run expects its camera
// slice in this order.
func SortCameras(cameras []Camera) {
	sort.SliceStable(cameras, func(i, j int) bool {
		return cameras[i].Order < cameras[j].Order
	})
}

// GraphRunner executes render sub-graphs. It is implemented by the
// render-graph collaborator; viewport only decides whether and with
// what root entity to invoke it.
type GraphRunner interface {
	// RunGraph executes the named sub-graph with root as its input
	// entity. An error aborts the frame's dispatch pass.
	RunGraph(graph GraphID, root EntityID) error
}
