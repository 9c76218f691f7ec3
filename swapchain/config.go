// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

import (
	"fmt"

	types "github.com/gogpu/gputypes"

	"github.com/gogpu/viewport/gpu"
	"github.com/gogpu/viewport/window"
)

// BuildConfig derives a surface configuration from a window's current
// attributes and the adapter's supported formats for that surface.
//
// The format prefers an sRGB-encoded entry from formats, falling back to
// the first supported format when none is sRGB. Present mode and alpha
// mode map 1:1 from the window's requested values. The buffering depth
// is the window's request, or gpu.DefaultFrameLatency when unset. When
// the chosen format is not itself sRGB but an sRGB variant exists, the
// variant is registered as an additional view format so consumers may
// create views in either encoding.
//
// Panics when formats is empty: a surface with no supported formats can
// never present, and there is no defined recovery.
func BuildConfig(w *window.ExtractedWindow, formats []types.TextureFormat) gpu.SurfaceConfig {
	if len(formats) == 0 {
		panic(fmt.Sprintf("swapchain: no supported surface formats for window %d", w.ID))
	}

	format := formats[0]
	for _, f := range formats {
		if gpu.IsSRGBFormat(f) {
			format = f
			break
		}
	}

	latency := w.FrameLatency
	if latency == 0 {
		latency = gpu.DefaultFrameLatency
	}

	var viewFormats []types.TextureFormat
	if v := gpu.SRGBVariant(format); v != format {
		viewFormats = []types.TextureFormat{v}
	}

	return gpu.SurfaceConfig{
		Format:       format,
		Width:        w.PhysicalWidth,
		Height:       w.PhysicalHeight,
		PresentMode:  w.PresentMode,
		AlphaMode:    w.AlphaMode,
		FrameLatency: latency,
		ViewFormats:  viewFormats,
	}
}
