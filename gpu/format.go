// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import types "github.com/gogpu/gputypes"

// IsSRGBFormat reports whether f is an sRGB-encoded format usable as a
// surface format. RGBA8UnormSrgb and BGRA8UnormSrgb are the only sRGB
// formats surfaces expose.
func IsSRGBFormat(f types.TextureFormat) bool {
	return f == types.TextureFormatRGBA8UnormSrgb || f == types.TextureFormatBGRA8UnormSrgb
}

// SRGBVariant returns the sRGB-encoded variant of f, or f itself when no
// such variant exists.
func SRGBVariant(f types.TextureFormat) types.TextureFormat {
	switch f {
	case types.TextureFormatRGBA8Unorm:
		return types.TextureFormatRGBA8UnormSrgb
	case types.TextureFormatBGRA8Unorm:
		return types.TextureFormatBGRA8UnormSrgb
	default:
		return f
	}
}
