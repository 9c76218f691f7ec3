// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import "fmt"

// PresentMode controls how frames are delivered to the display.
// Requested modes map 1:1 onto the backend; there is no silent
// substitution.
type PresentMode uint8

const (
	// PresentModeFifo presents frames in submission order, locked to
	// vblank. Supported everywhere; the default.
	PresentModeFifo PresentMode = iota

	// PresentModeFifoRelaxed is Fifo, but a late frame may tear instead
	// of waiting for the next vblank.
	PresentModeFifoRelaxed

	// PresentModeMailbox replaces the queued frame with the newest one.
	// Low latency without tearing where supported.
	PresentModeMailbox

	// PresentModeImmediate presents without waiting for vblank. May tear.
	PresentModeImmediate

	// PresentModeAutoVsync lets the backend pick a non-tearing mode.
	PresentModeAutoVsync

	// PresentModeAutoNoVsync lets the backend pick a low-latency mode.
	PresentModeAutoNoVsync
)

// String returns the string representation of the present mode.
func (m PresentMode) String() string {
	switch m {
	case PresentModeFifo:
		return "Fifo"
	case PresentModeFifoRelaxed:
		return "FifoRelaxed"
	case PresentModeMailbox:
		return "Mailbox"
	case PresentModeImmediate:
		return "Immediate"
	case PresentModeAutoVsync:
		return "AutoVsync"
	case PresentModeAutoNoVsync:
		return "AutoNoVsync"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(m))
	}
}

// AlphaMode controls how a surface is composited with other OS windows.
type AlphaMode uint8

const (
	// AlphaModeAuto lets the backend choose a supported mode.
	AlphaModeAuto AlphaMode = iota

	// AlphaModeOpaque ignores the alpha channel.
	AlphaModeOpaque

	// AlphaModePreMultiplied expects color channels premultiplied by alpha.
	AlphaModePreMultiplied

	// AlphaModePostMultiplied expects straight (non-premultiplied) alpha.
	AlphaModePostMultiplied

	// AlphaModeInherit defers to platform-native behavior.
	AlphaModeInherit
)

// String returns the string representation of the alpha mode.
func (m AlphaMode) String() string {
	switch m {
	case AlphaModeAuto:
		return "Auto"
	case AlphaModeOpaque:
		return "Opaque"
	case AlphaModePreMultiplied:
		return "PreMultiplied"
	case AlphaModePostMultiplied:
		return "PostMultiplied"
	case AlphaModeInherit:
		return "Inherit"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(m))
	}
}
