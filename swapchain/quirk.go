// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

import (
	"runtime"
	"strings"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// TimeoutPolicy decides whether a surface acquisition timeout may be
// swallowed on the current platform and adapter population. Injecting a
// fake policy keeps the acquisition state machine testable on any host.
type TimeoutPolicy interface {
	// IgnorableTimeout reports whether an acquisition timeout should be
	// treated as a benign driver quirk rather than a fatal error.
	IgnorableTimeout() bool
}

// FatalTimeouts treats every acquisition timeout as fatal. This is the
// correct policy everywhere the quirk below is not known to occur: a
// timeout there is still probably the symptom of a degraded,
// unrecoverable application state.
type FatalTimeouts struct{}

// IgnorableTimeout always returns false.
func (FatalTimeouts) IgnorableTimeout() bool { return false }

// IgnoreTimeouts treats every acquisition timeout as ignorable.
// Intended for tests and for hosts that have made their own judgment.
type IgnoreTimeouts struct{}

// IgnorableTimeout always returns true.
func (IgnoreTimeouts) IgnorableTimeout() bool { return true }

// affectedVendorPrefixes are adapter-name prefixes of vendors whose
// Linux mesa drivers are known to time out spuriously on acquisition.
var affectedVendorPrefixes = []string{"Radeon", "AMD", "Intel"}

// VulkanVendorQuirk reports timeouts as ignorable when any enumerated
// Vulkan-capable adapter belongs to a vendor on the affected list. Some
// mesa driver implementations hit recurring acquisition timeouts that
// are a quirk of the driver, not a degraded application state.
//
// Adapter enumeration runs once, on first use, and the result is cached
// for the lifetime of the policy.
type VulkanVendorQuirk struct {
	once      sync.Once
	ignorable bool

	// enumerate overrides adapter-name enumeration in tests. When nil,
	// the Vulkan backend is queried through hal.
	enumerate func() []string
}

// IgnorableTimeout reports whether an affected Vulkan adapter is present.
func (q *VulkanVendorQuirk) IgnorableTimeout() bool {
	q.once.Do(func() {
		names := q.enumerate
		if names == nil {
			names = enumerateVulkanAdapterNames
		}
		for _, name := range names() {
			for _, prefix := range affectedVendorPrefixes {
				if strings.HasPrefix(name, prefix) {
					q.ignorable = true
					return
				}
			}
		}
	})
	return q.ignorable
}

// enumerateVulkanAdapterNames returns the names of all adapters exposed
// by the Vulkan backend, or nil when the backend is unavailable.
func enumerateVulkanAdapterNames() []string {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil
	}
	adapters := instance.EnumerateAdapters(nil)
	names := make([]string, 0, len(adapters))
	for i := range adapters {
		names = append(names, adapters[i].Info.Name)
	}
	return names
}

// DefaultTimeoutPolicy returns the timeout policy for the host platform:
// the mesa quirk is only known to occur on Linux, so every other
// platform keeps timeouts fatal.
func DefaultTimeoutPolicy() TimeoutPolicy {
	if runtime.GOOS == "linux" {
		return &VulkanVendorQuirk{}
	}
	return FatalTimeouts{}
}
