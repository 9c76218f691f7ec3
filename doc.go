// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package viewport manages the per-frame window-surface lifecycle of a
// real-time renderer: mirroring window state, configuring and acquiring
// swapchain textures, and dispatching cameras against the windows they
// target.
//
// # Overview
//
// Every frame flows through four stages in strict dependency order:
//
//  1. Extract — window.Mirror.Sync snapshots the windowing system's
//     current state (size, present mode, closures) into frame-local
//     ExtractedWindow values.
//  2. Configure — swapchain.Registry.CreateSurfaces creates or
//     reconfigures one GPU presentation surface per window, gated by
//     the cheap NeedsConfiguration pre-check.
//  3. Prepare — swapchain.Registry.Prepare acquires a presentable
//     texture for each surface, classifying and recovering from the
//     failure modes acquisition can produce.
//  4. Dispatch — Driver.Run invokes the render graph once per camera
//     and issues a clear-only pass on every acquired surface no camera
//     serviced, because a surface that was acquired must also be
//     submitted to and presented.
//
// Pipeline bundles the four stages for hosts with a single render loop;
// hosts with their own scheduler can run the stages directly as long as
// they preserve the ordering and run the configure stage on the main
// thread where the platform requires it.
//
// # Collaborators
//
// viewport owns no device, no windows, and no render graph. The host
// supplies the windowing state as plain data, the GPU through the
// interfaces in the gpu sub-package, and the render graph through the
// GraphRunner interface.
//
// # Quick Start
//
//	pipeline, err := viewport.NewPipeline(viewport.Options{
//	    Instance: instance,
//	    Adapter:  adapter,
//	    Device:   device,
//	})
//	if err != nil {
//	    return err
//	}
//
//	for running {
//	    err := pipeline.RunFrame(viewport.FrameInput{
//	        Windows: host.OpenWindows(),
//	        Closed:  host.ClosedWindows(),
//	        Cameras: scene.SortedCameras(),
//	        Encoder: frameEncoder,
//	        Graphs:  renderGraph,
//	    })
//	    if err != nil {
//	        return err
//	    }
//	}
package viewport
