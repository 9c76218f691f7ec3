// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu defines the boundary between viewport and the GPU backend.
//
// viewport never creates a GPU device. The host application owns the
// instance, adapter and device, and hands them to viewport through the
// narrow interfaces in this package. This mirrors how gg receives its
// device from gogpu: the host implements the interfaces, viewport calls
// them, and the two never share concrete types.
//
// The interfaces model exactly what the presentation pipeline needs:
// creating a surface from raw window handles, querying supported surface
// formats, (re)configuring a surface, acquiring the next presentable
// texture, and encoding a render pass. Everything else about the GPU is
// out of scope.
//
// Acquisition failures are classified with the sentinel errors in this
// package (ErrSurfaceOutdated, ErrSurfaceTimeout, ...). Backends must
// wrap or return these sentinels so that errors.Is classification works;
// any unclassified error is treated as unrecoverable by the caller.
package gpu
