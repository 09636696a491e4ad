// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu adapts the pixbuf rendering-context contract to gogpu/wgpu.
//
// It implements pixbuf.Context over the wgpu HAL: full allocations create a
// new HAL texture and write the whole buffer, sub-region updates write into
// the existing texture with a non-zero origin. One texture is tracked per
// texture target, matching the GL binding model the contract mirrors.
//
// A Context can own its GPU device (New) or borrow a shared device from a
// gpucontext provider (NewShared), e.g. a gogpu application. Borrowed
// devices are never destroyed by Close.
//
// Block-compressed uploads are not available through this backend: the HAL
// does not surface the adapter feature bits for BC/ETC2/ASTC, so the
// context reports no compression extensions and pixbuf legally falls back
// to the uncompressed path.
package wgpu
