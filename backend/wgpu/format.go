// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixbuf"
)

// texelFormat maps a GL-style (format, type) pair to the HAL texture format
// used for allocation, plus the texel size in bytes.
//
// WebGPU has no 3-channel packed formats, so FormatRGB is unsupported here;
// callers should upload RGBA data through this backend.
func texelFormat(format, typ pixbuf.Enum) (gputypes.TextureFormat, int, bool) {
	switch {
	case format == pixbuf.FormatRGBA && typ == pixbuf.TypeUnsignedByte:
		return gputypes.TextureFormatRGBA8Unorm, 4, true
	case format == pixbuf.FormatRGBA && typ == pixbuf.TypeFloat:
		return gputypes.TextureFormatRGBA32Float, 16, true
	case format == pixbuf.FormatRGBA && typ == pixbuf.TypeUnsignedInt:
		return gputypes.TextureFormatRGBA32Uint, 16, true
	default:
		var zero gputypes.TextureFormat
		return zero, 0, false
	}
}
