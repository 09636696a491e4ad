// Package pixbuf synchronizes client-owned pixel buffers with GPU textures.
//
// # Overview
//
// pixbuf manages the upload path between an in-memory pixel buffer (a
// []float32, []uint8 or []uint32 slice owned by the caller) and a GPU
// texture. It decides, per upload, whether the target format is compressed
// or uncompressed and whether the GPU texture can be updated in place or
// must be reallocated, then issues the matching transfer call on the
// rendering context.
//
// # Quick Start
//
//	import "github.com/gogpu/pixbuf"
//
//	// Wrap a caller-owned buffer. The buffer is referenced, not copied.
//	pixels := make([]float32, 4*4*4)
//	res, err := pixbuf.New(pixels, 4, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer res.Dispose()
//
//	// Once per frame: push the buffer to the GPU texture.
//	info, err := res.Upload(ctx, &meta, &state)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	state.Apply(info) // the pipeline records the new texture size
//
// # Architecture
//
// The library is organized into:
//   - Public API: Resource, Context, TextureInfo, TextureState
//   - Capability query: per-context memoized compressed-format detection
//   - Backends: backend/wgpu adapts the Context contract to gogpu/wgpu HAL
//
// The Context interface mirrors the low-level transfer primitives of a
// GL-style driver (full and sub-region uploads, compressed and plain).
// Any implementation works; backend/wgpu is provided for the GoGPU stack.
//
// # Ownership
//
// A Resource never copies or mutates the source buffer. The caller keeps
// true ownership and must not free or resize the buffer before Dispose.
// GPU-side storage belongs to the rendering pipeline: Upload reports the
// new recorded texture size instead of mutating the pipeline's handle.
package pixbuf

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
