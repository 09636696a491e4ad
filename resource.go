package pixbuf

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/pixbuf/internal/memo"
)

// TextureInfo declares the logical texture a resource uploads into.
// It is produced and owned by the rendering pipeline; pixbuf only reads it.
type TextureInfo struct {
	// Target is the texture target (usually Texture2D).
	Target Enum

	// Format is the pixel format of the supplied data. A compressed
	// format identifier here selects the compressed upload path when the
	// driver supports it.
	Format Enum

	// Type is the element type of the supplied data.
	Type Enum

	// Width, Height are the logical texture dimensions in pixels.
	Width  int
	Height int

	// PremultiplyAlpha requests alpha premultiplication during transfer.
	PremultiplyAlpha bool
}

// TextureState is the pipeline's record of a physical GPU texture: the
// dimensions of its current allocation plus the storage parameters used
// when (re)allocating. pixbuf never mutates it; Upload returns an
// UploadInfo that the pipeline applies itself, keeping a single writer.
type TextureState struct {
	// Width, Height are the dimensions of the current GPU allocation.
	// Zero values mean the texture has no storage yet, which forces a
	// full allocation on the next upload.
	Width  int
	Height int

	// InternalFormat is the storage format used for full allocations.
	InternalFormat Enum

	// Type is the element type used for full allocations.
	Type Enum
}

// Apply records the size reported by a completed upload.
func (s *TextureState) Apply(info UploadInfo) {
	s.Width = info.Width
	s.Height = info.Height
}

// UploadInfo describes a completed upload. The rendering pipeline applies
// it to its own texture record (see TextureState.Apply).
type UploadInfo struct {
	// Width, Height are the texture dimensions after the upload.
	Width  int
	Height int

	// Reallocated is true when the upload replaced the GPU storage
	// instead of updating it in place.
	Reallocated bool

	// Compressed is true when the compressed transfer path was used.
	Compressed bool
}

// Resource references a client-owned pixel buffer with fixed dimensions
// and uploads it to GPU textures on demand.
//
// The buffer is referenced, not copied: the caller retains ownership and
// the reference stays valid until Dispose. Width and height are fixed at
// construction. A Resource is not safe for concurrent use.
type Resource struct {
	source any
	kind   Kind

	width  int
	height int

	// Compressed-format capability results, keyed by context identity.
	// Populated once per context and never re-queried (driver support
	// cannot change during a context's lifetime).
	formats *memo.Table[Context, []Enum]

	disposed atomic.Bool
}

// New creates a resource referencing source with the given fixed dimensions.
//
// Returns ErrInvalidDimensions when width or height is zero or negative,
// and ErrUnsupportedSource when source is not a []float32, []uint8 or
// []uint32 buffer. No resource is produced on failure.
func New(source any, width, height int) (*Resource, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	kind := Classify(source)
	if kind == KindInvalid {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, source)
	}

	return &Resource{
		source:  source,
		kind:    kind,
		width:   width,
		height:  height,
		formats: memo.New[Context, []Enum](),
	}, nil
}

// Width returns the declared width in pixels.
func (r *Resource) Width() int { return r.width }

// Height returns the declared height in pixels.
func (r *Resource) Height() int { return r.height }

// Kind returns the element kind of the referenced buffer.
func (r *Resource) Kind() Kind { return r.kind }

// Source returns the referenced buffer, or nil after Dispose.
func (r *Resource) Source() any { return r.source }

// IsDisposed reports whether Dispose has been called.
func (r *Resource) IsDisposed() bool { return r.disposed.Load() }

// Upload transfers the full buffer to the GPU texture described by meta.
//
// The upload path is chosen in two steps. The transfer is compressed when
// meta.Format is neither RGBA nor RGB and the driver reports it as a
// supported compressed format. The transfer updates storage in place when
// state's recorded dimensions already equal meta's; otherwise the GPU
// storage is (re)allocated at the new size.
//
// Upload returns the UploadInfo the pipeline should apply to its texture
// record, and ErrDisposed when called after Dispose. Driver-level failures
// are not detected here; they surface through the Context's own reporting.
func (r *Resource) Upload(ctx Context, meta *TextureInfo, state *TextureState) (UploadInfo, error) {
	if r.disposed.Load() {
		return UploadInfo{}, ErrDisposed
	}

	compressed := r.isCompressed(ctx, meta.Format)

	// The driver applies the premultiply flag globally to the next
	// transfer call, so it must be set first.
	ctx.PixelStore(UnpackPremultiplyAlpha, boolInt(meta.PremultiplyAlpha))

	data := byteView(r.source)
	inPlace := state.Width == meta.Width && state.Height == meta.Height

	switch {
	case compressed && inPlace:
		ctx.CompressedTexSubImage2D(meta.Target, 0, 0, 0, meta.Width, meta.Height, meta.Format, data)
	case compressed:
		ctx.CompressedTexImage2D(meta.Target, 0, meta.Format, meta.Width, meta.Height, 0, data)
	case inPlace:
		ctx.TexSubImage2D(meta.Target, 0, 0, 0, meta.Width, meta.Height, meta.Format, meta.Type, data)
	default:
		ctx.TexImage2D(meta.Target, 0, state.InternalFormat, meta.Width, meta.Height, 0, meta.Format, state.Type, data)
	}

	Logger().Debug("pixbuf: upload",
		"width", meta.Width, "height", meta.Height,
		"compressed", compressed, "reallocated", !inPlace)

	return UploadInfo{
		Width:       meta.Width,
		Height:      meta.Height,
		Reallocated: !inPlace,
		Compressed:  compressed,
	}, nil
}

// Dispose releases the buffer reference. The caller's buffer itself is
// untouched; the resource merely stops referencing it. Dispose is
// idempotent, and uploads after Dispose return ErrDisposed.
func (r *Resource) Dispose() {
	if r.disposed.Swap(true) {
		return // Already disposed
	}
	r.source = nil
	r.formats.Clear()
}

// String returns a string representation of the resource.
func (r *Resource) String() string {
	status := "active"
	if r.disposed.Load() {
		status = "disposed"
	}
	return fmt.Sprintf("Resource[%dx%d %s %s]", r.width, r.height, r.kind, status)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
