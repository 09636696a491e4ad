package pixbuf

import "slices"

// CompressedFormats returns the compressed texture format identifiers the
// context's driver supports, in driver-reported order. When none of the
// four compression extension families is present the result is empty;
// that is not a failure.
//
// The result is memoized per context identity for the lifetime of the
// resource: the driver is queried at most once per context, and the cached
// sequence is returned on every later call.
func (r *Resource) CompressedFormats(ctx Context) []Enum {
	return r.formats.GetOrCreate(ctx, func() []Enum {
		return queryCompressedFormats(ctx)
	})
}

// queryCompressedFormats performs the uncached driver query.
func queryCompressedFormats(ctx Context) []Enum {
	for _, ext := range compressedTextureExtensions {
		if ctx.HasExtension(ext) {
			return ctx.CompressedTextureFormats()
		}
	}
	return nil
}

// isCompressed classifies an upload: compressed iff format is neither of
// the standard uncompressed identifiers and the driver reports it as a
// supported compressed format.
func (r *Resource) isCompressed(ctx Context, format Enum) bool {
	if format == FormatRGBA || format == FormatRGB {
		return false
	}
	return slices.Contains(r.CompressedFormats(ctx), format)
}
