package pixbuf

import (
	"slices"
	"testing"
)

func newTestResource(t *testing.T) *Resource {
	t.Helper()
	res, err := New(make([]uint8, 64), 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestCompressedFormats_Memoized(t *testing.T) {
	res := newTestResource(t)
	ctx := newFakeContext()
	ctx.extensions["GL_EXT_texture_compression_s3tc"] = true
	ctx.formats = []Enum{FormatCompressedRGBAS3TCDXT1, FormatCompressedRGBAS3TCDXT5}

	first := res.CompressedFormats(ctx)
	second := res.CompressedFormats(ctx)

	if ctx.formatQueries != 1 {
		t.Errorf("formatQueries = %d, want 1 (memoized)", ctx.formatQueries)
	}
	if !slices.Equal(first, second) {
		t.Errorf("results differ: %v vs %v", first, second)
	}
	if !slices.Equal(first, ctx.formats) {
		t.Errorf("formats = %v, want driver order %v", first, ctx.formats)
	}
}

func TestCompressedFormats_EmptyWithoutExtension(t *testing.T) {
	res := newTestResource(t)
	ctx := newFakeContext()
	ctx.formats = []Enum{FormatCompressedRGBETC1}

	if got := res.CompressedFormats(ctx); len(got) != 0 {
		t.Errorf("CompressedFormats() = %v, want empty", got)
	}
	if ctx.formatQueries != 0 {
		t.Errorf("formatQueries = %d, want 0 (extension gate)", ctx.formatQueries)
	}

	// The empty result is cached like any other.
	res.CompressedFormats(ctx)
	if ctx.formatQueries != 0 {
		t.Errorf("formatQueries = %d after second call, want 0", ctx.formatQueries)
	}
}

func TestCompressedFormats_AnyExtensionFamilyQueries(t *testing.T) {
	families := []string{
		"GL_EXT_texture_compression_s3tc",
		"GL_IMG_texture_compression_pvrtc",
		"GL_OES_compressed_ETC1_RGB8_texture",
		"GL_AMD_compressed_ATC_texture",
	}
	for _, family := range families {
		t.Run(family, func(t *testing.T) {
			res := newTestResource(t)
			ctx := newFakeContext()
			ctx.extensions[family] = true
			ctx.formats = []Enum{FormatCompressedRGBETC1}

			if got := res.CompressedFormats(ctx); !slices.Equal(got, ctx.formats) {
				t.Errorf("CompressedFormats() = %v, want %v", got, ctx.formats)
			}
			if ctx.formatQueries != 1 {
				t.Errorf("formatQueries = %d, want 1", ctx.formatQueries)
			}
		})
	}
}

func TestCompressedFormats_PerContext(t *testing.T) {
	res := newTestResource(t)

	a := newFakeContext()
	a.extensions["GL_EXT_texture_compression_s3tc"] = true
	a.formats = []Enum{FormatCompressedRGBAS3TCDXT5}

	b := newFakeContext()
	b.extensions["GL_OES_compressed_ETC1_RGB8_texture"] = true
	b.formats = []Enum{FormatCompressedRGBETC1}

	gotA := res.CompressedFormats(a)
	gotB := res.CompressedFormats(b)

	if !slices.Equal(gotA, a.formats) || !slices.Equal(gotB, b.formats) {
		t.Errorf("per-context results mixed up: %v / %v", gotA, gotB)
	}
	if a.formatQueries != 1 || b.formatQueries != 1 {
		t.Errorf("queries = %d/%d, want 1/1", a.formatQueries, b.formatQueries)
	}
}
