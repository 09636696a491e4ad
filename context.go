package pixbuf

// Enum is a GL-style numeric constant used for formats, element types,
// texture targets and pixel-store parameters.
type Enum uint32

// Uncompressed pixel formats.
const (
	// FormatRGB is the standard uncompressed RGB format.
	FormatRGB Enum = 0x1907

	// FormatRGBA is the standard uncompressed RGBA format.
	FormatRGBA Enum = 0x1908
)

// Pixel element types.
const (
	// TypeUnsignedByte is an 8-bit unsigned integer channel.
	TypeUnsignedByte Enum = 0x1401

	// TypeUnsignedInt is a 32-bit unsigned integer channel.
	TypeUnsignedInt Enum = 0x1405

	// TypeFloat is a 32-bit floating point channel.
	TypeFloat Enum = 0x1406
)

// Texture targets.
const (
	// Texture2D is the standard two-dimensional texture target.
	Texture2D Enum = 0x0DE1
)

// Pixel-store parameters.
const (
	// UnpackPremultiplyAlpha controls whether the driver premultiplies
	// alpha into the color channels during the next transfer. The flag is
	// global driver state, so it must be set before every transfer call.
	UnpackPremultiplyAlpha Enum = 0x9241
)

// Block-compressed format identifiers. A driver only accepts these when the
// matching compression extension is present; see CompressedFormats.
const (
	FormatCompressedRGBS3TCDXT1  Enum = 0x83F0
	FormatCompressedRGBAS3TCDXT1 Enum = 0x83F1
	FormatCompressedRGBAS3TCDXT3 Enum = 0x83F2
	FormatCompressedRGBAS3TCDXT5 Enum = 0x83F3

	FormatCompressedRGBPVRTC4  Enum = 0x8C00
	FormatCompressedRGBPVRTC2  Enum = 0x8C01
	FormatCompressedRGBAPVRTC4 Enum = 0x8C02
	FormatCompressedRGBAPVRTC2 Enum = 0x8C03

	FormatCompressedRGBETC1 Enum = 0x8D64

	FormatCompressedRGBATC              Enum = 0x8C92
	FormatCompressedRGBAATCExplicit     Enum = 0x8C93
	FormatCompressedRGBAATCInterpolated Enum = 0x87EE
)

// compressedTextureExtensions lists the four compression extension families.
// A driver that exposes any of them reports its format list through the
// compressed-texture-formats parameter query.
var compressedTextureExtensions = [...]string{
	"GL_EXT_texture_compression_s3tc",
	"GL_IMG_texture_compression_pvrtc",
	"GL_OES_compressed_ETC1_RGB8_texture",
	"GL_AMD_compressed_ATC_texture",
}

// Context is the rendering context through which pixbuf issues low-level
// driver calls. It abstracts the transfer primitives of a GL-style driver;
// backend/wgpu provides an implementation for the GoGPU stack, and tests
// use in-package fakes.
//
// Implementations must be comparable (in practice: a pointer type), because
// capability query results are memoized per context identity.
//
// Transfer calls carry no error return. A driver-level failure surfaces
// through whatever reporting convention the implementation uses (GL error
// flags, logging); pixbuf adds no wrapping of its own.
type Context interface {
	// HasExtension reports whether the driver exposes the named extension.
	HasExtension(name string) bool

	// CompressedTextureFormats returns the driver's supported compressed
	// format identifiers in driver-reported order. Callers should go
	// through Resource.CompressedFormats, which memoizes the result.
	CompressedTextureFormats() []Enum

	// PixelStore sets a pixel transfer parameter. The value applies
	// globally to subsequent transfer calls.
	PixelStore(pname Enum, param int)

	// TexImage2D allocates texture storage and transfers pixel data.
	// internalFormat describes the allocation; format and typ describe
	// the layout of data.
	TexImage2D(target Enum, level int, internalFormat Enum, width, height, border int, format, typ Enum, data []byte)

	// TexSubImage2D transfers pixel data into existing texture storage.
	TexSubImage2D(target Enum, level, x, y, width, height int, format, typ Enum, data []byte)

	// CompressedTexImage2D allocates texture storage from pre-compressed
	// data. format is both the allocation and the data format.
	CompressedTexImage2D(target Enum, level int, format Enum, width, height, border int, data []byte)

	// CompressedTexSubImage2D transfers pre-compressed data into existing
	// texture storage.
	CompressedTexSubImage2D(target Enum, level, x, y, width, height int, format Enum, data []byte)
}
