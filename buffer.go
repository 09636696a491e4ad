package pixbuf

import (
	"fmt"
	"unsafe"
)

// Kind identifies the element type of a source pixel buffer.
type Kind uint8

const (
	// KindInvalid marks a source that is not a supported pixel buffer.
	KindInvalid Kind = iota

	// KindUint8 is a []uint8 (or []byte) buffer.
	KindUint8

	// KindUint32 is a []uint32 buffer.
	KindUint32

	// KindFloat32 is a []float32 buffer.
	KindFloat32
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindUint8:
		return "uint8"
	case KindUint32:
		return "uint32"
	case KindFloat32:
		return "float32"
	case KindInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// Classify reports the pixel buffer kind of source. It is a pure, stateless
// predicate: external resource factories use it to decide whether a source
// belongs to this resource type before constructing anything.
func Classify(source any) Kind {
	switch source.(type) {
	case []uint8:
		return KindUint8
	case []uint32:
		return KindUint32
	case []float32:
		return KindFloat32
	default:
		return KindInvalid
	}
}

// Supported reports whether source is one of the three supported pixel
// buffer element kinds.
func Supported(source any) bool {
	return Classify(source) != KindInvalid
}

// byteView reinterprets the source buffer as raw bytes without copying.
// The returned slice aliases the source memory and is only valid while the
// caller holds the source alive.
func byteView(source any) []byte {
	switch s := source.(type) {
	case []uint8:
		return s
	case []uint32:
		if len(s) == 0 {
			return nil
		}
		return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*4)
	case []float32:
		if len(s) == 0 {
			return nil
		}
		return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*4)
	default:
		return nil
	}
}
