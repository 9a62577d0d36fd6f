package assets

import (
	"fmt"
)

type ErrorKind uint8

const (
	KindNotFound ErrorKind = iota + 1
	KindGltfLoadFailed
	KindImageLoadFailed
	KindIo
	KindUnsupportedFormat
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindGltfLoadFailed:
		return "GltfLoadFailed"
	case KindImageLoadFailed:
		return "ImageLoadFailed"
	case KindIo:
		return "Io"
	case KindUnsupportedFormat:
		return "UnsupportedFormat"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Sentinel errors to be used with errors.Is to check the kind of an error.
var (
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrGltfLoadFailed    = &Error{Kind: KindGltfLoadFailed}
	ErrImageLoadFailed   = &Error{Kind: KindImageLoadFailed}
	ErrIo                = &Error{Kind: KindIo}
	ErrUnsupportedFormat = &Error{Kind: KindUnsupportedFormat}
)

// Error is returned by all loading operations of this package.
type Error struct {
	Kind ErrorKind
	Path string

	// Human readable reason, set for GltfLoadFailed, ImageLoadFailed and UnsupportedFormat.
	Reason string

	// The underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("asset not found: %s", e.Path)
	case KindGltfLoadFailed:
		return fmt.Sprintf("failed to load glTF file %q: %s", e.Path, e.Reason)
	case KindImageLoadFailed:
		return fmt.Sprintf("failed to load image %q: %s", e.Path, e.Reason)
	case KindIo:
		return fmt.Sprintf("I/O error loading %q: %s", e.Path, e.Err)
	case KindUnsupportedFormat:
		return fmt.Sprintf("unsupported image format in %q", e.Path)
	default:
		return fmt.Sprintf("asset error %s in %q", e.Kind, e.Path)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. An UnsupportedFormat
// error is also an ImageLoadFailed error.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}

	if e.Kind == KindUnsupportedFormat && other.Kind == KindImageLoadFailed {
		return true
	}

	return other.Kind == e.Kind
}

func notFound(path string) error {
	return &Error{Kind: KindNotFound, Path: path}
}

func gltfLoadFailed(path string, err error) error {
	return &Error{Kind: KindGltfLoadFailed, Path: path, Reason: err.Error(), Err: err}
}

func imageLoadFailed(path string, err error) error {
	return &Error{Kind: KindImageLoadFailed, Path: path, Reason: err.Error(), Err: err}
}

func ioError(path string, err error) error {
	return &Error{Kind: KindIo, Path: path, Err: err}
}

func unsupportedFormat(path string, err error) error {
	return &Error{Kind: KindUnsupportedFormat, Path: path, Reason: err.Error(), Err: err}
}
