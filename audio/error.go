package audio

import (
	"fmt"
)

type ErrorKind uint8

const (
	KindInitFailed ErrorKind = iota + 1
	KindLoadFailed
	KindPlaybackFailed
)

func (k ErrorKind) String() string {
	switch k {
	case KindInitFailed:
		return "InitFailed"
	case KindLoadFailed:
		return "LoadFailed"
	case KindPlaybackFailed:
		return "PlaybackFailed"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Sentinel errors to be used with errors.Is to check the kind of an error.
var (
	ErrInitFailed     = &Error{Kind: KindInitFailed}
	ErrLoadFailed     = &Error{Kind: KindLoadFailed}
	ErrPlaybackFailed = &Error{Kind: KindPlaybackFailed}
)

type Error struct {
	Kind ErrorKind

	// Path of the sound file, only set for LoadFailed
	Path string

	Reason string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInitFailed:
		return fmt.Sprintf("failed to initialize audio backend: %s", e.Reason)
	case KindLoadFailed:
		return fmt.Sprintf("failed to load audio file %q: %s", e.Path, e.Reason)
	case KindPlaybackFailed:
		return fmt.Sprintf("audio playback failed: %s", e.Reason)
	default:
		return fmt.Sprintf("audio error %s: %s", e.Kind, e.Reason)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Kind == e.Kind
}

func initFailed(err error) error {
	return &Error{Kind: KindInitFailed, Reason: err.Error(), Err: err}
}

func loadFailed(path string, err error) error {
	return &Error{Kind: KindLoadFailed, Path: path, Reason: err.Error(), Err: err}
}

func playbackFailed(err error) error {
	return &Error{Kind: KindPlaybackFailed, Reason: err.Error(), Err: err}
}
