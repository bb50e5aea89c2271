package gridtab

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates a file whose format is neither given
// explicitly nor recognizable from its extension.
var ErrUnsupportedFormat = errors.New("unsupported format")

// UnsupportedFormatError carries the offending path. It satisfies
// errors.Is(err, ErrUnsupportedFormat).
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %s", e.Path)
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}
