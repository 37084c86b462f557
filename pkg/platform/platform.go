// Package platform wraps optional, cosmetic OS integration. Every function
// may fail with ErrUnsupported and callers are expected to carry on.
package platform

import "errors"

var ErrUnsupported = errors.New("not supported on this platform")
