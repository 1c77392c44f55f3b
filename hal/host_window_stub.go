//go:build !tinygo && !cgo

package hal

import (
	"context"
	"fmt"
)

// RunWindow needs ebiten, which needs cgo; use --terminal or --headless.
func RunWindow(_ HostConfig, _ func(context.Context, HAL) error) error {
	return fmt.Errorf("window mode: %w without cgo (build with CGO_ENABLED=1)", ErrNotImplemented)
}
