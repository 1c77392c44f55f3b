//go:build !tinygo

package hal

import "context"

// RunHeadless runs the demo without a window or keyboard.
func RunHeadless(ctx context.Context, cfg HostConfig, run func(context.Context, HAL) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	h := newHostHAL(ctx, cfg, nullKeyboard{})
	return run(ctx, h)
}
