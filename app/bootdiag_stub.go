//go:build !(tinygo && bootdebug)

package app

import "spincube/hal"

func bootDiagSetStep(string) {}

func bootDiagStart(hal.HAL) {}
