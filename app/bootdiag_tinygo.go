//go:build tinygo && bootdebug

package app

import (
	"machine"
	"strconv"
	"sync"
	"time"

	"spincube/hal"
)

var (
	bootDiagMu    sync.Mutex
	bootDiagStep  string
	bootDiagSince time.Time
)

func bootDiagSetStep(msg string) {
	bootDiagMu.Lock()
	bootDiagStep = msg
	bootDiagSince = time.Now()
	bootDiagMu.Unlock()
}

// bootDiagStart reports the current boot step every 250ms on the logger and
// on USB CDC, so a hang shows where it happened without a UART adapter.
func bootDiagStart(h hal.HAL) {
	if h == nil {
		return
	}
	l := h.Logger()
	bootDiagSetStep("start")

	go func() {
		for {
			bootDiagMu.Lock()
			step, since := bootDiagStep, bootDiagSince
			bootDiagMu.Unlock()

			if step == "running" {
				return
			}
			line := "bootdiag: " + step + " +" + strconv.FormatInt(time.Since(since).Milliseconds(), 10) + "ms"
			if l != nil {
				l.WriteLineString(line)
			}
			if usb := machine.USBCDC; usb != nil {
				_, _ = usb.Write([]byte(line + "\r\n"))
			}
			time.Sleep(250 * time.Millisecond)
		}
	}()
}
