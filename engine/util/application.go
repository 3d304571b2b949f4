package util

import (
	"fmt"
	"math"
	"time"
)

// Application runs a fixed-rate frame loop without a window. UpdateFunc
// returns false to stop the loop.
type Application struct {
	TerminateFunc   func()
	UpdateFunc      func(elapsed float64) bool
	DrawFunc        func(elapsed float64)
	FrameRate       int
	ticks           uint64
	FramesPerSecond float64
	FPSRunningAvg   float64
	FPSMin          float64
	FPSMax          float64
	now             func() time.Time
	sleep           func(time.Duration)
}

func (a *Application) Run() {
	if a.TerminateFunc != nil {
		defer a.TerminateFunc()
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.sleep == nil {
		a.sleep = time.Sleep
	}
	frameTime := time.Second / 60
	if a.FrameRate > 0 {
		frameTime = time.Second / time.Duration(a.FrameRate)
	}
	a.FPSMin = math.MaxFloat64

	previousTime := a.now()
	for {
		frameStart := a.now()
		elapsed := frameStart.Sub(previousTime).Seconds()
		previousTime = frameStart

		if !a.UpdateFunc(elapsed) {
			return
		}
		if a.DrawFunc != nil {
			a.DrawFunc(elapsed)
		}
		a.recordFrame(elapsed)

		if spent := a.now().Sub(frameStart); spent < frameTime {
			a.sleep(frameTime - spent)
		}
	}
}

func (a *Application) recordFrame(elapsed float64) {
	a.ticks++
	if elapsed <= 0 {
		return
	}
	a.FramesPerSecond = 1.0 / elapsed
	if a.ticks%60 == 0 {
		a.FPSRunningAvg = 0
		a.FPSMin = math.MaxFloat64
		a.FPSMax = 0
	}
	a.FPSRunningAvg = a.FPSRunningAvg + a.FramesPerSecond*(1.0/60.0)
	if a.FramesPerSecond < a.FPSMin {
		a.FPSMin = a.FramesPerSecond
	}
	if a.FramesPerSecond > a.FPSMax {
		a.FPSMax = a.FramesPerSecond
	}
}

func (a *Application) Ticks() uint64 {
	return a.ticks
}

func (a *Application) FPSStats() string {
	return fmt.Sprintf("FPS: %.0f (Min: %.0f, Max: %.0f)", a.FramesPerSecond, a.FPSMin, a.FPSMax)
}
