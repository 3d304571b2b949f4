package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/faiface/mainthread"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/memmaker/voxelparty/client"
	"github.com/memmaker/voxelparty/engine/util"
	"github.com/memmaker/voxelparty/game"
	"github.com/pkg/errors"
)

const clearScreen = "\x1b[H\x1b[2J"

func main() {
	configPath := flag.String("config", "", "YAML config file (default $"+game.ConfigEnvVar+")")
	logLevel := flag.String("log", "", "log level override: error, warning, info or debug")
	flag.Parse()

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	mainthread.Run(func() {
		if err := run(cfg); err != nil {
			util.LogSystemError(fmt.Sprintf("[Main] %v", err))
			os.Exit(1)
		}
	})
}

func run(cfg game.Config) error {
	level, ok := util.ParseLogLevel(cfg.Log.Level)
	if !ok {
		return errors.Errorf("unknown log level %q", cfg.Log.Level)
	}
	util.SetLogLevel(level)

	voxelGame, err := game.NewGame(cfg)
	if err != nil {
		return errors.Wrap(err, "starting game")
	}

	keyboard, err := client.NewKeyboard(os.Stdin, time.Duration(cfg.Input.KeyHoldMillis)*time.Millisecond)
	if err != nil {
		return err
	}
	defer keyboard.Close()

	pads := initGamepads(cfg)
	if pads != nil {
		defer mainthread.Call(glfw.Terminate)
	}

	timer := util.NewTimer()
	app := &util.Application{FrameRate: cfg.Simulation.FrameRate}
	redrawEvery := uint64(cfg.Simulation.FrameRate / 10)
	if redrawEvery == 0 {
		redrawEvery = 1
	}

	app.UpdateFunc = func(elapsed float64) bool {
		keys := keyboard.Poll()
		if keys.Quit {
			return false
		}
		frame := frameFromKeyboard(keys)
		if pads != nil {
			mainthread.Call(func() {
				glfw.PollEvents()
				pads.Poll(&frame)
			})
		}
		if ray, ok := voxelGame.Camera().GetCenterRay(); ok {
			frame.Ray = &ray
		}

		stop := timer.Start("update")
		report := voxelGame.Update(frame, float32(elapsed))
		stop()

		if report.Edit.Outcome == game.EditBlocked {
			util.LogEditorDebug(fmt.Sprintf("[Main] Edit refused: %s", report.Edit))
		}
		return true
	}
	app.DrawFunc = func(elapsed float64) {
		if app.Ticks()%redrawEvery != 0 {
			return
		}
		snap := voxelGame.Snapshot()
		fmt.Print(clearScreen + client.RenderTopDown(snap) + client.StatusLine(snap) + "\r\n" + app.FPSStats() + "\r\n")
	}
	app.Run()

	util.LogSystemInfo("[Main] Frame timings:\r\n" + timer.String())
	return nil
}

// initGamepads returns nil when glfw is unavailable; the keyboard player can
// still play alone.
func initGamepads(cfg game.Config) *client.Gamepads {
	if cfg.Input.MaxGamepads == 0 {
		return nil
	}
	var initErr error
	mainthread.Call(func() {
		initErr = glfw.Init()
	})
	if initErr != nil {
		util.LogInputWarning(fmt.Sprintf("[Main] Gamepads disabled: %v", initErr))
		return nil
	}
	return client.NewGamepads(cfg.Input.MaxGamepads, cfg.Input.Deadzone)
}

func frameFromKeyboard(keys client.KeyboardFrame) game.FrameInput {
	frame := game.NewFrameInput()
	frame.Players[game.KeyboardPlayer] = game.PlayerFrame{Movement: keys.Movement, Dash: keys.Dash}
	if keys.Join {
		frame.Joins = append(frame.Joins, game.JoinRequest{ID: game.KeyboardPlayer, Device: game.DeviceKeyboard})
	}
	frame.ToggleEditor = keys.ToggleEditor
	frame.ToggleMode = keys.ToggleMode
	frame.Click = keys.Click
	frame.Pan = keys.Pan
	return frame
}
