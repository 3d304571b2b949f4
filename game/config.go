package game

import (
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxelparty/engine/util"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const ConfigEnvVar = "VOXELPARTY_CONFIG"

type Config struct {
	World      WorldConfig      `yaml:"world"`
	Movement   MovementConfig   `yaml:"movement"`
	Dash       DashConfig       `yaml:"dash"`
	Camera     CameraConfig     `yaml:"camera"`
	Input      InputConfig      `yaml:"input"`
	Simulation SimulationConfig `yaml:"simulation"`
	Log        LogConfig        `yaml:"log"`
}

type WorldConfig struct {
	Width     int32         `yaml:"width"`
	Height    int32         `yaml:"height"`
	Depth     int32         `yaml:"depth"`
	VoxelSize float32       `yaml:"voxel_size"`
	Terrain   TerrainConfig `yaml:"terrain"`
}

type MovementConfig struct {
	KeyboardSpeed   float32    `yaml:"keyboard_speed"`
	GamepadSpeed    float32    `yaml:"gamepad_speed"`
	SpeedMultiplier float32    `yaml:"speed_multiplier"`
	Acceleration    float32    `yaml:"acceleration"`
	Friction        float32    `yaml:"friction"`
	PlayerSize      [3]float32 `yaml:"player_size"`
	SpawnHeight     float32    `yaml:"spawn_height"`
}

type DashConfig struct {
	Impulse        float32 `yaml:"impulse"`
	Speed          float32 `yaml:"speed"`
	Cooldown       float32 `yaml:"cooldown"`
	Duration       float32 `yaml:"duration"`
	RecoveryWindow float32 `yaml:"recovery_window"`
	RecoveryRate   float32 `yaml:"recovery_rate"`
}

type CameraConfig struct {
	Offset       float32 `yaml:"offset"`
	Height       float32 `yaml:"height"`
	AngleDegrees float32 `yaml:"angle_degrees"`
	Smoothing    float32 `yaml:"smoothing"`
	FOV          float32 `yaml:"fov"`
	Near         float32 `yaml:"near"`
	Far          float32 `yaml:"far"`
	PanSpeed     float32 `yaml:"pan_speed"`
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
}

type InputConfig struct {
	Deadzone         float32 `yaml:"deadzone"`
	MaxGamepads      int     `yaml:"max_gamepads"`
	KeyHoldMillis    int     `yaml:"key_hold_millis"`
	AutoJoinKeyboard bool    `yaml:"auto_join_keyboard"`
}

type SimulationConfig struct {
	MaxStep   float32 `yaml:"max_step"`
	FrameRate int     `yaml:"frame_rate"`
	ColorSeed int64   `yaml:"color_seed"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:     25,
			Height:    25,
			Depth:     25,
			VoxelSize: 1.0,
			Terrain: TerrainConfig{
				Generator:      TerrainFlat,
				Seed:           1,
				Scale:          0.15,
				Threshold:      0.6,
				MaxHeight:      3,
				SpawnClearance: 3,
			},
		},
		Movement: MovementConfig{
			KeyboardSpeed:   5.0,
			GamepadSpeed:    8.0,
			SpeedMultiplier: 1.5,
			Acceleration:    3.0,
			Friction:        5.0,
			PlayerSize:      [3]float32{0.5, 1.0, 0.5},
			SpawnHeight:     1.0,
		},
		Dash: DashConfig{
			Impulse:        15.0,
			Speed:          20.0,
			Cooldown:       0.8,
			Duration:       0.2,
			RecoveryWindow: 0.03,
			RecoveryRate:   5.0,
		},
		Camera: CameraConfig{
			Offset:       15,
			Height:       25,
			AngleDegrees: 45,
			Smoothing:    0.2,
			FOV:          60,
			Near:         0.1,
			Far:          1000,
			PanSpeed:     10,
			WindowWidth:  800,
			WindowHeight: 600,
		},
		Input: InputConfig{
			Deadzone:         0.1,
			MaxGamepads:      4,
			KeyHoldMillis:    150,
			AutoJoinKeyboard: true,
		},
		Simulation: SimulationConfig{
			MaxStep:   1.0 / 60.0,
			FrameRate: 60,
			ColorSeed: 1,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig overlays the YAML file at path on DefaultConfig. An empty path
// falls back to $VOXELPARTY_CONFIG; without either the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv(ConfigEnvVar)
		if path == "" {
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 || c.World.Depth <= 0 {
		return errors.Errorf("world dimensions must be positive, got %dx%dx%d", c.World.Width, c.World.Height, c.World.Depth)
	}
	if c.World.VoxelSize <= 0 {
		return errors.New("world.voxel_size must be positive")
	}
	if err := c.World.Terrain.Validate(); err != nil {
		return errors.Wrap(err, "world.terrain")
	}
	for i, s := range c.Movement.PlayerSize {
		if s <= 0 {
			return errors.Errorf("movement.player_size[%d] must be positive", i)
		}
	}
	if err := c.MotionParams().Validate(); err != nil {
		return errors.Wrap(err, "motion")
	}
	if c.Simulation.MaxStep <= 0 {
		return errors.New("simulation.max_step must be positive")
	}
	if c.Camera.WindowWidth <= 0 || c.Camera.WindowHeight <= 0 {
		return errors.New("camera window size must be positive")
	}
	if c.Input.MaxGamepads < 0 {
		return errors.New("input.max_gamepads must not be negative")
	}
	if _, ok := util.ParseLogLevel(c.Log.Level); !ok {
		return errors.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

func (c Config) MotionParams() MotionParams {
	return MotionParams{
		SpeedMultiplier:    c.Movement.SpeedMultiplier,
		Acceleration:       c.Movement.Acceleration,
		Friction:           c.Movement.Friction,
		DashImpulse:        c.Dash.Impulse,
		DashSpeed:          c.Dash.Speed,
		DashCooldown:       c.Dash.Cooldown,
		DashDuration:       c.Dash.Duration,
		DashRecoveryWindow: c.Dash.RecoveryWindow,
		DashRecoveryRate:   c.Dash.RecoveryRate,
	}
}

// SpawnPoint is where joining players appear: the horizontal centre of the
// world at spawn height.
func (c Config) SpawnPoint() mgl32.Vec3 {
	vs := c.World.VoxelSize
	return mgl32.Vec3{
		float32(c.World.Width) * vs / 2,
		c.Movement.SpawnHeight,
		float32(c.World.Depth) * vs / 2,
	}
}

func (c Config) PlayerSize() mgl32.Vec3 {
	return mgl32.Vec3(c.Movement.PlayerSize)
}

func (c Config) CameraSettings() util.FollowCameraSettings {
	w := float32(c.World.Width) * c.World.VoxelSize
	d := float32(c.World.Depth) * c.World.VoxelSize
	return util.FollowCameraSettings{
		Position:     mgl32.Vec3{w, c.Camera.Height, d},
		Target:       mgl32.Vec3{w / 2, 0, d / 2},
		Offset:       c.Camera.Offset,
		Height:       c.Camera.Height,
		AngleDegrees: c.Camera.AngleDegrees,
		Smoothing:    c.Camera.Smoothing,
		FOV:          c.Camera.FOV,
		Near:         c.Camera.Near,
		Far:          c.Camera.Far,
		PanSpeed:     c.Camera.PanSpeed,
		WindowWidth:  c.Camera.WindowWidth,
		WindowHeight: c.Camera.WindowHeight,
	}
}
