// Package config loads the demo settings with viper and watches the live
// animation parameters for changes on disk.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"scenedemo/internal/animation"

	"github.com/fsnotify/fsnotify"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type WindowConfig struct {
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	Title     string `mapstructure:"title"`
	TargetFPS int    `mapstructure:"targetFPS"`
}

type CameraConfig struct {
	Position []float32 `mapstructure:"position"`
	Fovy     float32   `mapstructure:"fovy"`
}

type ParamsConfig struct {
	RotationSpeed float32 `mapstructure:"rotationSpeed"`
	Opacity       float32 `mapstructure:"opacity"`
	Color         string  `mapstructure:"color"`
}

type PickingConfig struct {
	HighlightColor string `mapstructure:"highlightColor"`
}

type DropConfig struct {
	Direction []float32     `mapstructure:"direction"`
	Speed     float32       `mapstructure:"speed"`
	Duration  time.Duration `mapstructure:"duration"`
	Autostart bool          `mapstructure:"autostart"`
}

type SceneConfig struct {
	CubeName    string `mapstructure:"cubeName"`
	SphereCount int    `mapstructure:"sphereCount"`
	SphereColor string `mapstructure:"sphereColor"`
}

type Config struct {
	LogLevel string        `mapstructure:"logLevel"`
	LogFile  string        `mapstructure:"logFile"`
	Window   WindowConfig  `mapstructure:"window"`
	Camera   CameraConfig  `mapstructure:"camera"`
	Params   ParamsConfig  `mapstructure:"params"`
	Picking  PickingConfig `mapstructure:"picking"`
	Drop     DropConfig    `mapstructure:"drop"`
	Scene    SceneConfig   `mapstructure:"scene"`
}

// SetDefaults registers every key with its default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "Picking and animation demo")
	v.SetDefault("window.targetFPS", 60)

	v.SetDefault("camera.position", []float32{15, 16, 13})
	v.SetDefault("camera.fovy", 45)

	v.SetDefault("params.rotationSpeed", 0.3)
	v.SetDefault("params.opacity", 1.0)
	v.SetDefault("params.color", "#bdbdbd")

	v.SetDefault("picking.highlightColor", "#ff0000")

	v.SetDefault("drop.direction", []float32{0, -1, 0})
	v.SetDefault("drop.speed", 0.05)
	v.SetDefault("drop.duration", "3s")
	v.SetDefault("drop.autostart", true)

	v.SetDefault("scene.cubeName", "cube")
	v.SetDefault("scene.sphereCount", 4)
	v.SetDefault("scene.sphereColor", "#03483f")
}

// Flags declares the command line flags that override config keys.
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a JSON, YAML or TOML config file")
	fs.String("log-level", "info", "trace, debug, info, warn or error")
	fs.Float32("rotation-speed", 0.3, "camera orbit speed in radians per second")
	fs.Bool("no-drop", false, "do not start the drop automatically")
}

// New returns a viper instance with defaults set and flags bound. A config file is
// read when the "config" flag is non-empty.
func New(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("SCENEDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := bindFlag(v, fs, "logLevel", "log-level"); err != nil {
			return nil, err
		}
		if err := bindFlag(v, fs, "params.rotationSpeed", "rotation-speed"); err != nil {
			return nil, err
		}
		if f := fs.Lookup("no-drop"); f != nil && f.Changed {
			v.Set("drop.autostart", false)
		}
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			path, err := filepath.Abs(f.Value.String())
			if err != nil {
				return nil, fmt.Errorf("resolving config path: %w", err)
			}
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}
	return v, nil
}

func bindFlag(v *viper.Viper, fs *pflag.FlagSet, key, name string) error {
	f := fs.Lookup(name)
	if f == nil {
		return nil
	}
	if err := v.BindPFlag(key, f); err != nil {
		return fmt.Errorf("binding flag %q: %w", name, err)
	}
	return nil
}

// Load decodes and validates v.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if len(c.Camera.Position) != 3 {
		return fmt.Errorf("%w: camera.position needs 3 components, got %d", ErrInvalid, len(c.Camera.Position))
	}
	if len(c.Drop.Direction) != 3 {
		return fmt.Errorf("%w: drop.direction needs 3 components, got %d", ErrInvalid, len(c.Drop.Direction))
	}
	if c.Drop.Duration < 0 {
		return fmt.Errorf("%w: drop.duration must not be negative", ErrInvalid)
	}
	if c.Scene.SphereCount < 0 {
		return fmt.Errorf("%w: scene.sphereCount must not be negative", ErrInvalid)
	}
	if c.Scene.CubeName == "" {
		return fmt.Errorf("%w: scene.cubeName is empty", ErrInvalid)
	}
	for key, s := range map[string]string{
		"params.color":           c.Params.Color,
		"picking.highlightColor": c.Picking.HighlightColor,
		"scene.sphereColor":      c.Scene.SphereColor,
	} {
		if _, err := ParseColor(s); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
		}
	}
	return nil
}

// AnimationParams converts the params section. Call after Validate.
func (c Config) AnimationParams() animation.Params {
	color, _ := ParseColor(c.Params.Color)
	return animation.Params{
		RotationSpeed: c.Params.RotationSpeed,
		Opacity:       c.Params.Opacity,
		Color:         color,
	}
}

func (c Config) CameraPosition() rl.Vector3 {
	return vec3(c.Camera.Position)
}

func (c Config) DropDirection() rl.Vector3 {
	return vec3(c.Drop.Direction)
}

func (c Config) HighlightColor() rl.Color {
	color, _ := ParseColor(c.Picking.HighlightColor)
	return color
}

func (c Config) SphereColor() rl.Color {
	color, _ := ParseColor(c.Scene.SphereColor)
	return color
}

func vec3(v []float32) rl.Vector3 {
	if len(v) != 3 {
		return rl.Vector3{}
	}
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// ParseColor accepts "#rrggbb", "rrggbb" or "0xrrggbb".
func ParseColor(s string) (rl.Color, error) {
	h := strings.TrimSpace(s)
	h = strings.TrimPrefix(h, "#")
	h = strings.TrimPrefix(strings.TrimPrefix(h, "0x"), "0X")
	if len(h) != 6 {
		return rl.Color{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return rl.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Hex(uint32(n)), nil
}

// Hex builds an opaque colour from 0xRRGGBB.
func Hex(n uint32) rl.Color {
	return rl.NewColor(uint8(n>>16), uint8(n>>8), uint8(n), 255)
}

// WatchParams re-reads the config file whenever it changes and passes the new
// animation parameters to apply. apply runs on viper's watcher goroutine; invalid
// files are reported through onError and otherwise ignored.
func WatchParams(v *viper.Viper, apply func(animation.Params), onError func(error)) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		c, err := Load(v)
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("reloading %s: %w", e.Name, err))
			}
			return
		}
		apply(c.AnimationParams())
	})
	v.WatchConfig()
}
