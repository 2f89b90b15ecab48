package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var (
	// ErrInvalidLimit is returned when a clamp limit has min greater than max or an unknown kind.
	ErrInvalidLimit = errors.New("invalid camera limit")
	// ErrInvalidMode is returned for an unknown camera mode name.
	ErrInvalidMode = errors.New("invalid camera mode")
)

// EnvPrefix is prepended to environment overrides, e.g. OXY_RIG_ORBIT_FOVDEGREES.
const EnvPrefix = "OXY_RIG"

// Vec3Config is a three component vector as written in config files.
type Vec3Config struct {
	X float32 `json:"x" mapstructure:"x"`
	Y float32 `json:"y" mapstructure:"y"`
	Z float32 `json:"z" mapstructure:"z"`
}

// LimitConfig describes one axis limit. Kind is "clamp" or "wrap"; Min and Max apply to clamp only.
type LimitConfig struct {
	Kind string  `json:"kind" mapstructure:"kind"`
	Min  float32 `json:"min" mapstructure:"min"`
	Max  float32 `json:"max" mapstructure:"max"`
}

// OrbitConfig holds the initial orbit state of the primary camera.
type OrbitConfig struct {
	Mode       string     `json:"mode" mapstructure:"mode"`
	Offset     Vec3Config `json:"offset" mapstructure:"offset"`
	XAngle     float32    `json:"xAngle" mapstructure:"xAngle"`
	YAngle     float32    `json:"yAngle" mapstructure:"yAngle"`
	Target     Vec3Config `json:"target" mapstructure:"target"`
	FovDegrees float32    `json:"fovDegrees" mapstructure:"fovDegrees"`
	Limits     struct {
		X LimitConfig `json:"x" mapstructure:"x"`
		Y LimitConfig `json:"y" mapstructure:"y"`
		Z LimitConfig `json:"z" mapstructure:"z"`
	} `json:"limits" mapstructure:"limits"`
}

// SmoothingConfig tunes the placement solver.
type SmoothingConfig struct {
	Rate       float32 `json:"rate" mapstructure:"rate"`
	ClampBlend bool    `json:"clampBlend" mapstructure:"clampBlend"`
}

// FocusConfig tunes the focus tracker.
type FocusConfig struct {
	// Seed makes ForwardRandomized deterministic when non-zero.
	Seed                 uint64 `json:"seed" mapstructure:"seed"`
	CorrectedJitterScale bool   `json:"correctedJitterScale" mapstructure:"correctedJitterScale"`
	CorrectedFlatForward bool   `json:"correctedFlatForward" mapstructure:"correctedFlatForward"`
}

// ControllerConfig tunes the input controller.
type ControllerConfig struct {
	OrbitSpeed       float32 `json:"orbitSpeed" mapstructure:"orbitSpeed"`
	MouseSensitivity float32 `json:"mouseSensitivity" mapstructure:"mouseSensitivity"`
	ZoomSpeed        float32 `json:"zoomSpeed" mapstructure:"zoomSpeed"`
	MinRadius        float32 `json:"minRadius" mapstructure:"minRadius"`
	MaxRadius        float32 `json:"maxRadius" mapstructure:"maxRadius"`
}

// RigConfig is the full camera rig configuration.
type RigConfig struct {
	LogLevel     string           `json:"logLevel" mapstructure:"logLevel"`
	TickRate     int              `json:"tickRate" mapstructure:"tickRate"`
	FollowHeight float32          `json:"followHeight" mapstructure:"followHeight"`
	Orbit        OrbitConfig      `json:"orbit" mapstructure:"orbit"`
	Smoothing    SmoothingConfig  `json:"smoothing" mapstructure:"smoothing"`
	Focus        FocusConfig      `json:"focus" mapstructure:"focus"`
	Controller   ControllerConfig `json:"controller" mapstructure:"controller"`
}

// Loader reads a RigConfig from a file with defaults and environment overrides.
type Loader struct {
	mu     *sync.Mutex
	v      *viper.Viper
	path   string
	logger zerolog.Logger
}

// NewLoader creates a loader for the config file at path. The format follows the file extension.
// An empty path loads defaults and environment overrides only.
func NewLoader(path string, logger zerolog.Logger) *Loader {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
	}
	return &Loader{
		mu:     &sync.Mutex{},
		v:      v,
		path:   path,
		logger: logger.With().Str("component", "config").Logger(),
	}
}

// Load reads the config file at path and returns the validated configuration.
func Load(path string) (RigConfig, error) {
	return NewLoader(path, zerolog.Nop()).Load()
}

// Default returns the configuration used when no file overrides anything.
func Default() RigConfig {
	cfg, err := NewLoader("", zerolog.Nop()).decode()
	if err != nil {
		panic(fmt.Sprintf("config defaults do not decode: %v", err))
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("tickRate", 60)
	v.SetDefault("followHeight", 0)

	v.SetDefault("orbit.mode", camera.ModeThirdPersonOrbit.String())
	v.SetDefault("orbit.offset.x", 0)
	v.SetDefault("orbit.offset.y", 0.5)
	v.SetDefault("orbit.offset.z", -6)
	v.SetDefault("orbit.xAngle", 0)
	v.SetDefault("orbit.yAngle", 0)
	v.SetDefault("orbit.target.x", 0)
	v.SetDefault("orbit.target.y", 0)
	v.SetDefault("orbit.target.z", 0)
	v.SetDefault("orbit.fovDegrees", 45)
	v.SetDefault("orbit.limits.x.kind", camera.LimitClamp.String())
	v.SetDefault("orbit.limits.x.min", -2)
	v.SetDefault("orbit.limits.x.max", 20)
	v.SetDefault("orbit.limits.y.kind", camera.LimitWrap.String())
	v.SetDefault("orbit.limits.z.kind", camera.LimitWrap.String())

	v.SetDefault("smoothing.rate", camera.DefaultSmoothingRate)
	v.SetDefault("smoothing.clampBlend", true)

	v.SetDefault("focus.seed", 0)
	v.SetDefault("focus.correctedJitterScale", false)
	v.SetDefault("focus.correctedFlatForward", false)

	v.SetDefault("controller.orbitSpeed", 1.5)
	v.SetDefault("controller.mouseSensitivity", 0.15)
	v.SetDefault("controller.zoomSpeed", 0.5)
	v.SetDefault("controller.minRadius", 1)
	v.SetDefault("controller.maxRadius", 50)
}

// Load reads the file, if any, and returns the validated configuration.
func (l *Loader) Load() (RigConfig, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.path != "" {
		if err := l.v.ReadInConfig(); err != nil {
			return RigConfig{}, fmt.Errorf("error reading config file %s: %w", l.path, err)
		}
	}
	cfg, err := l.decode()
	if err != nil {
		return RigConfig{}, err
	}
	l.logger.Debug().Str("path", l.path).Str("mode", cfg.Orbit.Mode).Msg("config loaded")
	return cfg, nil
}

func (l *Loader) decode() (RigConfig, error) {
	var cfg RigConfig
	if err := l.v.Unmarshal(&cfg); err != nil {
		return RigConfig{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RigConfig{}, err
	}
	return cfg, nil
}

// Watch reloads the file on change and hands each valid configuration to onChange.
// Invalid edits are logged and skipped so the last good configuration stays in effect.
func (l *Loader) Watch(onChange func(RigConfig)) error {
	if l.path == "" {
		return errors.New("watch: no config file")
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		l.mu.Lock()
		cfg, err := l.decode()
		l.mu.Unlock()
		if err != nil {
			l.logger.Error().Err(err).Str("file", e.Name).Msg("ignoring invalid config change")
			return
		}
		l.logger.Info().Str("file", e.Name).Str("op", e.Op.String()).Msg("config reloaded")
		onChange(cfg)
	})
	l.v.WatchConfig()
	return nil
}

// Validate checks mode names and limits.
func (c RigConfig) Validate() error {
	if _, err := ParseMode(c.Orbit.Mode); err != nil {
		return err
	}
	for _, l := range []struct {
		axis string
		lim  LimitConfig
	}{
		{"x", c.Orbit.Limits.X},
		{"y", c.Orbit.Limits.Y},
		{"z", c.Orbit.Limits.Z},
	} {
		if _, err := l.lim.AxisLimit(); err != nil {
			return fmt.Errorf("orbit.limits.%s: %w", l.axis, err)
		}
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tickRate must be positive, got %d", c.TickRate)
	}
	return nil
}

// ParseMode converts a mode name to a camera mode. Matching ignores case and separators.
func ParseMode(name string) (camera.CameraMode, error) {
	key := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	switch common.Coalesce(key, "thirdpersonorbit") {
	case "thirdpersonorbit", "thirdperson", "orbit":
		return camera.ModeThirdPersonOrbit, nil
	case "firstperson":
		return camera.ModeFirstPerson, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrInvalidMode)
	}
}

// AxisLimit converts the config entry to a camera limit.
func (l LimitConfig) AxisLimit() (camera.AxisLimit, error) {
	switch strings.ToLower(strings.TrimSpace(l.Kind)) {
	case "clamp":
		if l.Min > l.Max {
			return camera.AxisLimit{}, fmt.Errorf("clamp min %v > max %v: %w", l.Min, l.Max, ErrInvalidLimit)
		}
		return camera.ClampLimit(l.Min, l.Max), nil
	case "wrap", "":
		return camera.WrapLimit(), nil
	default:
		return camera.AxisLimit{}, fmt.Errorf("kind %q: %w", l.Kind, ErrInvalidLimit)
	}
}

// OrbitOptions converts the orbit section to orbit state options. The config must be valid.
func (c RigConfig) OrbitOptions() []camera.OrbitStateOption {
	mode, _ := ParseMode(c.Orbit.Mode)
	x, _ := c.Orbit.Limits.X.AxisLimit()
	y, _ := c.Orbit.Limits.Y.AxisLimit()
	z, _ := c.Orbit.Limits.Z.AxisLimit()
	o := c.Orbit
	return []camera.OrbitStateOption{
		camera.WithMode(mode),
		camera.WithOffset(o.Offset.X, o.Offset.Y, o.Offset.Z),
		camera.WithAngles(o.XAngle, o.YAngle),
		camera.WithTarget(o.Target.X, o.Target.Y, o.Target.Z),
		camera.WithFovDegrees(o.FovDegrees),
		camera.WithXLimit(x),
		camera.WithYLimit(y),
		camera.WithZLimit(z),
	}
}

// SolverOptions converts the smoothing section to placement solver options.
func (c RigConfig) SolverOptions() []camera.PlacementSolverOption {
	opts := []camera.PlacementSolverOption{camera.WithSmoothingRate(c.Smoothing.Rate)}
	if !c.Smoothing.ClampBlend {
		opts = append(opts, camera.WithUnclampedBlend())
	}
	return opts
}

// TrackerOptions converts the focus section to focus tracker options.
func (c RigConfig) TrackerOptions() []camera.FocusTrackerOption {
	var opts []camera.FocusTrackerOption
	if c.Focus.Seed != 0 {
		opts = append(opts, camera.WithRandomSource(camera.NewSeededSource(c.Focus.Seed, c.Focus.Seed)))
	}
	if c.Focus.CorrectedJitterScale {
		opts = append(opts, camera.WithCorrectedJitterScale())
	}
	if c.Focus.CorrectedFlatForward {
		opts = append(opts, camera.WithCorrectedFlatForward())
	}
	return opts
}

// ControllerOptions converts the controller section to controller options.
func (c RigConfig) ControllerOptions() []camera.CameraControllerOption {
	ctl := c.Controller
	return []camera.CameraControllerOption{
		camera.WithOrbitSpeed(ctl.OrbitSpeed),
		camera.WithMouseSensitivity(ctl.MouseSensitivity),
		camera.WithZoomSpeed(ctl.ZoomSpeed),
		camera.WithRadiusBounds(ctl.MinRadius, ctl.MaxRadius),
	}
}
