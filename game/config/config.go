package config

import (
	"encoding/json"
	"io/ioutil"
	"math"

	"github.com/pkg/errors"

	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/types"
)

// StandardGravity is expressed in m/s², along -Y.
const StandardGravity = 9.81

type Mode string

const (
	ModeInstant    Mode = "instant"
	ModeProjectile Mode = "projectile"
)

type PhysicsConfig struct {
	Tps                int     // fixed steps per second
	VelocityIterations int     // higher improves stability; default 8 in testbed
	PositionIterations int     // higher improve overlap resolution; default 3 in testbed
	Gravity            float64 // world gravity for non-projectile bodies, m/s² along -Y
}

type LauncherConfig struct {
	Mode     Mode
	MaxRange float64     // expressed in m
	Mask     types.Layer // layers hit by instant shots
	Cooldown float64     // expressed in s; 0 disables
}

type ProjectileConfig struct {
	Speed                 float64 // expressed in m/s
	GravityMultiplier     float64
	Lifetime              float64 // expressed in s
	SpawnOffset           float64 // expressed in m, along the aim direction
	Radius                float64 // expressed in m
	Mass                  float64 // expressed in kg
	LinearDamping         float64
	AngularDamping        float64
	CollisionIgnoreWindow float64 // expressed in s
	Damage                float64
	Mask                  types.Layer // layers the projectile collides with
}

type DetectionConfig struct {
	LookaheadFactor float64 // > 1 so the ray sees past the next step
	MinSpeed        float64 // expressed in m/s; predictive cast is skipped below
}

type Config struct {
	Physics    PhysicsConfig
	Launcher   LauncherConfig
	Projectile ProjectileConfig
	Detection  DetectionConfig
}

func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Tps:                60,
			VelocityIterations: 8,
			PositionIterations: 3,
			Gravity:            StandardGravity,
		},
		Launcher: LauncherConfig{
			Mode:     ModeProjectile,
			MaxRange: 100,
			Mask:     types.BuildLayerMask(types.LayerWorld, types.LayerCharacter, types.LayerTarget),
			Cooldown: 0,
		},
		Projectile: ProjectileConfig{
			Speed:                 25,
			GravityMultiplier:     0.3,
			Lifetime:              2,
			SpawnOffset:           0.5,
			Radius:                0.1,
			Mass:                  0.05,
			LinearDamping:         0,
			AngularDamping:        0.05,
			CollisionIgnoreWindow: 0.05,
			Damage:                100,
			Mask:                  types.BuildLayerMask(types.LayerWorld, types.LayerCharacter, types.LayerTarget),
		},
		Detection: DetectionConfig{
			LookaheadFactor: 1.5,
			MinSpeed:        0.1,
		},
	}
}

// Load reads a JSON file on top of Default(); absent keys keep their
// default value.
func Load(filename string) (Config, error) {
	config := Default()

	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return config, errors.Wrap(err, "could not read configuration "+filename)
	}

	if err := json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrap(err, "invalid configuration "+filename)
	}

	if err := config.Validate(); err != nil {
		return config, errors.Wrap(err, "invalid configuration "+filename)
	}

	return config, nil
}

func (c Config) Validate() error {
	if c.Physics.Tps <= 0 {
		return errors.New("Physics.Tps must be provided in the configuration")
	}

	if c.Physics.VelocityIterations <= 0 || c.Physics.PositionIterations <= 0 {
		return errors.New("Physics iterations must be positive")
	}

	switch c.Launcher.Mode {
	case ModeInstant, ModeProjectile:
	default:
		return errors.Errorf("unknown launcher mode %q", c.Launcher.Mode)
	}

	if err := assertPositive(c.Launcher.MaxRange, "Launcher.MaxRange"); err != nil {
		return err
	}

	if err := assertNonNegative(c.Launcher.Cooldown, "Launcher.Cooldown"); err != nil {
		return err
	}

	p := c.Projectile
	for name, value := range map[string]float64{
		"Projectile.Speed":    p.Speed,
		"Projectile.Lifetime": p.Lifetime,
		"Projectile.Radius":   p.Radius,
		"Projectile.Mass":     p.Mass,
	} {
		if err := assertPositive(value, name); err != nil {
			return err
		}
	}

	for name, value := range map[string]float64{
		"Projectile.GravityMultiplier":     p.GravityMultiplier,
		"Projectile.SpawnOffset":           p.SpawnOffset,
		"Projectile.LinearDamping":         p.LinearDamping,
		"Projectile.AngularDamping":        p.AngularDamping,
		"Projectile.CollisionIgnoreWindow": p.CollisionIgnoreWindow,
		"Projectile.Damage":                p.Damage,
		"Detection.MinSpeed":               c.Detection.MinSpeed,
	} {
		if err := assertNonNegative(value, name); err != nil {
			return err
		}
	}

	if p.CollisionIgnoreWindow >= p.Lifetime {
		return errors.New("Projectile.CollisionIgnoreWindow must be shorter than Projectile.Lifetime")
	}

	if !(c.Detection.LookaheadFactor > 1) || math.IsInf(c.Detection.LookaheadFactor, 0) {
		return errors.New("Detection.LookaheadFactor must be greater than 1")
	}

	return nil
}

// StepDuration is the fixed step in seconds.
func (c Config) StepDuration() float64 {
	return 1.0 / float64(c.Physics.Tps)
}

func assertPositive(value float64, name string) error {
	if !(value > 0) || math.IsInf(value, 0) {
		return errors.Errorf("%s must be a positive number, got %v", name, value)
	}
	return nil
}

func assertNonNegative(value float64, name string) error {
	if !(value >= 0) || math.IsInf(value, 0) {
		return errors.Errorf("%s must not be negative, got %v", name, value)
	}
	return nil
}
