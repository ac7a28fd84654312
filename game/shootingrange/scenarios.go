package shootingrange

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/recording"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/types"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils/vector"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/config"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/gun"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/physics"
)

const (
	DummyID   types.BodyID = "dummy"
	CeilingID types.BodyID = "ceiling"

	// TargetDistance separates the muzzle from the dummy's front face.
	TargetDistance = 5.0
)

var ErrUnknownScenario = errors.New("unknown scenario")

type Report struct {
	Scenario string
	Stats    gun.Stats
	Impacts  []gun.ImpactEvent
	Misses   []gun.MissEvent
	Killed   []types.BodyID
	Duration float64 // expressed in s of simulated time
	Steps    int
}

type Scenario struct {
	Name        string
	Description string
	Mode        config.Mode
	Direction   vector.Vector2
	Setup       func(r *Range) error
}

var scenarios = map[string]Scenario{
	"forward": {
		Name:        "forward",
		Description: "projectile at a dummy standing 5 units ahead",
		Mode:        config.ModeProjectile,
		Direction:   vector.MakeVector2(1, 0),
		Setup:       addDummy,
	},
	"self": {
		Name:        "self",
		Description: "projectile fired back through the shooter's own body",
		Mode:        config.ModeProjectile,
		Direction:   vector.MakeVector2(-1, 0.3),
	},
	"open": {
		Name:        "open",
		Description: "projectile into open space",
		Mode:        config.ModeProjectile,
		Direction:   vector.MakeVector2(1, 1),
	},
	"ceiling": {
		Name:        "ceiling",
		Description: "projectile straight up into a ceiling slab",
		Mode:        config.ModeProjectile,
		Direction:   vector.MakeVector2(0, 1),
		Setup:       addCeiling,
	},
	"instant": {
		Name:        "instant",
		Description: "instant shot at a dummy standing 5 units ahead",
		Mode:        config.ModeInstant,
		Direction:   vector.MakeVector2(1, 0),
		Setup:       addDummy,
	},
}

func ScenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func GetScenario(name string) (Scenario, bool) {
	scenario, ok := scenarios[name]
	return scenario, ok
}

func addDummy(r *Range) error {
	origin, _, ok := r.muzzle.Aim()
	if !ok {
		return errors.New("launcher has no fire origin")
	}

	halfExtents := vector.MakeVector2(0.25, 1)
	center := vector.MakeVector2(origin.GetX()+TargetDistance+halfExtents.GetX(), origin.GetY())

	return r.AddTarget(DummyID, center, halfExtents, 100)
}

func addCeiling(r *Range) error {
	return r.AddCollider(physics.ColliderDef{
		Descriptor:  types.MakePhysicalBodyDescriptor(types.PhysicalBodyDescriptorType.Obstacle, CeilingID),
		Layer:       types.LayerWorld,
		Position:    vector.MakeVector2(0, 6.25),
		HalfExtents: vector.MakeVector2(5, 0.25),
	})
}

// Run builds a fresh range, fires one shot and steps until it resolves.
func Run(cfg config.Config, name string) (Report, error) {
	return RunRecorded(cfg, name, recording.MakeEmptyRecorder())
}

// RunRecorded is Run with every shot event sent to recorder. The recorder is
// left open.
func RunRecorded(cfg config.Config, name string, recorder recording.Recorder) (Report, error) {
	scenario, ok := GetScenario(name)
	if !ok {
		return Report{}, errors.Wrapf(ErrUnknownScenario, "%q", name)
	}

	r, err := NewRange(cfg)
	if err != nil {
		return Report{}, err
	}

	if scenario.Setup != nil {
		if err := scenario.Setup(r); err != nil {
			return Report{}, errors.Wrapf(err, "could not set scenario %s up", name)
		}
	}

	r.SetRecorder(recorder, name)
	r.Aim(scenario.Direction)
	r.Fire(scenario.Mode)
	r.RunUntilIdle(cfg.Projectile.Lifetime + 1)

	r.logReport(name)

	report := r.Report()
	report.Scenario = name
	return report, nil
}
