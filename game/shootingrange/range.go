package shootingrange

import (
	"github.com/pkg/errors"
	"github.com/yohamta/donburi"

	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/recording"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/types"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils/vector"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/config"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/gun"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/physics"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/scene"
)

const (
	ShooterID  types.BodyID = "shooter"
	ArmID      types.BodyID = "shooter-arm"
	HeadID     types.BodyID = "shooter-head"
	LauncherID types.BodyID = "launcher"
	FloorID    types.BodyID = "floor"
)

// Range is a side-view shooting range: a floor, a static shooter rig
// holding a launcher, and whatever a scenario adds.
type Range struct {
	config   config.Config
	ticknum  int
	world    *physics.World
	scene    *scene.Scene
	launcher *gun.Launcher
	muzzle   *bodyMuzzle

	recorder recording.Recorder
	scenario string
	report   Report
}

// bodyMuzzle fires from the launcher body's current position.
type bodyMuzzle struct {
	body      *physics.Body
	direction vector.Vector2
}

func (m *bodyMuzzle) Aim() (vector.Vector2, vector.Vector2, bool) {
	if !m.body.Valid() {
		return vector.Vector2{}, vector.Vector2{}, false
	}
	return m.body.Position(), m.direction, true
}

func NewRange(cfg config.Config) (*Range, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "could not create range")
	}

	r := &Range{
		config: cfg,
		world:  physics.NewWorld(cfg.Physics),
		scene:  scene.NewScene(),

		recorder: recording.MakeEmptyRecorder(),
	}

	if err := r.buildRig(); err != nil {
		return nil, err
	}

	launcherBody, _ := r.world.Body(LauncherID)
	r.muzzle = &bodyMuzzle{
		body:      launcherBody,
		direction: vector.MakeVector2(1, 0),
	}

	r.launcher = gun.NewLauncher(cfg, gun.LauncherDeps{
		Wielder: ShooterID,
		Body:    LauncherID,
		Query:   r.world,
		Factory: r.world,
		Graph:   r.scene,
		Sink:    gun.MultiSink{r.scene.Sink(), r.recordingSink()},
		Muzzle:  r.muzzle,
	})

	r.subscribe()

	return r, nil
}

func (r *Range) buildRig() error {
	colliders := []struct {
		def    physics.ColliderDef
		parent types.BodyID
	}{
		{
			def: physics.ColliderDef{
				Descriptor:  types.MakePhysicalBodyDescriptor(types.PhysicalBodyDescriptorType.Obstacle, FloorID),
				Layer:       types.LayerWorld,
				Position:    vector.MakeVector2(0, -0.5),
				HalfExtents: vector.MakeVector2(100, 0.5),
				Friction:    0.6,
			},
		},
		{
			def: physics.ColliderDef{
				Descriptor:  types.MakePhysicalBodyDescriptor(types.PhysicalBodyDescriptorType.Character, ShooterID),
				Layer:       types.LayerCharacter,
				Position:    vector.MakeVector2(0, 1),
				HalfExtents: vector.MakeVector2(0.3, 0.9),
			},
		},
		{
			def: physics.ColliderDef{
				Descriptor: types.MakePhysicalBodyDescriptor(types.PhysicalBodyDescriptorType.Character, HeadID),
				Layer:      types.LayerCharacter,
				Position:   vector.MakeVector2(0, 2.1),
				Radius:     0.2,
			},
			parent: ShooterID,
		},
		{
			def: physics.ColliderDef{
				Descriptor:  types.MakePhysicalBodyDescriptor(types.PhysicalBodyDescriptorType.Launcher, LauncherID),
				Layer:       types.LayerCharacter,
				Position:    vector.MakeVector2(0.5, 1.4),
				HalfExtents: vector.MakeVector2(0.15, 0.05),
			},
			parent: ArmID,
		},
	}

	if _, err := r.scene.AddNode(ArmID, "arm"); err != nil {
		return err
	}

	for _, collider := range colliders {
		if err := r.AddCollider(collider.def); err != nil {
			return err
		}
	}

	if err := r.scene.SetParent(ArmID, ShooterID); err != nil {
		return err
	}

	for _, collider := range colliders {
		if collider.parent == types.NoBody {
			continue
		}
		if err := r.scene.SetParent(collider.def.Descriptor.ID, collider.parent); err != nil {
			return err
		}
	}

	return nil
}

// AddCollider registers a collider both in the physical world and in the
// scene graph.
func (r *Range) AddCollider(def physics.ColliderDef) error {
	if _, err := r.world.AddCollider(def); err != nil {
		return errors.Wrapf(err, "could not add collider %s", def.Descriptor.ID)
	}

	if _, err := r.scene.AddNode(def.Descriptor.ID, def.Descriptor.Type.String()); err != nil {
		return err
	}

	return nil
}

// AddTarget adds a damageable box centered on center.
func (r *Range) AddTarget(id types.BodyID, center vector.Vector2, halfExtents vector.Vector2, life float64) error {
	err := r.AddCollider(physics.ColliderDef{
		Descriptor:  types.MakePhysicalBodyDescriptor(types.PhysicalBodyDescriptorType.Target, id),
		Layer:       types.LayerTarget,
		Position:    center,
		HalfExtents: halfExtents,
	})
	if err != nil {
		return err
	}

	return r.scene.AddHealth(id, life)
}

// SetRecorder sends every shot event to recorder, tagged with scenario.
func (r *Range) SetRecorder(recorder recording.Recorder, scenario string) {
	r.recorder = recorder
	r.scenario = scenario
}

func (r *Range) subscribe() {
	world := r.scene.World()

	scene.HitEvents.Subscribe(world, func(w donburi.World, event gun.ImpactEvent) {
		r.report.Impacts = append(r.report.Impacts, event)
	})

	scene.MissEvents.Subscribe(world, func(w donburi.World, event gun.MissEvent) {
		r.report.Misses = append(r.report.Misses, event)
	})

	scene.KilledEvents.Subscribe(world, func(w donburi.World, event scene.KilledEvent) {
		r.report.Killed = append(r.report.Killed, event.Target)
		r.record("killed", event)
	})
}

// recordingSink records launcher notifications as they are emitted; kills
// come later, from the scene events.
func (r *Range) recordingSink() gun.EventSink {
	return gun.SinkFuncs{
		Fire: func(event gun.FireEvent) { r.record("fire", event) },
		Hit:  func(event gun.ImpactEvent) { r.record("hit", event) },
		Miss: func(event gun.MissEvent) { r.record("miss", event) },
	}
}

func (r *Range) record(kind string, event interface{}) {
	if err := r.recorder.Record(r.scenario, kind, event); err != nil {
		utils.Warn("range", err)
	}
}

func (r *Range) Aim(direction vector.Vector2) {
	r.muzzle.direction = direction
}

// Fire triggers the launcher in the given mode. Events are delivered on the
// next Step.
func (r *Range) Fire(mode config.Mode) {
	origin, direction, _ := r.muzzle.Aim()
	r.launcher.Fire(gun.FireRequest{
		Origin:    origin,
		Direction: direction,
		MaxRange:  r.config.Launcher.MaxRange,
		Mode:      mode,
	})
}

// Step advances the range by one fixed step.
func (r *Range) Step() {
	dt := r.config.StepDuration()

	///////////////////////////////////////////////////////////////////////////
	// Projectiles: gravity, look-ahead, lifetime
	///////////////////////////////////////////////////////////////////////////

	r.launcher.PreStep(dt)

	///////////////////////////////////////////////////////////////////////////
	// Physical world
	///////////////////////////////////////////////////////////////////////////

	r.world.Step(dt)

	///////////////////////////////////////////////////////////////////////////
	// Contacts, then reaping
	///////////////////////////////////////////////////////////////////////////

	r.launcher.PostStep(dt, r.world.PopCollisions())

	r.scene.ProcessEvents()
	r.ticknum++
}

// RunUntilIdle steps until no projectile is in flight, at most maxDuration
// seconds of simulated time.
func (r *Range) RunUntilIdle(maxDuration float64) {
	maxSteps := int(maxDuration*float64(r.config.Physics.Tps)) + 1

	r.scene.ProcessEvents()
	for i := 0; i < maxSteps && r.launcher.Active() > 0; i++ {
		r.Step()
	}
}

func (r *Range) Now() float64 {
	return r.launcher.Now()
}

func (r *Range) Ticks() int {
	return r.ticknum
}

func (r *Range) World() *physics.World {
	return r.world
}

func (r *Range) Scene() *scene.Scene {
	return r.scene
}

func (r *Range) Launcher() *gun.Launcher {
	return r.launcher
}

func (r *Range) Report() Report {
	report := r.report
	report.Stats = r.launcher.Stats()
	report.Duration = r.launcher.Now()
	report.Steps = r.ticknum
	return report
}

func (r *Range) logReport(name string) {
	report := r.Report()

	utils.DebugContext("range", "scenario done", utils.Context{
		"scenario": name,
		"fired":    report.Stats.Fired,
		"hits":     report.Stats.Hits,
		"misses":   report.Stats.Misses,
		"expired":  report.Stats.Expired,
		"lost":     report.Stats.Lost,
		"rejected": report.Stats.Rejected,
		"killed":   len(report.Killed),
		"duration": report.Duration,
	})
}
