package gun

import (
	uuid "github.com/satori/go.uuid"

	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/types"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils/vector"
)

type State int

const (
	StateArmed State = iota // spawn grace: reactive self-collision candidates suppressed
	StateFlying
	StateResolved
)

func (s State) String() string {
	switch s {
	case StateArmed:
		return "armed"
	case StateFlying:
		return "flying"
	case StateResolved:
		return "resolved"
	}
	return "unknown"
}

type DetectionSettings struct {
	LookaheadFactor float64
	MinSpeed        float64        // expressed in m/s
	Gravity         vector.Vector2 // standard gravity, scaled per shot by GravityMultiplier
}

// AgentEnv carries what an agent consumes from its surroundings.
type AgentEnv struct {
	Query     SpatialQuery
	Graph     SceneGraph
	Detection DetectionSettings
	OnResolve func(agent *ProjectileAgent, resolution Resolution)
}

// ProjectileAgent owns one in-flight projectile. It is stepped once per fixed
// step and fed collision-begin notifications; it resolves at most once.
type ProjectileAgent struct {
	id     uuid.UUID
	spec   ProjectileSpec
	body   Body
	bodyID types.BodyID

	spawnTime             float64
	collisionIgnoreWindow float64
	exclusions            ExclusionSet

	state       State
	hasResolved bool
	resolution  Resolution

	query     SpatialQuery
	graph     SceneGraph
	detection DetectionSettings
	onResolve func(agent *ProjectileAgent, resolution Resolution)
}

func NewProjectileAgent(id uuid.UUID, spec ProjectileSpec, body Body, spawnTime float64, env AgentEnv) *ProjectileAgent {
	exclusions := spec.Exclusions.Clone()
	spec.Exclusions = exclusions

	agent := &ProjectileAgent{
		id:                    id,
		spec:                  spec,
		body:                  body,
		spawnTime:             spawnTime,
		collisionIgnoreWindow: spec.CollisionIgnoreWindow,
		exclusions:            exclusions,
		state:                 StateArmed,
		query:                 env.Query,
		graph:                 env.Graph,
		detection:             env.Detection,
		onResolve:             env.OnResolve,
	}

	if body != nil {
		agent.bodyID = body.ID()
	}

	if agent.collisionIgnoreWindow <= 0 {
		agent.state = StateFlying
	}

	return agent
}

func (a *ProjectileAgent) ID() uuid.UUID {
	return a.id
}

func (a *ProjectileAgent) BodyID() types.BodyID {
	return a.bodyID
}

func (a *ProjectileAgent) Spec() ProjectileSpec {
	return a.spec
}

func (a *ProjectileAgent) SpawnTime() float64 {
	return a.spawnTime
}

func (a *ProjectileAgent) State() State {
	return a.state
}

func (a *ProjectileAgent) Resolved() bool {
	return a.hasResolved
}

func (a *ProjectileAgent) Resolution() (Resolution, bool) {
	return a.resolution, a.hasResolved
}

// FixedStep runs gravity, then the predictive cast, then the lifetime check.
func (a *ProjectileAgent) FixedStep(now float64, dt float64) {
	if a.hasResolved {
		return
	}

	if a.body == nil || !a.body.Valid() {
		utils.DebugContext("projectile", "body released before resolution", utils.Context{"shot": a.id.String()})
		a.resolve(Resolution{Outcome: OutcomeLost, Time: now})
		return
	}

	a.advance(now)

	a.body.ApplyAcceleration(a.detection.Gravity.Scale(a.spec.GravityMultiplier))

	if hit, ok := a.predict(dt); ok {
		a.impact(hit.Body, hit.Point, hit.Normal, now, DetectedPredictive)
		return
	}

	if now-a.spawnTime >= a.spec.Lifetime {
		a.resolve(Resolution{Outcome: OutcomeExpired, Time: now})
	}
}

// OnCollisionBegin handles one reactive notification from the physics engine.
func (a *ProjectileAgent) OnCollisionBegin(collision Collision, now float64) {
	if a.hasResolved || collision.IsTrigger {
		return
	}

	a.advance(now)

	if now-a.spawnTime < a.collisionIgnoreWindow {
		return
	}

	if a.excludes(collision.Other) {
		return
	}

	a.impact(collision.Other, collision.Point, collision.Normal, now, DetectedReactive)
}

func (a *ProjectileAgent) advance(now float64) {
	if a.state == StateArmed && now-a.spawnTime >= a.collisionIgnoreWindow {
		a.state = StateFlying
	}
}

func (a *ProjectileAgent) excludes(id types.BodyID) bool {
	return id == a.bodyID || isExcluded(a.graph, a.exclusions, id)
}

func (a *ProjectileAgent) predict(dt float64) (RayHit, bool) {
	if a.query == nil || dt <= 0 {
		return RayHit{}, false
	}

	velocity := a.body.Velocity()
	speed := velocity.Mag()
	if speed <= a.detection.MinSpeed {
		return RayHit{}, false
	}

	distance := speed * dt * a.detection.LookaheadFactor

	hit, ok := a.query.RayCast(a.body.Position(), velocity.Normalize(), distance, QueryFilter{
		Mask: a.spec.Mask,
		Skip: a.excludes,
	})

	if !ok || hit.IsTrigger || a.excludes(hit.Body) {
		return RayHit{}, false
	}

	return hit, true
}

func (a *ProjectileAgent) impact(target types.BodyID, position vector.Vector2, normal vector.Vector2, now float64, detection Detection) {
	if a.hasResolved {
		return
	}

	event := ImpactEvent{
		ShotID:    a.id,
		Target:    target,
		Position:  position,
		Normal:    normal,
		Time:      now,
		Detection: detection,
	}

	if !a.resolve(Resolution{Outcome: OutcomeImpact, Impact: &event, Time: now}) {
		return
	}

	applyDamage(a.graph, event, a.spec.Damage)
}

func (a *ProjectileAgent) resolve(resolution Resolution) bool {
	if a.hasResolved {
		return false
	}

	a.hasResolved = true
	a.state = StateResolved
	a.resolution = resolution

	if a.body != nil && a.body.Valid() {
		a.body.Halt()
	}

	if a.onResolve != nil {
		a.onResolve(a, resolution)
	}

	return true
}

// release drops the body handle once its owner destroyed it.
func (a *ProjectileAgent) release() {
	a.body = nil
}
