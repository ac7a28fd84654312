package gun

import (
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"

	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/types"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils/vector"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/config"
)

var (
	ErrInvalidRequest  = errors.New("no valid shooting origin or direction")
	ErrNoTemplate      = errors.New("no projectile template")
	ErrNoFactory       = errors.New("no body factory")
	ErrNoSpatialQuery  = errors.New("no spatial query service")
	ErrNoMuzzle        = errors.New("no fire origin")
	ErrUnknownFireMode = errors.New("unknown fire mode")
)

type LauncherDeps struct {
	Wielder types.BodyID // character holding the launcher
	Body    types.BodyID // launcher's own physical body
	Query   SpatialQuery
	Factory BodyFactory
	Graph   SceneGraph
	Sink    EventSink
	Muzzle  Muzzle
}

// Launcher owns the firing policy and every in-flight ProjectileAgent it
// spawned.
type Launcher struct {
	config   config.Config
	template *ProjectileSpec

	wielder types.BodyID
	body    types.BodyID

	query   SpatialQuery
	factory BodyFactory
	graph   SceneGraph
	sink    EventSink
	muzzle  Muzzle

	now      float64
	lastShot float64
	hasShot  bool

	agents []*ProjectileAgent
	byBody map[types.BodyID]*ProjectileAgent
	stats  Stats
}

func NewLauncher(cfg config.Config, deps LauncherDeps) *Launcher {
	template := SpecFromConfig(cfg.Projectile)

	sink := deps.Sink
	if sink == nil {
		sink = SinkFuncs{}
	}

	return &Launcher{
		config:   cfg,
		template: &template,
		wielder:  deps.Wielder,
		body:     deps.Body,
		query:    deps.Query,
		factory:  deps.Factory,
		graph:    deps.Graph,
		sink:     sink,
		muzzle:   deps.Muzzle,
		byBody:   make(map[types.BodyID]*ProjectileAgent),
	}
}

// SetTemplate replaces the projectile template; nil disables projectile mode.
func (l *Launcher) SetTemplate(spec *ProjectileSpec) {
	if spec == nil {
		l.template = nil
		return
	}

	template := *spec
	template.Exclusions = spec.Exclusions.Clone()
	l.template = &template
}

func (l *Launcher) Template() (ProjectileSpec, bool) {
	if l.template == nil {
		return ProjectileSpec{}, false
	}
	return *l.template, true
}

func (l *Launcher) Now() float64 {
	return l.now
}

func (l *Launcher) Stats() Stats {
	return l.stats
}

func (l *Launcher) Active() int {
	return len(l.agents)
}

// Agents returns the in-flight agents, oldest first.
func (l *Launcher) Agents() []*ProjectileAgent {
	res := make([]*ProjectileAgent, len(l.agents))
	copy(res, l.agents)
	return res
}

// Trigger fires from the muzzle with the configured mode, honouring the
// cooldown. It reports whether a shot was registered.
func (l *Launcher) Trigger() bool {
	cooldown := l.config.Launcher.Cooldown
	if l.hasShot && cooldown > 0 && l.now-l.lastShot < cooldown {
		return false
	}

	l.hasShot = true
	l.lastShot = l.now

	request := FireRequest{
		MaxRange: l.config.Launcher.MaxRange,
		Mode:     l.config.Launcher.Mode,
	}

	if l.muzzle == nil {
		utils.Warn("launcher", ErrNoMuzzle)
	} else if origin, direction, ok := l.muzzle.Aim(); ok {
		request.Origin = origin
		request.Direction = direction
	}

	l.Fire(request)
	return true
}

// Fire emits the fire notification first, whatever happens next, then runs
// the shot in the requested mode. Failures are logged and end the shot.
func (l *Launcher) Fire(request FireRequest) {
	shotID := uuid.NewV4()

	l.stats.Fired++
	l.sink.OnFire(FireEvent{
		ShotID:  shotID,
		Request: request,
		Time:    l.now,
	})

	origin, direction, err := validateRequest(request)
	if err != nil {
		l.reject(err)
		return
	}

	maxRange := request.MaxRange
	if maxRange <= 0 {
		maxRange = l.config.Launcher.MaxRange
	}

	switch request.Mode {
	case ModeInstant:
		l.fireInstant(shotID, origin, direction, maxRange)
	case ModeProjectile:
		l.fireProjectile(shotID, origin, direction)
	default:
		l.reject(errors.Wrapf(ErrUnknownFireMode, "%q", request.Mode))
	}
}

func validateRequest(request FireRequest) (vector.Vector2, vector.Vector2, error) {
	if !request.Origin.IsFinite() || !request.Direction.IsFinite() || request.Direction.IsNull() {
		return vector.Vector2{}, vector.Vector2{}, errors.Wrapf(
			ErrInvalidRequest,
			"origin %s, direction %s",
			request.Origin, request.Direction,
		)
	}

	return request.Origin, request.Direction.Normalize(), nil
}

func (l *Launcher) reject(err error) {
	l.stats.Rejected++
	utils.Warn("launcher", err)
}

func (l *Launcher) fireInstant(shotID uuid.UUID, origin vector.Vector2, direction vector.Vector2, maxRange float64) {
	if l.query == nil {
		l.reject(ErrNoSpatialQuery)
		return
	}

	exclusions := NewExclusionSet(l.wielder, l.body)

	hit, ok := l.query.RayCast(origin, direction, maxRange, QueryFilter{
		Mask: l.config.Launcher.Mask,
		Skip: func(id types.BodyID) bool {
			return isExcluded(l.graph, exclusions, id)
		},
	})

	if ok && !hit.IsTrigger && !isExcluded(l.graph, exclusions, hit.Body) {
		event := ImpactEvent{
			ShotID:    shotID,
			Target:    hit.Body,
			Position:  hit.Point,
			Normal:    hit.Normal,
			Time:      l.now,
			Detection: DetectedInstant,
		}

		l.stats.Hits++
		l.sink.OnHit(event)
		applyDamage(l.graph, event, l.damage())
		return
	}

	l.stats.Misses++
	l.sink.OnMiss(MissEvent{
		ShotID:   shotID,
		Origin:   origin,
		Endpoint: origin.Add(direction.Scale(maxRange)),
		Time:     l.now,
	})
}

func (l *Launcher) damage() float64 {
	if l.template != nil {
		return l.template.Damage
	}
	return l.config.Projectile.Damage
}

func (l *Launcher) fireProjectile(shotID uuid.UUID, origin vector.Vector2, direction vector.Vector2) {
	if l.template == nil {
		l.reject(ErrNoTemplate)
		return
	}

	if l.factory == nil {
		l.reject(ErrNoFactory)
		return
	}

	spec := *l.template
	spec.Exclusions = l.template.Exclusions.Clone()
	spec.Exclusions.Add(l.wielder)
	spec.Exclusions.Add(l.body)

	position := origin.Add(direction.Scale(spec.SpawnOffset))
	velocity := direction.Scale(spec.Speed)

	body, err := l.factory.NewProjectileBody(spec, position, velocity)
	if err != nil {
		l.reject(errors.Wrap(err, "could not create projectile body"))
		return
	}

	if l.query != nil {
		for id := range spec.Exclusions {
			l.query.IgnoreCollisionPair(body.ID(), id)
		}

		// Colliders rigged under an excluded identity (head, scope) must not
		// stop the projectile either.
		for _, id := range descendants(l.graph, spec.Exclusions) {
			l.query.IgnoreCollisionPair(body.ID(), id)
		}
	}

	agent := NewProjectileAgent(shotID, spec, body, l.now, AgentEnv{
		Query: l.query,
		Graph: l.graph,
		Detection: DetectionSettings{
			LookaheadFactor: l.config.Detection.LookaheadFactor,
			MinSpeed:        l.config.Detection.MinSpeed,
			Gravity:         vector.MakeVector2(0, -config.StandardGravity),
		},
		OnResolve: l.onAgentResolved,
	})

	l.agents = append(l.agents, agent)
	l.byBody[agent.BodyID()] = agent

	utils.DebugContext("launcher", "projectile spawned", utils.Context{
		"shot":     shotID.String(),
		"body":     agent.BodyID().String(),
		"position": position,
		"velocity": velocity,
	})
}

func (l *Launcher) onAgentResolved(agent *ProjectileAgent, resolution Resolution) {
	switch resolution.Outcome {
	case OutcomeImpact:
		l.stats.Hits++
		l.sink.OnHit(*resolution.Impact)
		utils.DebugContext("projectile", "impact", utils.Context{
			"shot":      agent.ID().String(),
			"target":    resolution.Impact.Target.String(),
			"detection": resolution.Impact.Detection.String(),
			"position":  resolution.Impact.Position,
		})
	case OutcomeExpired:
		l.stats.Expired++
	case OutcomeLost:
		l.stats.Lost++
	}
}

// PreStep runs every agent's fixed step at the current time. Call it before
// the physics world steps.
func (l *Launcher) PreStep(dt float64) {
	for _, agent := range l.agents {
		agent.FixedStep(l.now, dt)
	}

	l.reap()
}

// PostStep advances the clock, delivers the collision-begin notifications
// popped from the physics world, then destroys resolved agents.
func (l *Launcher) PostStep(dt float64, collisions []Collision) {
	l.now += dt

	for _, collision := range collisions {
		agent, ok := l.byBody[collision.Self]
		if !ok {
			continue
		}
		agent.OnCollisionBegin(collision, l.now)
	}

	l.reap()
}

func (l *Launcher) reap() {
	kept := l.agents[:0]
	for _, agent := range l.agents {
		if !agent.Resolved() {
			kept = append(kept, agent)
			continue
		}
		l.destroy(agent)
	}

	for i := len(kept); i < len(l.agents); i++ {
		l.agents[i] = nil
	}
	l.agents = kept
}

func (l *Launcher) destroy(agent *ProjectileAgent) {
	delete(l.byBody, agent.BodyID())

	if agent.body != nil && l.factory != nil {
		l.factory.DestroyBody(agent.body)
	}
	agent.release()
}
