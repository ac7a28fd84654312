package gun

import (
	uuid "github.com/satori/go.uuid"

	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/types"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils/vector"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/config"
)

const (
	ModeInstant    = config.ModeInstant
	ModeProjectile = config.ModeProjectile
)

// FireRequest is produced once per fire command and consumed synchronously.
type FireRequest struct {
	Origin    vector.Vector2
	Direction vector.Vector2 // unit; normalised by the launcher
	MaxRange  float64        // expressed in m; 0 falls back to the launcher range
	Mode      config.Mode
}

// ExclusionSet holds identities a projectile must never impact. It never
// owns the bodies it names.
type ExclusionSet map[types.BodyID]struct{}

func NewExclusionSet(ids ...types.BodyID) ExclusionSet {
	set := make(ExclusionSet, len(ids))
	for _, id := range ids {
		set.Add(id)
	}
	return set
}

func (s ExclusionSet) Add(id types.BodyID) {
	if id != types.NoBody {
		s[id] = struct{}{}
	}
}

func (s ExclusionSet) Contains(id types.BodyID) bool {
	_, ok := s[id]
	return ok
}

func (s ExclusionSet) Clone() ExclusionSet {
	clone := make(ExclusionSet, len(s))
	for id := range s {
		clone[id] = struct{}{}
	}
	return clone
}

// ProjectileSpec is copied into each agent at spawn and never mutated
// afterwards.
type ProjectileSpec struct {
	Speed                 float64 // expressed in m/s
	GravityMultiplier     float64
	Lifetime              float64 // expressed in s
	SpawnOffset           float64 // expressed in m
	Radius                float64 // expressed in m
	Mass                  float64 // expressed in kg
	LinearDamping         float64
	AngularDamping        float64
	CollisionIgnoreWindow float64 // expressed in s
	Damage                float64
	Layer                 types.Layer
	Mask                  types.Layer
	Exclusions            ExclusionSet
}

func SpecFromConfig(c config.ProjectileConfig) ProjectileSpec {
	return ProjectileSpec{
		Speed:                 c.Speed,
		GravityMultiplier:     c.GravityMultiplier,
		Lifetime:              c.Lifetime,
		SpawnOffset:           c.SpawnOffset,
		Radius:                c.Radius,
		Mass:                  c.Mass,
		LinearDamping:         c.LinearDamping,
		AngularDamping:        c.AngularDamping,
		CollisionIgnoreWindow: c.CollisionIgnoreWindow,
		Damage:                c.Damage,
		Layer:                 types.LayerProjectile,
		Mask:                  c.Mask,
		Exclusions:            NewExclusionSet(),
	}
}

type Detection int

const (
	DetectedInstant Detection = iota
	DetectedPredictive
	DetectedReactive
)

func (d Detection) String() string {
	switch d {
	case DetectedInstant:
		return "instant"
	case DetectedPredictive:
		return "predictive"
	case DetectedReactive:
		return "reactive"
	}
	return "unknown"
}

// ImpactEvent is produced at most once per shot.
type ImpactEvent struct {
	ShotID    uuid.UUID
	Target    types.BodyID
	Position  vector.Vector2
	Normal    vector.Vector2
	Time      float64
	Detection Detection
}

type FireEvent struct {
	ShotID  uuid.UUID
	Request FireRequest
	Time    float64
}

type MissEvent struct {
	ShotID   uuid.UUID
	Origin   vector.Vector2
	Endpoint vector.Vector2 // origin + direction * range; visualisation only
	Time     float64
}

type Outcome int

const (
	OutcomeImpact Outcome = iota
	OutcomeExpired
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeImpact:
		return "impact"
	case OutcomeExpired:
		return "expired"
	case OutcomeLost:
		return "lost"
	}
	return "unknown"
}

type Resolution struct {
	Outcome Outcome
	Impact  *ImpactEvent // set for OutcomeImpact only
	Time    float64
}

// Collision is one collision-begin notification for a projectile body.
// Normal is the surface normal of Other, facing the projectile.
type Collision struct {
	Self      types.BodyID
	Other     types.BodyID
	Point     vector.Vector2
	Normal    vector.Vector2
	IsTrigger bool
}

type RayHit struct {
	Point     vector.Vector2
	Normal    vector.Vector2
	Body      types.BodyID
	IsTrigger bool
	Fraction  float64
}

type QueryFilter struct {
	Mask            types.Layer
	IncludeTriggers bool
	Skip            func(id types.BodyID) bool // nil skips nothing
}

func (f QueryFilter) Accepts(id types.BodyID, layer types.Layer, isTrigger bool) bool {
	if !f.Mask.Has(layer) {
		return false
	}

	if isTrigger && !f.IncludeTriggers {
		return false
	}

	return f.Skip == nil || !f.Skip(id)
}

type Stats struct {
	Fired    int
	Rejected int
	Hits     int
	Misses   int
	Expired  int
	Lost     int
}
