package gun

import (
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/types"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils/vector"
)

//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// SpatialQuery is the ray casting side of the physics world.
type SpatialQuery interface {
	// RayCast returns the closest hit accepted by filter within maxDistance.
	RayCast(origin vector.Vector2, direction vector.Vector2, maxDistance float64, filter QueryFilter) (RayHit, bool)
	IgnoreCollisionPair(a types.BodyID, b types.BodyID)
}

// Body is a handle on a simulated body. The agent holding it is its only
// logical owner.
type Body interface {
	ID() types.BodyID
	Valid() bool
	Position() vector.Vector2
	Velocity() vector.Vector2
	ApplyAcceleration(acceleration vector.Vector2)
	// Halt zeroes linear and angular velocity and freezes integration.
	Halt()
}

type BodyFactory interface {
	NewProjectileBody(spec ProjectileSpec, position vector.Vector2, velocity vector.Vector2) (Body, error)
	DestroyBody(body Body)
}

// SceneGraph answers ancestry and capability questions about bodies.
type SceneGraph interface {
	Parent(id types.BodyID) (types.BodyID, bool)
	Children(id types.BodyID) []types.BodyID
	Damageable(id types.BodyID) (Damageable, bool)
}

type Damageable interface {
	ApplyDamage(amount float64, impact ImpactEvent)
}

// EventSink receives launcher notifications. Implementations must not block.
type EventSink interface {
	OnFire(event FireEvent)
	OnHit(event ImpactEvent)
	OnMiss(event MissEvent)
}

// Muzzle is the fire-origin transform.
type Muzzle interface {
	Aim() (origin vector.Vector2, direction vector.Vector2, ok bool)
}
