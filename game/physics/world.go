package physics

import (
	"github.com/ByteArena/box2d"
	"github.com/pkg/errors"

	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/types"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils/vector"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/config"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/gun"
)

var (
	ErrWorldLocked   = errors.New("physical world is locked")
	ErrDuplicateBody = errors.New("body id already registered")
	ErrInvalidShape  = errors.New("invalid collider shape")
)

// World wraps a Box2D world. It is the spatial query service and the body
// factory of the projectile core.
type World struct {
	config config.PhysicsConfig

	PhysicalWorld     *box2d.B2World
	collisionListener *collisionListener
	collisionFilter   *collisionFilter

	bodies map[types.BodyID]*Body
}

func NewWorld(cfg config.PhysicsConfig) *World {
	gravity := box2d.MakeB2Vec2(0.0, -cfg.Gravity) // side view: y points up
	world := box2d.MakeB2World(gravity)

	w := &World{
		config:            cfg,
		PhysicalWorld:     &world,
		collisionListener: newCollisionListener(),
		collisionFilter:   newCollisionFilter(),
		bodies:            make(map[types.BodyID]*Body),
	}

	w.PhysicalWorld.SetContactListener(w.collisionListener)
	w.PhysicalWorld.SetContactFilter(w.collisionFilter)

	return w
}

func (w *World) Step(dt float64) {
	w.PhysicalWorld.Step(dt, w.config.VelocityIterations, w.config.PositionIterations)
}

// PopCollisions returns the projectile collision-begin notifications
// buffered since the last call.
func (w *World) PopCollisions() []gun.Collision {
	return w.collisionListener.PopCollisions()
}

func (w *World) Body(id types.BodyID) (*Body, bool) {
	body, ok := w.bodies[id]
	return body, ok
}

func (w *World) BodyCount() int {
	return len(w.bodies)
}

func (w *World) IgnoreCollisionPair(a types.BodyID, b types.BodyID) {
	w.collisionFilter.ignore(a, b)
}

// RayCast returns the closest fixture hit accepted by filter along
// origin + direction * maxDistance.
func (w *World) RayCast(origin vector.Vector2, direction vector.Vector2, maxDistance float64, filter gun.QueryFilter) (gun.RayHit, bool) {
	if maxDistance <= 0 || direction.IsNull() || !direction.IsFinite() || !origin.IsFinite() {
		return gun.RayHit{}, false
	}

	end := origin.Add(direction.Normalize().Scale(maxDistance))

	var closest gun.RayHit
	found := false

	w.PhysicalWorld.RayCast(
		func(fixture *box2d.B2Fixture, point box2d.B2Vec2, normal box2d.B2Vec2, fraction float64) float64 {
			descriptor, ok := fixture.GetBody().GetUserData().(types.PhysicalBodyDescriptor)
			if !ok {
				return -1.0 // ignore this fixture
			}

			layer := types.Layer(fixture.GetFilterData().CategoryBits)
			if !filter.Accepts(descriptor.ID, layer, fixture.IsSensor()) {
				return -1.0
			}

			if !found || fraction < closest.Fraction {
				closest = gun.RayHit{
					Point:     vector.FromB2Vec2(point),
					Normal:    vector.FromB2Vec2(normal),
					Body:      descriptor.ID,
					IsTrigger: fixture.IsSensor(),
					Fraction:  fraction,
				}
				found = true
			}

			return fraction // clip the ray
		},
		origin.ToB2Vec2(),
		end.ToB2Vec2(),
	)

	return closest, found
}

func (w *World) register(descriptor types.PhysicalBodyDescriptor, b2body *box2d.B2Body) *Body {
	b2body.SetUserData(descriptor)

	body := &Body{
		world: w,
		id:    descriptor.ID,
		body:  b2body,
	}
	w.bodies[descriptor.ID] = body

	return body
}

func (w *World) destroy(body *Body) {
	if body.destroyed || w.bodies[body.id] != body {
		return
	}

	w.PhysicalWorld.DestroyBody(body.body)
	w.collisionFilter.forget(body.id)
	delete(w.bodies, body.id)

	body.destroyed = true
	body.body = nil
}
