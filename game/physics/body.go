package physics

import (
	"math"

	"github.com/ByteArena/box2d"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"

	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/types"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils/vector"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/gun"
)

// Body is a handle on a Box2D body owned by a World.
type Body struct {
	world     *World
	id        types.BodyID
	body      *box2d.B2Body
	destroyed bool
}

func (b *Body) ID() types.BodyID {
	return b.id
}

func (b *Body) Valid() bool {
	return b != nil && !b.destroyed && b.body != nil
}

func (b *Body) GetBody() *box2d.B2Body {
	return b.body
}

func (b *Body) Position() vector.Vector2 {
	if !b.Valid() {
		return vector.MakeNullVector2()
	}
	return vector.FromB2Vec2(b.body.GetPosition())
}

func (b *Body) Velocity() vector.Vector2 {
	if !b.Valid() {
		return vector.MakeNullVector2()
	}
	return vector.FromB2Vec2(b.body.GetLinearVelocity())
}

// ApplyAcceleration turns an acceleration into a force for the next step.
func (b *Body) ApplyAcceleration(acceleration vector.Vector2) {
	if !b.Valid() {
		return
	}

	force := acceleration.Scale(b.body.GetMass())
	b.body.ApplyForceToCenter(force.ToB2Vec2(), true)
}

func (b *Body) Halt() {
	if !b.Valid() {
		return
	}

	b.body.SetLinearVelocity(box2d.MakeB2Vec2(0, 0))
	b.body.SetAngularVelocity(0)

	if !b.world.PhysicalWorld.IsLocked() {
		b.body.SetActive(false)
	}
}

// NewProjectileBody creates a fast dynamic circle with continuous collision
// detection. Gravity is left to the projectile itself.
func (w *World) NewProjectileBody(spec gun.ProjectileSpec, position vector.Vector2, velocity vector.Vector2) (gun.Body, error) {
	if w.PhysicalWorld.IsLocked() {
		return nil, ErrWorldLocked
	}

	if spec.Radius <= 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "projectile radius %f", spec.Radius)
	}

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Type = box2d.B2BodyType.B2_dynamicBody
	bodydef.AllowSleep = false
	bodydef.Bullet = true
	bodydef.GravityScale = 0.0
	bodydef.Position.Set(position.GetX(), position.GetY())
	bodydef.LinearVelocity = velocity.ToB2Vec2()

	b2body := w.PhysicalWorld.CreateBody(&bodydef)
	b2body.SetLinearDamping(spec.LinearDamping)
	b2body.SetAngularDamping(spec.AngularDamping)

	shape := box2d.MakeB2CircleShape()
	shape.SetRadius(spec.Radius)

	density := 1.0
	if spec.Mass > 0 {
		density = spec.Mass / (math.Pi * spec.Radius * spec.Radius)
	}

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &shape
	fixturedef.Density = density
	fixturedef.Friction = 0.0
	fixturedef.Restitution = 0.0
	fixturedef.Filter.CategoryBits = uint16(spec.Layer)
	fixturedef.Filter.MaskBits = uint16(spec.Mask)
	b2body.CreateFixtureFromDef(&fixturedef)

	id := types.BodyID("projectile-" + uuid.NewV4().String())

	return w.register(
		types.MakePhysicalBodyDescriptor(types.PhysicalBodyDescriptorType.Projectile, id),
		b2body,
	), nil
}

func (w *World) DestroyBody(body gun.Body) {
	handle, ok := body.(*Body)
	if !ok || handle == nil || handle.world != w {
		return
	}

	w.destroy(handle)
}

// ColliderDef describes a scene collider: a box, or a circle when Radius is
// set.
type ColliderDef struct {
	Descriptor  types.PhysicalBodyDescriptor
	Layer       types.Layer
	Mask        types.Layer
	Position    vector.Vector2
	HalfExtents vector.Vector2
	Radius      float64
	Sensor      bool
	Dynamic     bool
	Density     float64
	Friction    float64
}

func (w *World) AddCollider(def ColliderDef) (*Body, error) {
	if w.PhysicalWorld.IsLocked() {
		return nil, ErrWorldLocked
	}

	if def.Descriptor.ID == types.NoBody {
		return nil, errors.Wrap(ErrInvalidShape, "collider has no id")
	}

	if _, exists := w.bodies[def.Descriptor.ID]; exists {
		return nil, errors.Wrapf(ErrDuplicateBody, "%s", def.Descriptor.ID)
	}

	var shape box2d.B2ShapeInterface
	switch {
	case def.Radius > 0:
		circle := box2d.MakeB2CircleShape()
		circle.SetRadius(def.Radius)
		shape = &circle
	case def.HalfExtents.GetX() > 0 && def.HalfExtents.GetY() > 0:
		box := box2d.MakeB2PolygonShape()
		box.SetAsBox(def.HalfExtents.GetX(), def.HalfExtents.GetY())
		shape = &box
	default:
		return nil, errors.Wrapf(ErrInvalidShape, "%s has neither radius nor extents", def.Descriptor.ID)
	}

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Type = box2d.B2BodyType.B2_staticBody
	if def.Dynamic {
		bodydef.Type = box2d.B2BodyType.B2_dynamicBody
		bodydef.FixedRotation = true
	}
	bodydef.Position.Set(def.Position.GetX(), def.Position.GetY())

	b2body := w.PhysicalWorld.CreateBody(&bodydef)

	mask := def.Mask
	if mask == types.LayerNone {
		mask = types.LayerAll
	}

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = shape
	fixturedef.Density = def.Density
	fixturedef.Friction = def.Friction
	fixturedef.IsSensor = def.Sensor
	fixturedef.Filter.CategoryBits = uint16(def.Layer)
	fixturedef.Filter.MaskBits = uint16(mask)
	b2body.CreateFixtureFromDef(&fixturedef)

	return w.register(def.Descriptor, b2body), nil
}
