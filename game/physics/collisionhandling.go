package physics

import (
	"github.com/ByteArena/box2d"

	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/types"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils/vector"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/gun"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Collision Handling
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

type bodyPair struct {
	a types.BodyID
	b types.BodyID
}

func makeBodyPair(a types.BodyID, b types.BodyID) bodyPair {
	if b < a {
		a, b = b, a
	}
	return bodyPair{a, b}
}

type collisionFilter struct { /* implements box2d.B2World.B2ContactFilterInterface */
	ignored map[bodyPair]struct{}
}

func newCollisionFilter() *collisionFilter {
	return &collisionFilter{
		ignored: make(map[bodyPair]struct{}),
	}
}

func (filter *collisionFilter) ignore(a types.BodyID, b types.BodyID) {
	if a == types.NoBody || b == types.NoBody || a == b {
		return
	}
	filter.ignored[makeBodyPair(a, b)] = struct{}{}
}

func (filter *collisionFilter) forget(id types.BodyID) {
	for pair := range filter.ignored {
		if pair.a == id || pair.b == id {
			delete(filter.ignored, pair)
		}
	}
}

// ShouldCollide replaces the default Box2D filter, so it applies the
// category/mask rules itself before looking at ignored pairs.
func (filter *collisionFilter) ShouldCollide(fixtureA *box2d.B2Fixture, fixtureB *box2d.B2Fixture) bool {
	filterA := fixtureA.GetFilterData()
	filterB := fixtureB.GetFilterData()

	if filterA.GroupIndex == filterB.GroupIndex && filterA.GroupIndex != 0 {
		return filterA.GroupIndex > 0
	}

	if filterA.MaskBits&filterB.CategoryBits == 0 || filterB.MaskBits&filterA.CategoryBits == 0 {
		return false
	}

	descriptorA, ok := fixtureA.GetBody().GetUserData().(types.PhysicalBodyDescriptor)
	if !ok {
		return true
	}

	descriptorB, ok := fixtureB.GetBody().GetUserData().(types.PhysicalBodyDescriptor)
	if !ok {
		return true
	}

	_, ignored := filter.ignored[makeBodyPair(descriptorA.ID, descriptorB.ID)]
	return !ignored
}

type collisionListener struct { /* implements box2d.B2World.B2ContactListenerInterface */
	collisionbuffer []gun.Collision
}

func newCollisionListener() *collisionListener {
	return &collisionListener{}
}

func (listener *collisionListener) PopCollisions() []gun.Collision {
	defer func() { listener.collisionbuffer = nil }()
	return listener.collisionbuffer
}

/// Called when two fixtures begin to touch.
/// Contacts are only valid during the callback, so everything the projectile
/// side needs is copied out right away.
func (listener *collisionListener) BeginContact(contact box2d.B2ContactInterface) { // contact has to be backed by a pointer
	fixtureA := contact.GetFixtureA()
	fixtureB := contact.GetFixtureB()

	descriptorA, ok := fixtureA.GetBody().GetUserData().(types.PhysicalBodyDescriptor)
	if !ok {
		return
	}

	descriptorB, ok := fixtureB.GetBody().GetUserData().(types.PhysicalBodyDescriptor)
	if !ok {
		return
	}

	if !descriptorA.IsProjectile() && !descriptorB.IsProjectile() {
		return
	}

	isTrigger := fixtureA.IsSensor() || fixtureB.IsSensor()

	worldManifold := box2d.MakeB2WorldManifold()
	hasPoint := false
	if !isTrigger && contact.GetManifold().PointCount > 0 {
		contact.GetWorldManifold(&worldManifold)
		hasPoint = true
	}

	// the manifold normal points from A to B
	normal := vector.FromB2Vec2(worldManifold.Normal)

	if descriptorA.IsProjectile() {
		listener.push(descriptorA.ID, descriptorB.ID, fixtureA, worldManifold, hasPoint, normal.Negate(), isTrigger)
	}

	if descriptorB.IsProjectile() {
		listener.push(descriptorB.ID, descriptorA.ID, fixtureB, worldManifold, hasPoint, normal, isTrigger)
	}
}

func (listener *collisionListener) push(self types.BodyID, other types.BodyID, fixture *box2d.B2Fixture, worldManifold box2d.B2WorldManifold, hasPoint bool, normal vector.Vector2, isTrigger bool) {
	point := vector.FromB2Vec2(fixture.GetBody().GetPosition())
	if hasPoint {
		point = vector.FromB2Vec2(worldManifold.Points[0])
	}

	if !hasPoint {
		normal = vector.MakeNullVector2()
	}

	listener.collisionbuffer = append(listener.collisionbuffer, gun.Collision{
		Self:      self,
		Other:     other,
		Point:     point,
		Normal:    normal,
		IsTrigger: isTrigger,
	})
}

/// Called when two fixtures cease to touch.
func (listener *collisionListener) EndContact(contact box2d.B2ContactInterface) { // contact has to be backed by a pointer
}

/// This is called after a contact is updated. This allows you to inspect a
/// contact before it goes to the solver.
/// Note: this is not called for sensors.
func (listener *collisionListener) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) { // contact has to be backed by a pointer
}

/// This lets you inspect a contact after the solver is finished.
func (listener *collisionListener) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) { // contact has to be backed by a pointer
}

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
