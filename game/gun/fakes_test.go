package gun_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"

	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/types"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils/vector"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/gun"
)

func TestMain(m *testing.M) {
	utils.SetOutput(ioutil.Discard)
	os.Exit(m.Run())
}

type fakeBody struct {
	id            types.BodyID
	valid         bool
	position      vector.Vector2
	velocity      vector.Vector2
	accelerations []vector.Vector2
	halted        int
}

func newFakeBody(id types.BodyID, position vector.Vector2, velocity vector.Vector2) *fakeBody {
	return &fakeBody{
		id:       id,
		valid:    true,
		position: position,
		velocity: velocity,
	}
}

func (b *fakeBody) ID() types.BodyID { return b.id }

func (b *fakeBody) Valid() bool { return b.valid }

func (b *fakeBody) Position() vector.Vector2 { return b.position }

func (b *fakeBody) Velocity() vector.Vector2 { return b.velocity }

func (b *fakeBody) ApplyAcceleration(a vector.Vector2) {
	b.accelerations = append(b.accelerations, a)
}

func (b *fakeBody) Halt() {
	b.halted++
	b.velocity = vector.MakeNullVector2()
}

type castCall struct {
	Origin    vector.Vector2
	Direction vector.Vector2
	Distance  float64
	Filter    gun.QueryFilter
}

// fakeQuery answers every cast with the first hit its filter accepts.
type fakeQuery struct {
	hits    []gun.RayHit
	layers  map[types.BodyID]types.Layer
	casts   []castCall
	ignored [][2]types.BodyID
}

func (q *fakeQuery) RayCast(origin vector.Vector2, direction vector.Vector2, maxDistance float64, filter gun.QueryFilter) (gun.RayHit, bool) {
	q.casts = append(q.casts, castCall{origin, direction, maxDistance, filter})

	for _, hit := range q.hits {
		layer, ok := q.layers[hit.Body]
		if !ok {
			layer = types.LayerWorld
		}

		if filter.Accepts(hit.Body, layer, hit.IsTrigger) {
			return hit, true
		}
	}

	return gun.RayHit{}, false
}

func (q *fakeQuery) IgnoreCollisionPair(a types.BodyID, b types.BodyID) {
	q.ignored = append(q.ignored, [2]types.BodyID{a, b})
}

type fakeGraph struct {
	parents     map[types.BodyID]types.BodyID
	damageables map[types.BodyID]gun.Damageable
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{
		parents:     make(map[types.BodyID]types.BodyID),
		damageables: make(map[types.BodyID]gun.Damageable),
	}
}

func (g *fakeGraph) Parent(id types.BodyID) (types.BodyID, bool) {
	parent, ok := g.parents[id]
	return parent, ok
}

func (g *fakeGraph) Children(id types.BodyID) []types.BodyID {
	res := make([]types.BodyID, 0)
	for child, parent := range g.parents {
		if parent == id {
			res = append(res, child)
		}
	}
	return res
}

func (g *fakeGraph) Damageable(id types.BodyID) (gun.Damageable, bool) {
	damageable, ok := g.damageables[id]
	return damageable, ok
}

type fakeFactory struct {
	count     int
	err       error
	created   []*fakeBody
	specs     []gun.ProjectileSpec
	destroyed []types.BodyID
}

func (f *fakeFactory) NewProjectileBody(spec gun.ProjectileSpec, position vector.Vector2, velocity vector.Vector2) (gun.Body, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.count++
	body := newFakeBody(types.BodyID(fmt.Sprintf("projectile-%d", f.count)), position, velocity)
	f.created = append(f.created, body)
	f.specs = append(f.specs, spec)
	return body, nil
}

func (f *fakeFactory) DestroyBody(body gun.Body) {
	f.destroyed = append(f.destroyed, body.ID())
	if fake, ok := body.(*fakeBody); ok {
		fake.valid = false
	}
}

type recordedDamage struct {
	Amount float64
	Impact gun.ImpactEvent
}

type fakeDamageable struct {
	received []recordedDamage
}

func (d *fakeDamageable) ApplyDamage(amount float64, impact gun.ImpactEvent) {
	d.received = append(d.received, recordedDamage{amount, impact})
}
