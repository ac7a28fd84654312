package scene

import (
	"github.com/pkg/errors"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/hierarchy"

	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/types"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/gun"
)

var (
	ErrUnknownNode   = errors.New("unknown scene node")
	ErrDuplicateNode = errors.New("scene node already exists")
)

// Scene is the scene graph: one donburi entity per node, keyed by the body
// identity it carries. Nodes without a physical body (rigs, sockets) are
// allowed and only take part in ancestry.
type Scene struct {
	world    donburi.World
	entities map[types.BodyID]donburi.Entity
}

func NewScene() *Scene {
	return &Scene{
		world:    donburi.NewWorld(),
		entities: make(map[types.BodyID]donburi.Entity),
	}
}

func (s *Scene) World() donburi.World {
	return s.world
}

func (s *Scene) Sink() EventSink {
	return EventSink{world: s.world}
}

func (s *Scene) AddNode(id types.BodyID, name string) (*donburi.Entry, error) {
	if id == types.NoBody {
		return nil, errors.Wrap(ErrUnknownNode, "empty node id")
	}

	if _, exists := s.entities[id]; exists {
		return nil, errors.Wrapf(ErrDuplicateNode, "%s", id)
	}

	entity := s.world.Create(Node)
	entry := s.world.Entry(entity)
	Node.SetValue(entry, NodeData{ID: id, Name: name})

	s.entities[id] = entity
	return entry, nil
}

func (s *Scene) Entry(id types.BodyID) (*donburi.Entry, bool) {
	entity, ok := s.entities[id]
	if !ok || !s.world.Valid(entity) {
		return nil, false
	}
	return s.world.Entry(entity), true
}

func (s *Scene) SetParent(child types.BodyID, parent types.BodyID) error {
	childEntry, ok := s.Entry(child)
	if !ok {
		return errors.Wrapf(ErrUnknownNode, "child %s", child)
	}

	parentEntry, ok := s.Entry(parent)
	if !ok {
		return errors.Wrapf(ErrUnknownNode, "parent %s", parent)
	}

	hierarchy.SetParent(childEntry, parentEntry)
	return nil
}

// Parent implements gun.SceneGraph.
func (s *Scene) Parent(id types.BodyID) (types.BodyID, bool) {
	entry, ok := s.Entry(id)
	if !ok {
		return types.NoBody, false
	}

	parent, ok := hierarchy.GetParent(entry)
	if !ok || !parent.Valid() || !parent.HasComponent(Node) {
		return types.NoBody, false
	}

	return Node.Get(parent).ID, true
}

func (s *Scene) AddHealth(id types.BodyID, maxlife float64) error {
	entry, ok := s.Entry(id)
	if !ok {
		return errors.Wrapf(ErrUnknownNode, "%s", id)
	}

	if !entry.HasComponent(HealthTracker) {
		entry.AddComponent(HealthTracker)
	}
	HealthTracker.SetValue(entry, *NewHealth(maxlife))

	return nil
}

func (s *Scene) Health(id types.BodyID) (Health, bool) {
	entry, ok := s.Entry(id)
	if !ok || !entry.HasComponent(HealthTracker) {
		return Health{}, false
	}
	return *HealthTracker.Get(entry), true
}

// Damageable implements gun.SceneGraph; only nodes carrying health are
// damageable.
func (s *Scene) Damageable(id types.BodyID) (gun.Damageable, bool) {
	entry, ok := s.Entry(id)
	if !ok || !entry.HasComponent(HealthTracker) {
		return nil, false
	}

	return damageable{scene: s, id: id}, true
}

// RemoveNode removes the node and its whole subtree.
func (s *Scene) RemoveNode(id types.BodyID) {
	entry, ok := s.Entry(id)
	if !ok {
		return
	}

	for _, child := range s.Children(id) {
		s.RemoveNode(child)
	}

	s.world.Remove(entry.Entity())
	delete(s.entities, id)
}

// Children implements gun.SceneGraph.
func (s *Scene) Children(id types.BodyID) []types.BodyID {
	res := make([]types.BodyID, 0)
	for other := range s.entities {
		if parent, ok := s.Parent(other); ok && parent == id {
			res = append(res, other)
		}
	}
	return res
}

// ProcessEvents dispatches every queued event to its subscribers.
func (s *Scene) ProcessEvents() {
	processEvents(s.world)
}

type damageable struct {
	scene *Scene
	id    types.BodyID
}

func (d damageable) ApplyDamage(amount float64, impact gun.ImpactEvent) {
	entry, ok := d.scene.Entry(d.id)
	if !ok || !entry.HasComponent(HealthTracker) {
		return
	}

	health := HealthTracker.Get(entry)
	if health.IsDead() {
		return
	}

	health.AddLife(-1 * amount)

	DamagedEvents.Publish(d.scene.world, DamagedEvent{
		Target:    d.id,
		Amount:    amount,
		Remaining: health.GetLife(),
		Impact:    impact,
	})

	if health.IsDead() {
		utils.DebugContext("scene", "target killed", utils.Context{
			"target": d.id.String(),
			"shot":   impact.ShotID.String(),
		})

		KilledEvents.Publish(d.scene.world, KilledEvent{
			Target: d.id,
			Impact: impact,
		})
	}
}
