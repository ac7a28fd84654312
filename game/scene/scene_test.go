package scene

import (
	"io/ioutil"
	"os"
	"testing"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/types"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/gun"
)

func TestMain(m *testing.M) {
	utils.SetOutput(ioutil.Discard)
	os.Exit(m.Run())
}

func buildRig(t *testing.T) *Scene {
	t.Helper()

	s := NewScene()
	for _, id := range []types.BodyID{"player", "arm", "hand", "launcher", "dummy"} {
		_, err := s.AddNode(id, id.String())
		require.NoError(t, err)
	}

	require.NoError(t, s.SetParent("arm", "player"))
	require.NoError(t, s.SetParent("hand", "arm"))
	require.NoError(t, s.SetParent("launcher", "hand"))

	return s
}

func TestSceneAncestry(t *testing.T) {
	s := buildRig(t)

	type testCase struct {
		Name      string
		ID        types.BodyID
		Parent    types.BodyID
		HasParent bool
	}

	testCases := []testCase{
		{Name: "Launcher", ID: "launcher", Parent: "hand", HasParent: true},
		{Name: "Arm", ID: "arm", Parent: "player", HasParent: true},
		{Name: "Root", ID: "player", HasParent: false},
		{Name: "Unknown", ID: "ghost", HasParent: false},
	}

	for _, example := range testCases {
		t.Run(example.Name, func(t *testing.T) {
			parent, ok := s.Parent(example.ID)
			assert.Equal(t, example.HasParent, ok)
			assert.Equal(t, example.Parent, parent)
		})
	}
}

func TestSceneChildren(t *testing.T) {
	s := buildRig(t)

	assert.ElementsMatch(t, []types.BodyID{"arm"}, s.Children("player"))
	assert.ElementsMatch(t, []types.BodyID{"launcher"}, s.Children("hand"))
	assert.Empty(t, s.Children("launcher"))
	assert.Empty(t, s.Children("ghost"))
}

func TestSceneNodeErrors(t *testing.T) {
	s := buildRig(t)

	_, err := s.AddNode("player", "again")
	assert.Error(t, err)

	_, err = s.AddNode(types.NoBody, "nobody")
	assert.Error(t, err)

	assert.Error(t, s.SetParent("ghost", "player"))
	assert.Error(t, s.SetParent("player", "ghost"))
	assert.Error(t, s.AddHealth("ghost", 10))
}

func TestDamageableHealth(t *testing.T) {
	s := buildRig(t)
	require.NoError(t, s.AddHealth("dummy", 100))

	_, ok := s.Damageable("player")
	assert.False(t, ok)

	target, ok := s.Damageable("dummy")
	require.True(t, ok)

	var damaged []DamagedEvent
	var killed []KilledEvent

	DamagedEvents.Subscribe(s.World(), func(w donburi.World, event DamagedEvent) {
		damaged = append(damaged, event)
	})
	KilledEvents.Subscribe(s.World(), func(w donburi.World, event KilledEvent) {
		killed = append(killed, event)
	})

	impact := gun.ImpactEvent{ShotID: uuid.NewV4(), Target: "dummy"}

	target.ApplyDamage(60, impact)
	target.ApplyDamage(60, impact)
	target.ApplyDamage(60, impact)

	assert.Empty(t, damaged)

	s.ProcessEvents()

	require.Len(t, damaged, 2)
	assert.Equal(t, 40.0, damaged[0].Remaining)
	assert.Equal(t, 0.0, damaged[1].Remaining)

	require.Len(t, killed, 1)
	assert.Equal(t, types.BodyID("dummy"), killed[0].Target)
	assert.Equal(t, impact.ShotID, killed[0].Impact.ShotID)

	health, ok := s.Health("dummy")
	require.True(t, ok)
	assert.True(t, health.IsDead())
	assert.Equal(t, 100.0, health.GetMaxLife())
}

func TestEventSinkQueues(t *testing.T) {
	s := NewScene()
	sink := s.Sink()

	var fired, hits, misses int
	FireEvents.Subscribe(s.World(), func(w donburi.World, event gun.FireEvent) { fired++ })
	HitEvents.Subscribe(s.World(), func(w donburi.World, event gun.ImpactEvent) { hits++ })
	MissEvents.Subscribe(s.World(), func(w donburi.World, event gun.MissEvent) { misses++ })

	sink.OnFire(gun.FireEvent{})
	sink.OnFire(gun.FireEvent{})
	sink.OnHit(gun.ImpactEvent{})
	sink.OnMiss(gun.MissEvent{})

	assert.Equal(t, 0, fired+hits+misses)

	s.ProcessEvents()

	assert.Equal(t, 2, fired)
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)

	s.ProcessEvents()
	assert.Equal(t, 2, fired)
}

func TestRemoveNodeRemovesSubtree(t *testing.T) {
	s := buildRig(t)

	s.RemoveNode("arm")

	for _, id := range []types.BodyID{"arm", "hand", "launcher"} {
		_, ok := s.Entry(id)
		assert.False(t, ok, id.String())
	}

	_, ok := s.Entry("player")
	assert.True(t, ok)
}
