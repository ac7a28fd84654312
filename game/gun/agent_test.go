package gun_test

import (
	"testing"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/types"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils/vector"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/config"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/gun"
)

const (
	wielderID  types.BodyID = "wielder"
	launcherID types.BodyID = "launcher"
	wallID     types.BodyID = "wall"
)

type agentFixture struct {
	agent       *gun.ProjectileAgent
	body        *fakeBody
	query       *fakeQuery
	graph       *fakeGraph
	resolutions []gun.Resolution
}

func testSpec() gun.ProjectileSpec {
	spec := gun.SpecFromConfig(config.Default().Projectile)
	spec.Exclusions.Add(wielderID)
	spec.Exclusions.Add(launcherID)
	return spec
}

func newAgentFixture(spec gun.ProjectileSpec, spawnTime float64) *agentFixture {
	fixture := &agentFixture{
		body:  newFakeBody("projectile", vector.MakeVector2(0, 1), vector.MakeVector2(spec.Speed, 0)),
		query: &fakeQuery{},
		graph: newFakeGraph(),
	}

	fixture.agent = gun.NewProjectileAgent(uuid.NewV4(), spec, fixture.body, spawnTime, gun.AgentEnv{
		Query: fixture.query,
		Graph: fixture.graph,
		Detection: gun.DetectionSettings{
			LookaheadFactor: 1.5,
			MinSpeed:        0.1,
			Gravity:         vector.MakeVector2(0, -config.StandardGravity),
		},
		OnResolve: func(agent *gun.ProjectileAgent, resolution gun.Resolution) {
			fixture.resolutions = append(fixture.resolutions, resolution)
		},
	})

	return fixture
}

func collisionWith(other types.BodyID) gun.Collision {
	return gun.Collision{
		Self:   "projectile",
		Other:  other,
		Point:  vector.MakeVector2(1, 1),
		Normal: vector.MakeVector2(-1, 0),
	}
}

func TestAgentSpawnGrace(t *testing.T) {
	spec := testSpec()
	spec.CollisionIgnoreWindow = 0.05

	type testCase struct {
		Name     string
		Now      float64
		Expected bool
	}

	testCases := []testCase{
		{Name: "At spawn", Now: 0, Expected: false},
		{Name: "Inside window", Now: 0.04, Expected: false},
		{Name: "Window boundary", Now: 0.05, Expected: true},
		{Name: "After window", Now: 0.2, Expected: true},
	}

	for _, example := range testCases {
		t.Run(example.Name, func(t *testing.T) {
			fixture := newAgentFixture(spec, 0)
			fixture.agent.OnCollisionBegin(collisionWith(wallID), example.Now)

			assert.Equal(t, example.Expected, fixture.agent.Resolved())
		})
	}
}

func TestAgentStateTransitions(t *testing.T) {
	spec := testSpec()
	spec.CollisionIgnoreWindow = 0.05

	fixture := newAgentFixture(spec, 1)
	assert.Equal(t, gun.StateArmed, fixture.agent.State())

	fixture.agent.FixedStep(1.01, 1.0/60)
	assert.Equal(t, gun.StateArmed, fixture.agent.State())

	fixture.agent.FixedStep(1.05, 1.0/60)
	assert.Equal(t, gun.StateFlying, fixture.agent.State())

	fixture.agent.OnCollisionBegin(collisionWith(wallID), 1.06)
	assert.Equal(t, gun.StateResolved, fixture.agent.State())

	spec.CollisionIgnoreWindow = 0
	assert.Equal(t, gun.StateFlying, newAgentFixture(spec, 0).agent.State())
}

func TestAgentSelfImmunity(t *testing.T) {
	type testCase struct {
		Name  string
		Other types.BodyID
	}

	testCases := []testCase{
		{Name: "Wielder", Other: wielderID},
		{Name: "Launcher body", Other: launcherID},
		{Name: "Wielder descendant", Other: "wielder-arm-collider"},
		{Name: "Own body", Other: "projectile"},
		{Name: "Unidentified body", Other: types.NoBody},
	}

	for _, example := range testCases {
		t.Run(example.Name, func(t *testing.T) {
			fixture := newAgentFixture(testSpec(), 0)
			fixture.graph.parents["wielder-arm-collider"] = "wielder-arm"
			fixture.graph.parents["wielder-arm"] = wielderID

			fixture.agent.OnCollisionBegin(collisionWith(example.Other), 1)

			assert.False(t, fixture.agent.Resolved())
			assert.Empty(t, fixture.resolutions)
		})
	}
}

func TestAgentAmbiguousAncestryIsExcluded(t *testing.T) {
	fixture := newAgentFixture(testSpec(), 0)

	fixture.graph.parents["a"] = "b"
	fixture.graph.parents["b"] = "a"

	fixture.agent.OnCollisionBegin(collisionWith("a"), 1)
	assert.False(t, fixture.agent.Resolved())

	previous := types.BodyID("deep-0")
	for i := 1; i <= gun.MaxAncestryDepth+2; i++ {
		current := types.BodyID("deep-" + string(rune('a'+i)))
		fixture.graph.parents[previous] = current
		previous = current
	}

	fixture.agent.OnCollisionBegin(collisionWith("deep-0"), 1)
	assert.False(t, fixture.agent.Resolved())
}

func TestAgentImpactResolvesOnce(t *testing.T) {
	fixture := newAgentFixture(testSpec(), 0)
	target := &fakeDamageable{}
	fixture.graph.damageables["target"] = target

	fixture.agent.OnCollisionBegin(collisionWith("target"), 0.5)
	fixture.agent.OnCollisionBegin(collisionWith(wallID), 0.5)
	fixture.agent.FixedStep(0.6, 1.0/60)
	fixture.agent.FixedStep(10, 1.0/60)

	require.Len(t, fixture.resolutions, 1)

	resolution := fixture.resolutions[0]
	assert.Equal(t, gun.OutcomeImpact, resolution.Outcome)
	require.NotNil(t, resolution.Impact)
	assert.Equal(t, types.BodyID("target"), resolution.Impact.Target)
	assert.Equal(t, gun.DetectedReactive, resolution.Impact.Detection)
	assert.Equal(t, 0.5, resolution.Impact.Time)
	assert.Equal(t, fixture.agent.ID(), resolution.Impact.ShotID)

	require.Len(t, target.received, 1)
	assert.Equal(t, testSpec().Damage, target.received[0].Amount)

	assert.Equal(t, 1, fixture.body.halted)
	assert.True(t, fixture.body.Velocity().IsNull())
}

func TestAgentIgnoresTriggers(t *testing.T) {
	fixture := newAgentFixture(testSpec(), 0)

	collision := collisionWith("zone")
	collision.IsTrigger = true
	fixture.agent.OnCollisionBegin(collision, 1)

	fixture.query.hits = []gun.RayHit{{Body: "zone", IsTrigger: true, Point: vector.MakeVector2(0.1, 1)}}
	fixture.agent.FixedStep(0.5, 1.0/60)

	assert.False(t, fixture.agent.Resolved())
}

func TestAgentLifetime(t *testing.T) {
	spec := testSpec()
	spec.Lifetime = 2

	fixture := newAgentFixture(spec, 1)

	fixture.agent.FixedStep(2.9, 1.0/60)
	assert.False(t, fixture.agent.Resolved())

	fixture.agent.FixedStep(3, 1.0/60)
	require.Len(t, fixture.resolutions, 1)
	assert.Equal(t, gun.OutcomeExpired, fixture.resolutions[0].Outcome)
	assert.Nil(t, fixture.resolutions[0].Impact)
	assert.Equal(t, 3.0, fixture.resolutions[0].Time)
}

func TestAgentLostBody(t *testing.T) {
	fixture := newAgentFixture(testSpec(), 0)
	fixture.body.valid = false

	fixture.agent.FixedStep(0.1, 1.0/60)

	require.Len(t, fixture.resolutions, 1)
	assert.Equal(t, gun.OutcomeLost, fixture.resolutions[0].Outcome)
	assert.Equal(t, 0, fixture.body.halted)
}

func TestAgentGravity(t *testing.T) {
	spec := testSpec()
	spec.GravityMultiplier = 0.3

	fixture := newAgentFixture(spec, 0)
	fixture.agent.FixedStep(0.1, 1.0/60)

	require.Len(t, fixture.body.accelerations, 1)
	assert.InDelta(t, 0, fixture.body.accelerations[0].GetX(), 1e-9)
	assert.InDelta(t, -config.StandardGravity*0.3, fixture.body.accelerations[0].GetY(), 1e-9)
}

func TestAgentPredictiveDetection(t *testing.T) {
	dt := 1.0 / 60

	type testCase struct {
		Name     string
		Velocity vector.Vector2
		Hits     []gun.RayHit
		Expected bool
		Casts    int
	}

	testCases := []testCase{
		{
			Name:     "Hit ahead",
			Velocity: vector.MakeVector2(30, 40),
			Hits:     []gun.RayHit{{Body: wallID, Point: vector.MakeVector2(0.3, 1.4), Normal: vector.MakeVector2(-1, 0)}},
			Expected: true,
			Casts:    1,
		},
		{
			Name:     "Excluded hit ahead",
			Velocity: vector.MakeVector2(30, 40),
			Hits:     []gun.RayHit{{Body: wielderID, Point: vector.MakeVector2(0.3, 1.4)}},
			Expected: false,
			Casts:    1,
		},
		{
			Name:     "Nothing ahead",
			Velocity: vector.MakeVector2(30, 40),
			Expected: false,
			Casts:    1,
		},
		{
			Name:     "Below minimum speed",
			Velocity: vector.MakeVector2(0.05, 0),
			Hits:     []gun.RayHit{{Body: wallID}},
			Expected: false,
			Casts:    0,
		},
	}

	for _, example := range testCases {
		t.Run(example.Name, func(t *testing.T) {
			fixture := newAgentFixture(testSpec(), 0)
			fixture.body.velocity = example.Velocity
			fixture.query.hits = example.Hits

			fixture.agent.FixedStep(0.01, dt)

			assert.Equal(t, example.Expected, fixture.agent.Resolved())
			require.Len(t, fixture.query.casts, example.Casts)

			if example.Casts > 0 {
				cast := fixture.query.casts[0]
				assert.InDelta(t, 50*dt*1.5, cast.Distance, 1e-9)
				assert.InDelta(t, 0.6, cast.Direction.GetX(), 1e-9)
				assert.InDelta(t, 0.8, cast.Direction.GetY(), 1e-9)
				assert.Equal(t, fixture.body.Position(), cast.Origin)
			}

			if example.Expected {
				resolution, ok := fixture.agent.Resolution()
				require.True(t, ok)
				assert.Equal(t, gun.DetectedPredictive, resolution.Impact.Detection)
				assert.Equal(t, example.Hits[0].Point, resolution.Impact.Position)
				assert.Equal(t, example.Hits[0].Normal, resolution.Impact.Normal)
			}
		})
	}
}

func TestAgentPredictiveHonoursMask(t *testing.T) {
	spec := testSpec()
	spec.Mask = types.BuildLayerMask(types.LayerWorld)

	fixture := newAgentFixture(spec, 0)
	fixture.query.layers = map[types.BodyID]types.Layer{"npc": types.LayerCharacter}
	fixture.query.hits = []gun.RayHit{{Body: "npc"}}

	fixture.agent.FixedStep(0.01, 1.0/60)
	assert.False(t, fixture.agent.Resolved())
}

func TestAgentSpecIsCopied(t *testing.T) {
	spec := testSpec()
	fixture := newAgentFixture(spec, 0)

	spec.Exclusions.Add("late-addition")

	assert.False(t, fixture.agent.Spec().Exclusions.Contains("late-addition"))
	fixture.agent.OnCollisionBegin(collisionWith("late-addition"), 1)
	assert.True(t, fixture.agent.Resolved())
}
