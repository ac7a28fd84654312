package gun_test

import (
	"testing"

	uuid "github.com/satori/go.uuid"
	"pgregory.net/rapid"

	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/types"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils/vector"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/config"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/gun"
)

var propertyBodies = []types.BodyID{
	wielderID,
	launcherID,
	"wielder-hand",
	"projectile",
	wallID,
	"target",
	types.NoBody,
}

func TestAgentResolutionProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		spec := testSpec()
		spec.CollisionIgnoreWindow = rapid.Float64Range(0, 0.2).Draw(t, "window")
		spec.Lifetime = rapid.Float64Range(0.3, 2).Draw(t, "lifetime")

		graph := newFakeGraph()
		graph.parents["wielder-hand"] = wielderID

		query := &fakeQuery{}
		body := newFakeBody("projectile", vector.MakeVector2(0, 1), vector.MakeVector2(spec.Speed, 0))
		resolutions := 0
		damage := &fakeDamageable{}
		graph.damageables["target"] = damage

		agent := gun.NewProjectileAgent(uuid.NewV4(), spec, body, 0, gun.AgentEnv{
			Query: query,
			Graph: graph,
			Detection: gun.DetectionSettings{
				LookaheadFactor: 1.5,
				MinSpeed:        0.1,
				Gravity:         vector.MakeVector2(0, -config.StandardGravity),
			},
			OnResolve: func(agent *gun.ProjectileAgent, resolution gun.Resolution) {
				resolutions++
			},
		})

		now := 0.0
		dt := 1.0 / 60
		steps := rapid.IntRange(1, 200).Draw(t, "steps")

		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(t, "ahead") {
				query.hits = []gun.RayHit{{
					Body:      rapid.SampledFrom(propertyBodies).Draw(t, "ahead body"),
					IsTrigger: rapid.Bool().Draw(t, "ahead trigger"),
				}}
			} else {
				query.hits = nil
			}

			agent.FixedStep(now, dt)
			now += dt

			collisions := rapid.IntRange(0, 3).Draw(t, "collisions")
			for c := 0; c < collisions; c++ {
				agent.OnCollisionBegin(gun.Collision{
					Self:      "projectile",
					Other:     rapid.SampledFrom(propertyBodies).Draw(t, "other"),
					IsTrigger: rapid.Bool().Draw(t, "trigger"),
				}, now)
			}
		}

		if resolutions > 1 {
			t.Fatalf("agent resolved %d times", resolutions)
		}

		resolution, ok := agent.Resolution()
		if ok != (resolutions == 1) {
			t.Fatalf("resolution flag %v does not match %d callbacks", ok, resolutions)
		}

		if len(damage.received) > 1 {
			t.Fatalf("target damaged %d times", len(damage.received))
		}

		if !ok || resolution.Outcome != gun.OutcomeImpact {
			return
		}

		switch resolution.Impact.Target {
		case wielderID, launcherID, "wielder-hand", "projectile", types.NoBody:
			t.Fatalf("impact on excluded body %q", resolution.Impact.Target)
		}

		if resolution.Impact.Detection == gun.DetectedReactive && resolution.Impact.Time < spec.CollisionIgnoreWindow {
			t.Fatalf("reactive impact at %v inside spawn window %v", resolution.Impact.Time, spec.CollisionIgnoreWindow)
		}
	})
}
