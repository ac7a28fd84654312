package scene

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/types"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/gun"
)

type DamagedEvent struct {
	Target    types.BodyID
	Amount    float64
	Remaining float64
	Impact    gun.ImpactEvent
}

type KilledEvent struct {
	Target types.BodyID
	Impact gun.ImpactEvent
}

var (
	FireEvents    = events.NewEventType[gun.FireEvent]()
	HitEvents     = events.NewEventType[gun.ImpactEvent]()
	MissEvents    = events.NewEventType[gun.MissEvent]()
	DamagedEvents = events.NewEventType[DamagedEvent]()
	KilledEvents  = events.NewEventType[KilledEvent]()
)

// EventSink queues launcher notifications on the scene world. Subscribers
// run on the next ProcessEvents, never from inside the launcher.
type EventSink struct {
	world donburi.World
}

func (sink EventSink) OnFire(event gun.FireEvent) {
	FireEvents.Publish(sink.world, event)
}

func (sink EventSink) OnHit(event gun.ImpactEvent) {
	HitEvents.Publish(sink.world, event)
}

func (sink EventSink) OnMiss(event gun.MissEvent) {
	MissEvents.Publish(sink.world, event)
}

func processEvents(world donburi.World) {
	FireEvents.ProcessEvents(world)
	HitEvents.ProcessEvents(world)
	MissEvents.ProcessEvents(world)
	DamagedEvents.ProcessEvents(world)
	KilledEvents.ProcessEvents(world)
}
