package gun

// SinkFuncs adapts plain functions to an EventSink; nil fields are ignored.
type SinkFuncs struct {
	Fire func(event FireEvent)
	Hit  func(event ImpactEvent)
	Miss func(event MissEvent)
}

func (s SinkFuncs) OnFire(event FireEvent) {
	if s.Fire != nil {
		s.Fire(event)
	}
}

func (s SinkFuncs) OnHit(event ImpactEvent) {
	if s.Hit != nil {
		s.Hit(event)
	}
}

func (s SinkFuncs) OnMiss(event MissEvent) {
	if s.Miss != nil {
		s.Miss(event)
	}
}

// MultiSink fans every notification out to each sink in order.
type MultiSink []EventSink

func (m MultiSink) OnFire(event FireEvent) {
	for _, sink := range m {
		sink.OnFire(event)
	}
}

func (m MultiSink) OnHit(event ImpactEvent) {
	for _, sink := range m {
		sink.OnHit(event)
	}
}

func (m MultiSink) OnMiss(event MissEvent) {
	for _, sink := range m {
		sink.OnMiss(event)
	}
}
