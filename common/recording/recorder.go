package recording

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Recorder stores one JSON line per shot event.
type Recorder interface {
	Record(scenario string, kind string, event interface{}) error
	Close() error
}

type RecordLine struct {
	Time     string          `json:"time"`
	Scenario string          `json:"scenario"`
	Kind     string          `json:"kind"`
	Event    json.RawMessage `json:"event"`
}

func makeRecordLine(scenario string, kind string, event interface{}) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "could not serialize %s event", kind)
	}

	return json.Marshal(RecordLine{
		Time:     time.Now().Format(time.RFC3339),
		Scenario: scenario,
		Kind:     kind,
		Event:    data,
	})
}
