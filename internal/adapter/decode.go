package adapter

import (
	"github.com/shruti514/semantic-multi-agent-search/models"
	"github.com/tidwall/gjson"
)

// decodeEvent turns one message payload into a stream event.
//
// An object with an "error" key is a remote failure, even when it also
// carries "phase". Otherwise an object with a "phase" key is a phase update.
// Anything else, including invalid JSON, yields ok == false and must be
// ignored by the caller.
func decodeEvent(data string) (event models.StreamEvent, ok bool) {
	if !gjson.Valid(data) {
		return nil, false
	}

	root := gjson.Parse(data)
	if !root.IsObject() {
		return nil, false
	}

	if errField := root.Get("error"); errField.Exists() {
		return models.StreamError{Message: errField.String()}, true
	}

	if phase := root.Get("phase"); phase.Exists() {
		return models.PhaseUpdate{
			Phase:     phase.String(),
			Reasoning: root.Get("reasoning").String(),
			Content:   root.Get("content").String(),
		}, true
	}

	return nil, false
}
