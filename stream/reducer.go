package stream

import (
	"slices"

	"github.com/ipfs/go-cid"

	"xdao.co/ceramic/event"
	"xdao.co/ceramic/streamid"
)

// Make folds an ordered event log into stream state. Every event's
// capability is checked against the stream model after it is applied;
// extra verify options are appended to that check.
func Make(streamType uint64, events []*event.Event, opts ...event.VerifyOption) (*StreamState, error) {
	state := New(streamType)
	for _, ev := range events {
		if err := state.ApplyEvent(ev); err != nil {
			return nil, err
		}
		model, err := state.MustModel()
		if err != nil {
			return nil, err
		}
		checks := append([]event.VerifyOption{event.ResourceModelsContain{Model: model}}, opts...)
		if _, err := ev.Verify(checks...); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// MakeFromMap folds the chain ending at tip out of an unordered event
// set. The chain is collected by walking prev links back to the genesis
// event and applied oldest first.
func MakeFromMap(streamID streamid.StreamId, tip cid.Cid, events map[cid.Cid]*event.Event, opts ...event.VerifyOption) (*StreamState, error) {
	var chain []*event.Event
	seen := make(map[cid.Cid]struct{}, len(events))
	for id := tip; ; {
		if _, ok := seen[id]; ok {
			return nil, newError(KindChain, "prev cycle at event %s", id)
		}
		seen[id] = struct{}{}
		ev, ok := events[id]
		if !ok {
			return nil, newError(KindChain, "event %s not found", id)
		}
		chain = append(chain, ev)
		prev, err := ev.Prev()
		if err != nil {
			return nil, wrapError(KindChain, err, "event %s", id)
		}
		if !prev.Defined() {
			break
		}
		id = prev
	}
	slices.Reverse(chain)
	return Make(uint64(streamID.Type), chain, opts...)
}
