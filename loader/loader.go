// Package loader turns raw event logs into verified stream state. It
// composes an events loader, an optional anchor time source, and a
// policy registry.
package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/ipfs/go-cid"
	"go.uber.org/zap"

	"xdao.co/ceramic/event"
	"xdao.co/ceramic/policy"
	"xdao.co/ceramic/storage"
	"xdao.co/ceramic/stream"
	"xdao.co/ceramic/streamid"
)

type Options struct {
	// Policies gate the fold; nil means no policy checks.
	Policies *policy.Registry

	// Oracle resolves the trusted time of anchor proofs. When set,
	// streams whose log is anchored get their capability expirations
	// enforced against the anchor time.
	Oracle event.TimeOracle

	// Logger; nil disables logging.
	Logger *zap.Logger
}

// StreamLoader loads and reduces streams.
type StreamLoader struct {
	events   storage.EventsLoader
	policies *policy.Registry
	oracle   event.TimeOracle
	log      *zap.Logger
}

func New(events storage.EventsLoader, opts Options) *StreamLoader {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &StreamLoader{
		events:   events,
		policies: opts.Policies,
		oracle:   opts.Oracle,
		log:      log,
	}
}

// LoadStream fetches the event log of a stream and folds it into
// verified state. An undefined tip loads the latest known log.
func (l *StreamLoader) LoadStream(ctx context.Context, streamID streamid.StreamId, tip cid.Cid) (*stream.StreamState, error) {
	events, err := l.events.LoadEvents(ctx, streamID, tip)
	if err != nil {
		return nil, err
	}
	opts, err := l.verifyOptions(ctx, events)
	if err != nil {
		return nil, err
	}
	state, err := l.fold(uint64(streamID.Type), events, opts)
	if err != nil {
		return nil, err
	}
	l.log.Debug("loaded stream",
		zap.String("streamId", streamID.String()),
		zap.Int("events", len(events)))
	return state, nil
}

// LoadFromBlocks reconstructs a stream from a block store by chasing
// prev links back from tip. The tip must be defined.
func (l *StreamLoader) LoadFromBlocks(ctx context.Context, streamID streamid.StreamId, tip cid.Cid, blocks storage.BlockStore) (*stream.StreamState, error) {
	if !tip.Defined() {
		return nil, storage.ErrInvalidCID
	}
	store := storage.NewEventStore(blocks)
	if err := store.PushTip(ctx, streamID, tip); err != nil {
		return nil, err
	}
	events, err := store.LoadEvents(ctx, streamID, tip)
	if err != nil {
		return nil, err
	}
	opts, err := l.verifyOptions(ctx, events)
	if err != nil {
		return nil, err
	}
	set := make(map[cid.Cid]*event.Event, len(events))
	for _, ev := range events {
		set[ev.Cid] = ev
	}
	return stream.MakeFromMap(streamID, tip, set, opts...)
}

// fold is Make with policy checks threaded in: each policy inspects the
// event against the state it is about to mutate.
func (l *StreamLoader) fold(streamType uint64, events []*event.Event, opts []event.VerifyOption) (*stream.StreamState, error) {
	state := stream.New(streamType)
	for _, ev := range events {
		if err := l.policies.CheckEvent(state, ev); err != nil {
			return nil, err
		}
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

// verifyOptions derives extra verification from the log itself: when an
// anchor proof and a time oracle are both available, capability
// expirations are checked against the anchor time.
func (l *StreamLoader) verifyOptions(ctx context.Context, events []*event.Event) ([]event.VerifyOption, error) {
	if l.oracle == nil {
		return nil, nil
	}
	anchorTime, err := l.anchorTime(ctx, events)
	if err != nil {
		return nil, err
	}
	if anchorTime == nil {
		return nil, nil
	}
	return []event.VerifyOption{event.ExpirationTimeBefore{Before: *anchorTime}}, nil
}

// anchorTime resolves the proof time of the newest anchor event carrying
// its proof block. Nil when the log has no usable proof.
func (l *StreamLoader) anchorTime(ctx context.Context, events []*event.Event) (*time.Time, error) {
	for i := len(events) - 1; i >= 0; i-- {
		anchor, ok := events[i].Value.(*event.AnchorValue)
		if !ok || anchor.ProofBlock == nil {
			continue
		}
		proof, err := anchor.DecodeProof()
		if err != nil {
			return nil, fmt.Errorf("loader: anchor %s: %w", events[i].Cid, err)
		}
		at, err := l.oracle.ProofTime(ctx, proof)
		if err != nil {
			return nil, fmt.Errorf("loader: anchor %s: %w", events[i].Cid, err)
		}
		return &at, nil
	}
	return nil, nil
}
