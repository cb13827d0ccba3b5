package storage

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/ipfs/go-cid"

	"xdao.co/ceramic/event"
	"xdao.co/ceramic/streamid"
)

// EventStore persists stream logs in a block store, one block per event
// envelope plus the linked and capability blocks beside it, and tracks
// the latest tip per stream.
type EventStore struct {
	blocks BlockStore

	mu   sync.RWMutex
	tips map[string]cid.Cid
}

var (
	_ EventsLoader   = (*EventStore)(nil)
	_ EventsUploader = (*EventStore)(nil)
	_ TipStore       = (*EventStore)(nil)
)

func NewEventStore(blocks BlockStore) *EventStore {
	return &EventStore{blocks: blocks, tips: make(map[string]cid.Cid)}
}

// UploadEvent stores the envelope and its side blocks, then advances the
// stream tip to the event.
func (s *EventStore) UploadEvent(ctx context.Context, streamID streamid.StreamId, ev *event.Event) error {
	data, err := ev.Encode()
	if err != nil {
		return err
	}
	codec := ev.Cid.Prefix().Codec
	id, err := s.blocks.Put(ctx, codec, data)
	if err != nil {
		return err
	}
	if !id.Equals(ev.Cid) {
		return ErrCIDMismatch
	}

	if signed, ok := ev.Value.(*event.SignedValue); ok {
		if signed.LinkedBlock != nil {
			if _, err := s.blocks.Put(ctx, cid.DagCBOR, signed.LinkedBlock); err != nil {
				return err
			}
		}
		if signed.CacaoBlock != nil {
			if _, err := s.blocks.Put(ctx, cid.DagCBOR, signed.CacaoBlock); err != nil {
				return err
			}
		}
	}
	if anchor, ok := ev.Value.(*event.AnchorValue); ok && anchor.ProofBlock != nil {
		if _, err := s.blocks.Put(ctx, cid.DagCBOR, anchor.ProofBlock); err != nil {
			return err
		}
	}

	return s.PushTip(ctx, streamID, ev.Cid)
}

// LoadEvents walks prev links from the tip back to the genesis event and
// returns the log genesis first. Side blocks are resolved from the block
// store as they are met.
func (s *EventStore) LoadEvents(ctx context.Context, streamID streamid.StreamId, tip cid.Cid) ([]*event.Event, error) {
	if !tip.Defined() {
		var err error
		if tip, err = s.GetTip(ctx, streamID); err != nil {
			return nil, err
		}
	}

	var events []*event.Event
	for id := tip; id.Defined(); {
		ev, err := s.loadEvent(ctx, id)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
		prev, err := ev.Prev()
		if err != nil {
			return nil, err
		}
		id = prev
	}
	slices.Reverse(events)
	return events, nil
}

func (s *EventStore) loadEvent(ctx context.Context, id cid.Cid) (*event.Event, error) {
	data, err := s.blocks.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", id, err)
	}
	ev, err := event.Decode(id, data)
	if err != nil {
		return nil, err
	}

	if anchor, ok := ev.Value.(*event.AnchorValue); ok {
		// Proof blocks are optional; an anchor is loadable without one.
		if has, err := s.blocks.Has(ctx, anchor.Proof); err == nil && has {
			if anchor.ProofBlock, err = s.blocks.Get(ctx, anchor.Proof); err != nil {
				return nil, fmt.Errorf("proof block %s: %w", anchor.Proof, err)
			}
		}
		return ev, nil
	}

	signed, ok := ev.Value.(*event.SignedValue)
	if !ok {
		return ev, nil
	}

	link, err := signed.PayloadCID()
	if err != nil {
		return nil, err
	}
	if signed.LinkedBlock, err = s.blocks.Get(ctx, link); err != nil {
		return nil, fmt.Errorf("linked block %s: %w", link, err)
	}

	// The capability block is present exactly when the protected header
	// names one.
	if capability, err := signed.JWS.CapabilityCID(); err == nil {
		if signed.CacaoBlock, err = s.blocks.Get(ctx, capability); err != nil {
			return nil, fmt.Errorf("capability block %s: %w", capability, err)
		}
	}
	return ev, nil
}

func (s *EventStore) GetTip(ctx context.Context, streamID streamid.StreamId) (cid.Cid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tip, ok := s.tips[streamID.String()]
	if !ok {
		return cid.Undef, ErrNoTip
	}
	return tip, nil
}

func (s *EventStore) PushTip(ctx context.Context, streamID streamid.StreamId, tip cid.Cid) error {
	if !tip.Defined() {
		return ErrInvalidCID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tips[streamID.String()] = tip
	return nil
}
