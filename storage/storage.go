// Package storage defines the storage capabilities the protocol builds
// on: content-addressed block stores for event envelopes and the
// loader, uploader and tip-tracking interfaces over them.
package storage

import (
	"context"

	"github.com/ipfs/go-cid"

	"xdao.co/ceramic/event"
	"xdao.co/ceramic/streamid"
)

// BlockStore is a minimal content-addressable block store.
//
// Contract:
// - Put MUST be idempotent.
// - Stored blocks MUST be immutable.
// - CIDs are derived from the codec and the bytes written.
// - Get MUST return ErrNotFound when the CID is absent.
type BlockStore interface {
	Put(ctx context.Context, codec uint64, data []byte) (cid.Cid, error)
	Get(ctx context.Context, id cid.Cid) ([]byte, error)
	Has(ctx context.Context, id cid.Cid) (bool, error)
}

// EventsLoader loads a stream's event log, genesis first. An undefined
// tip means the latest known tip.
type EventsLoader interface {
	LoadEvents(ctx context.Context, streamID streamid.StreamId, tip cid.Cid) ([]*event.Event, error)
}

// EventsUploader persists one event of a stream.
type EventsUploader interface {
	UploadEvent(ctx context.Context, streamID streamid.StreamId, ev *event.Event) error
}

// TipStore tracks the latest known tip per stream.
//
// Contract:
// - GetTip MUST return ErrNoTip for unknown streams.
type TipStore interface {
	GetTip(ctx context.Context, streamID streamid.StreamId) (cid.Cid, error)
	PushTip(ctx context.Context, streamID streamid.StreamId, tip cid.Cid) error
}
