package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ipfs/go-cid"

	"xdao.co/ceramic/event"
	"xdao.co/ceramic/streamid"
)

// MultiUploader replicates uploads across several backends.
//
// Upload order is the slice order in Uploaders; callers MUST supply a
// fixed order. Every backend must accept the event for the upload to
// succeed.
type MultiUploader struct {
	Uploaders []EventsUploader
}

var _ EventsUploader = (*MultiUploader)(nil)

func (m MultiUploader) UploadEvent(ctx context.Context, streamID streamid.StreamId, ev *event.Event) error {
	if len(m.Uploaders) == 0 {
		return errors.New("storage: MultiUploader has no backends")
	}
	for i, up := range m.Uploaders {
		if up == nil {
			return fmt.Errorf("storage: nil uploader at %d", i)
		}
		if err := up.UploadEvent(ctx, streamID, ev); err != nil {
			return fmt.Errorf("storage: uploader %d: %w", i, err)
		}
	}
	return nil
}

// FallbackLoader reads from several loaders with deterministic, ordered
// fallback. A loader that reports ErrNotFound or ErrNoTip defers to the
// next one; any other error stops the scan.
type FallbackLoader struct {
	Loaders []EventsLoader
}

var _ EventsLoader = (*FallbackLoader)(nil)

func (f FallbackLoader) LoadEvents(ctx context.Context, streamID streamid.StreamId, tip cid.Cid) ([]*event.Event, error) {
	for _, loader := range f.Loaders {
		events, err := loader.LoadEvents(ctx, streamID, tip)
		if err == nil {
			return events, nil
		}
		if IsNotFound(err) || errors.Is(err, ErrNoTip) {
			continue
		}
		return nil, err
	}
	return nil, ErrNotFound
}
