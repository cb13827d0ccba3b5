// Package testkit provides conformance suites shared by block store
// implementations.
package testkit

import (
	"bytes"
	"context"
	"testing"

	"github.com/ipfs/go-cid"

	"xdao.co/ceramic/cidutil"
	"xdao.co/ceramic/storage"
)

// NewBlockStore constructs a fresh, empty block store for a test.
// The returned store MUST be isolated from other tests.
type NewBlockStore func(t *testing.T) storage.BlockStore

func RunBlockStoreConformance(t *testing.T, newStore NewBlockStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("PutGetRoundTrip", func(t *testing.T) {
		store := newStore(t)
		want := []byte("hello, ceramic storage")

		id, err := store.Put(ctx, cid.Raw, want)
		if err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		wantID, err := cidutil.RawSum(want)
		if err != nil {
			t.Fatalf("RawSum failed: %v", err)
		}
		if id != wantID {
			t.Fatalf("Put CID mismatch: got %s want %s", id, wantID)
		}

		got, err := store.Get(ctx, id)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("Get bytes mismatch")
		}
		if err := cidutil.Verify(id, got); err != nil {
			t.Fatalf("Get returned bytes not matching requested CID: %v", err)
		}
	})

	t.Run("CodecAddressing", func(t *testing.T) {
		store := newStore(t)
		data := []byte{0xa1, 0x61, 0x61, 0x01} // {"a": 1} in cbor

		rawID, err := store.Put(ctx, cid.Raw, data)
		if err != nil {
			t.Fatalf("Put raw failed: %v", err)
		}
		cborID, err := store.Put(ctx, cid.DagCBOR, data)
		if err != nil {
			t.Fatalf("Put dag-cbor failed: %v", err)
		}
		if rawID == cborID {
			t.Fatalf("same CID under different codecs: %s", rawID)
		}
		if rawID.Prefix().Codec != cid.Raw {
			t.Fatalf("raw Put codec: got 0x%x", rawID.Prefix().Codec)
		}
		if cborID.Prefix().Codec != cid.DagCBOR {
			t.Fatalf("dag-cbor Put codec: got 0x%x", cborID.Prefix().Codec)
		}

		got, err := store.Get(ctx, cborID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("Get bytes mismatch under dag-cbor CID")
		}
	})

	t.Run("PutIdempotent", func(t *testing.T) {
		store := newStore(t)
		b := []byte("same bytes")

		id1, err := store.Put(ctx, cid.Raw, b)
		if err != nil {
			t.Fatalf("Put(1) failed: %v", err)
		}
		id2, err := store.Put(ctx, cid.Raw, b)
		if err != nil {
			t.Fatalf("Put(2) failed: %v", err)
		}
		if id1 != id2 {
			t.Fatalf("Put not idempotent: %s vs %s", id1, id2)
		}
	})

	t.Run("HasAndNotFound", func(t *testing.T) {
		store := newStore(t)
		b := []byte("missing")
		id, err := cidutil.RawSum(b)
		if err != nil {
			t.Fatalf("RawSum failed: %v", err)
		}

		ok, err := store.Has(ctx, id)
		if err != nil {
			t.Fatalf("Has failed: %v", err)
		}
		if ok {
			t.Fatalf("Has returned true for missing CID")
		}
		_, err = store.Get(ctx, id)
		if !storage.IsNotFound(err) {
			t.Fatalf("Get missing: got err=%v want ErrNotFound", err)
		}

		if _, err := store.Put(ctx, cid.Raw, b); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		ok, err = store.Has(ctx, id)
		if err != nil {
			t.Fatalf("Has after Put failed: %v", err)
		}
		if !ok {
			t.Fatalf("Has returned false after Put")
		}
	})

	t.Run("RejectUndefCID", func(t *testing.T) {
		store := newStore(t)
		var undef cid.Cid
		ok, err := store.Has(ctx, undef)
		if err != nil {
			t.Fatalf("Has undef failed: %v", err)
		}
		if ok {
			t.Fatalf("Has should be false for undefined CID")
		}
		if _, err := store.Get(ctx, undef); err == nil {
			t.Fatalf("Get should fail for undefined CID")
		}
	})
}
