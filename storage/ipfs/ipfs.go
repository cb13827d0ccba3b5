// Package ipfs adapts a local Kubo repo into a storage.BlockStore by
// shelling out to the "ipfs" CLI.
//
// This is an optional adapter package. It operates on the local IPFS
// repo and does not require a running daemon; every block read back is
// validated against its CID before it is returned.
package ipfs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ipfs/go-cid"

	"xdao.co/ceramic/cidutil"
	"xdao.co/ceramic/storage"
)

// Store is a content-addressable block store backed by the local Kubo
// "ipfs" CLI.
type Store struct {
	bin string
	env []string
}

var _ storage.BlockStore = (*Store)(nil)

type Options struct {
	// Bin is the path to the ipfs binary. If empty, "ipfs" is used.
	Bin string
	// Env optionally overrides the command environment (e.g. to set
	// IPFS_PATH). If nil, the process environment is used.
	Env []string
}

func New(opts Options) *Store {
	bin := opts.Bin
	if bin == "" {
		bin = "ipfs"
	}
	return &Store{bin: bin, env: opts.Env}
}

// Kubo names codecs by string; the wire values come from the CID.
var codecNames = map[uint64]string{
	cid.Raw:     "raw",
	cid.DagCBOR: "dag-cbor",
	cid.DagJOSE: "dag-jose",
}

func (s *Store) Put(ctx context.Context, codec uint64, data []byte) (cid.Cid, error) {
	name, ok := codecNames[codec]
	if !ok {
		return cid.Undef, fmt.Errorf("ipfs: unsupported codec %#x", codec)
	}
	expected, err := cidutil.Sum(codec, data)
	if err != nil {
		return cid.Undef, err
	}

	out, err := s.run(ctx, data,
		"block", "put",
		"--quiet",
		"--cid-codec="+name,
		"--mhtype=sha2-256",
		"--mhlen=32",
		"/dev/stdin",
	)
	if err != nil {
		return cid.Undef, err
	}

	got, err := cid.Decode(strings.TrimSpace(string(out)))
	if err != nil {
		return cid.Undef, fmt.Errorf("ipfs: unexpected block put output: %w", err)
	}
	if !got.Equals(expected) {
		return cid.Undef, storage.ErrCIDMismatch
	}
	return expected, nil
}

func (s *Store) Get(ctx context.Context, id cid.Cid) ([]byte, error) {
	if !id.Defined() {
		return nil, storage.ErrInvalidCID
	}

	out, err := s.run(ctx, nil, "block", "get", id.String())
	if err != nil {
		if isLikelyNotFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	if err := cidutil.Verify(id, out); err != nil {
		return nil, storage.ErrCIDMismatch
	}
	return out, nil
}

func (s *Store) Has(ctx context.Context, id cid.Cid) (bool, error) {
	if !id.Defined() {
		return false, storage.ErrInvalidCID
	}
	if _, err := s.run(ctx, nil, "block", "stat", id.String()); err != nil {
		if isLikelyNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Store) run(ctx context.Context, stdin []byte, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, s.bin, args...)
	if s.env != nil {
		cmd.Env = s.env
	}
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	out, err := cmd.Output()
	if err == nil {
		return out, nil
	}

	var ee *exec.ExitError
	if errors.As(err, &ee) {
		msg := strings.TrimSpace(string(ee.Stderr))
		if msg == "" {
			return nil, fmt.Errorf("ipfs: %v", err)
		}
		return nil, fmt.Errorf("ipfs: %s", msg)
	}
	return nil, err
}

func isLikelyNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") || strings.Contains(msg, "could not find")
}
