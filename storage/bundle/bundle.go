// Package bundle moves one stream's event log around as a single
// deterministic TAR file: every block of the log plus an index naming
// the stream and its tip. A bundle imported into a block store can be
// folded back into state without any network access.
package bundle

import (
	"archive/tar"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/ipfs/go-cid"

	"xdao.co/ceramic/cidutil"
	"xdao.co/ceramic/event"
	"xdao.co/ceramic/storage"
	"xdao.co/ceramic/streamid"
)

// FormatVersion is the current bundle index schema version.
const FormatVersion = 1

// Manifest is the index.json entry of a bundle.
type Manifest struct {
	Version  int               `json:"version"`
	StreamID streamid.StreamId `json:"streamId"`
	Tip      string            `json:"tip"`
	Blocks   []ManifestBlock   `json:"blocks"`
}

type ManifestBlock struct {
	CID  string `json:"cid"`
	Size int    `json:"size"`
}

// Export writes a deterministic TAR bundle holding the full event log:
// envelopes plus their linked, capability and proof blocks. Entry order
// is lexicographic and TAR headers are normalized, so identical logs
// produce identical bundles.
func Export(w io.Writer, streamID streamid.StreamId, events []*event.Event) error {
	if len(events) == 0 {
		return fmt.Errorf("bundle: empty event log")
	}

	blocks := map[string][]byte{}
	add := func(id cid.Cid, data []byte) error {
		if !id.Defined() {
			return storage.ErrInvalidCID
		}
		if err := cidutil.Verify(id, data); err != nil {
			return err
		}
		blocks[id.String()] = data
		return nil
	}

	for _, ev := range events {
		envelope, err := ev.Encode()
		if err != nil {
			return err
		}
		if err := add(ev.Cid, envelope); err != nil {
			return err
		}
		switch value := ev.Value.(type) {
		case *event.SignedValue:
			if value.LinkedBlock != nil {
				id, err := value.PayloadCID()
				if err != nil {
					return err
				}
				if err := add(id, value.LinkedBlock); err != nil {
					return err
				}
			}
			if value.CacaoBlock != nil {
				id, err := value.CacaoCID()
				if err != nil {
					return err
				}
				if err := add(id, value.CacaoBlock); err != nil {
					return err
				}
			}
		case *event.AnchorValue:
			if value.ProofBlock != nil {
				if err := add(value.Proof, value.ProofBlock); err != nil {
					return err
				}
			}
		}
	}

	names := make([]string, 0, len(blocks))
	for name := range blocks {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tar.NewWriter(w)

	manifest := Manifest{
		Version:  FormatVersion,
		StreamID: streamID,
		Tip:      events[len(events)-1].Cid.String(),
	}
	for _, name := range names {
		data := blocks[name]
		if err := writeFile(tw, "blocks/"+name, data); err != nil {
			_ = tw.Close()
			return err
		}
		manifest.Blocks = append(manifest.Blocks, ManifestBlock{CID: name, Size: len(data)})
	}

	// Manifest fields are structs and slices only, so encoding/json is
	// deterministic here.
	index, err := json.Marshal(manifest)
	if err != nil {
		_ = tw.Close()
		return err
	}
	if err := writeFile(tw, "index.json", append(index, '\n')); err != nil {
		_ = tw.Close()
		return err
	}
	return tw.Close()
}

// Import reads a bundle, stores every block after validating it against
// its CID, and returns the stream id and tip recorded in the index.
// Unknown entries are rejected.
func Import(ctx context.Context, r io.Reader, blocks storage.BlockStore) (streamid.StreamId, cid.Cid, error) {
	tr := tar.NewReader(r)
	seen := map[string]struct{}{}
	var manifest *Manifest

	for {
		h, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return streamid.StreamId{}, cid.Undef, err
		}
		name := cleanTarPath(h.Name)
		if name == "" {
			return streamid.StreamId{}, cid.Undef, fmt.Errorf("bundle: invalid entry path: %q", h.Name)
		}
		if h.Typeflag != tar.TypeReg {
			return streamid.StreamId{}, cid.Undef, fmt.Errorf("bundle: unexpected tar entry type: %v (%s)", h.Typeflag, name)
		}

		if name == "index.json" {
			if manifest != nil {
				return streamid.StreamId{}, cid.Undef, fmt.Errorf("bundle: duplicate index.json")
			}
			payload, err := io.ReadAll(tr)
			if err != nil {
				return streamid.StreamId{}, cid.Undef, err
			}
			manifest = new(Manifest)
			if err := json.Unmarshal(payload, manifest); err != nil {
				return streamid.StreamId{}, cid.Undef, fmt.Errorf("bundle: index.json: %w", err)
			}
			if manifest.Version != FormatVersion {
				return streamid.StreamId{}, cid.Undef, fmt.Errorf("bundle: unsupported version %d", manifest.Version)
			}
			continue
		}

		if !strings.HasPrefix(name, "blocks/") {
			return streamid.StreamId{}, cid.Undef, fmt.Errorf("bundle: unknown entry: %s", name)
		}
		id, err := cid.Decode(strings.TrimPrefix(name, "blocks/"))
		if err != nil || !id.Defined() {
			return streamid.StreamId{}, cid.Undef, storage.ErrInvalidCID
		}
		if _, ok := seen[id.String()]; ok {
			return streamid.StreamId{}, cid.Undef, fmt.Errorf("bundle: duplicate block entry: %s", id)
		}
		seen[id.String()] = struct{}{}

		payload, err := io.ReadAll(tr)
		if err != nil {
			return streamid.StreamId{}, cid.Undef, err
		}
		if err := cidutil.Verify(id, payload); err != nil {
			return streamid.StreamId{}, cid.Undef, err
		}
		stored, err := blocks.Put(ctx, id.Prefix().Codec, payload)
		if err != nil {
			return streamid.StreamId{}, cid.Undef, err
		}
		if !stored.Equals(id) {
			return streamid.StreamId{}, cid.Undef, storage.ErrCIDMismatch
		}
	}

	if manifest == nil {
		return streamid.StreamId{}, cid.Undef, fmt.Errorf("bundle: missing index.json")
	}
	tip, err := cid.Decode(manifest.Tip)
	if err != nil {
		return streamid.StreamId{}, cid.Undef, fmt.Errorf("bundle: index tip: %w", err)
	}
	if _, ok := seen[tip.String()]; !ok {
		return streamid.StreamId{}, cid.Undef, fmt.Errorf("bundle: tip %s not in bundle", tip)
	}
	return manifest.StreamID, tip, nil
}

var epoch0 = time.Unix(0, 0).UTC()

func writeFile(tw *tar.Writer, name string, content []byte) error {
	hdr := &tar.Header{
		Name:     name,
		Mode:     0o644,
		Size:     int64(len(content)),
		ModTime:  epoch0,
		Typeflag: tar.TypeReg,
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	_, err := io.Copy(tw, bytes.NewReader(content))
	return err
}

func cleanTarPath(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.TrimPrefix(name, "./")
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return ""
	}

	parts := strings.Split(name, "/")
	for _, part := range parts {
		if part == "" || part == "." || part == ".." {
			return ""
		}
	}
	return strings.Join(parts, "/")
}
