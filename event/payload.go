package event

import (
	"bytes"
	"encoding/json"

	"github.com/ipfs/go-cid"
	"github.com/ipld/go-ipld-prime/codec/dagjson"
	"github.com/ipld/go-ipld-prime/datamodel"

	"xdao.co/ceramic/streamid"
)

// Payload is the dag-cbor linked block of a signed event. A genesis
// payload carries the initial content in Data and the stream header; a
// data payload carries a JSON patch in Data plus the prev and id links.
type Payload struct {
	Data   json.RawMessage
	Header *Header
	Prev   cid.Cid
	ID     cid.Cid
}

// Header is the stream header of a genesis payload.
type Header struct {
	Model       streamid.StreamId
	Controllers []string
	Unique      []byte
}

// Metadata renders the header as the stream metadata JSON object.
func (h *Header) Metadata() (json.RawMessage, error) {
	meta := struct {
		Controllers []string `json:"controllers"`
		Model       string   `json:"model"`
	}{
		Controllers: h.Controllers,
		Model:       h.Model.String(),
	}
	b, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// DecodePayload parses a dag-cbor linked block.
func DecodePayload(data []byte) (*Payload, error) {
	n, err := decodeDagCbor(data)
	if err != nil {
		return nil, err
	}

	var p Payload
	if v := maybeLookup(n, "data"); v != nil {
		// The data field passes through a dag-json rendering, which
		// normalizes it independently of the cbor layout.
		var buf bytes.Buffer
		if err := dagjson.Encode(v, &buf); err != nil {
			return nil, wrapError(KindCodec, err, "payload data")
		}
		p.Data = json.RawMessage(buf.Bytes())
	}
	if v := maybeLookup(n, "header"); v != nil {
		h, err := decodeHeader(v)
		if err != nil {
			return nil, err
		}
		p.Header = h
	}
	if p.Prev, err = maybeLink(n, "prev"); err != nil {
		return nil, err
	}
	if p.ID, err = maybeLink(n, "id"); err != nil {
		return nil, err
	}
	return &p, nil
}

func decodeHeader(n datamodel.Node) (*Header, error) {
	modelBytes, err := lookupBytes(n, "model")
	if err != nil {
		return nil, err
	}
	model, err := streamid.FromBytes(modelBytes)
	if err != nil {
		return nil, wrapError(KindCodec, err, "header model")
	}

	h := &Header{Model: model}
	if v := maybeLookup(n, "controllers"); v != nil {
		it := v.ListIterator()
		if it == nil {
			return nil, newError(KindCodec, "header controllers is not a list")
		}
		for !it.Done() {
			_, item, err := it.Next()
			if err != nil {
				return nil, wrapError(KindCodec, err, "header controllers")
			}
			s, err := item.AsString()
			if err != nil {
				return nil, wrapError(KindCodec, err, "header controller")
			}
			h.Controllers = append(h.Controllers, s)
		}
	}
	if v := maybeLookup(n, "unique"); v != nil {
		b, err := v.AsBytes()
		if err != nil {
			return nil, wrapError(KindCodec, err, "header unique")
		}
		h.Unique = b
	}
	return h, nil
}
