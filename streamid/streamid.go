// Package streamid implements the text and binary identifier formats for
// streams and commits.
//
// A stream id is the multicodec 0xce varint, a stream type varint and the
// genesis event CID, rendered as multibase base36 text. A commit id appends
// the tip event CID, or a single zero byte when the tip is the genesis
// event itself.
package streamid

import (
	"errors"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-varint"
)

// Codec is the multicodec code for stream identifiers.
const Codec uint64 = 0xce

// Type enumerates the known stream types.
type Type uint64

const (
	Tile                  Type = 0
	Caip10Link            Type = 1
	Model                 Type = 2
	ModelInstanceDocument Type = 3
	Unloadable            Type = 4
	EventId               Type = 5
)

var typeNames = map[Type]string{
	Tile:                  "tile",
	Caip10Link:            "caip10-link",
	Model:                 "model",
	ModelInstanceDocument: "MID",
	Unloadable:            "unloadable",
	EventId:               "event-id",
}

// Valid reports whether t is a known stream type.
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint64(t))
}

var (
	ErrMissingCodec = errors.New("streamid: does not include streamid codec")
	ErrUnknownType  = errors.New("streamid: unknown stream type")
)

// StreamId identifies a mutable stream by its type and genesis event CID.
type StreamId struct {
	Type Type
	Cid  cid.Cid
}

// New constructs a StreamId from a stream type and genesis CID.
func New(t Type, genesis cid.Cid) (StreamId, error) {
	if !t.Valid() {
		return StreamId{}, ErrUnknownType
	}
	if !genesis.Defined() {
		return StreamId{}, errors.New("streamid: undefined genesis cid")
	}
	return StreamId{Type: t, Cid: genesis}, nil
}

// Bytes returns the binary form: varint(0xce) || varint(type) || cid.
func (s StreamId) Bytes() []byte {
	buf := varint.ToUvarint(Codec)
	buf = append(buf, varint.ToUvarint(uint64(s.Type))...)
	return append(buf, s.Cid.Bytes()...)
}

// String returns the multibase base36 text form.
func (s StreamId) String() string {
	text, err := multibase.Encode(multibase.Base36, s.Bytes())
	if err != nil {
		// Base36 is a registered encoding; Encode only fails for
		// unknown encodings.
		panic(err)
	}
	return text
}

func (s StreamId) Equals(o StreamId) bool {
	return s.Type == o.Type && s.Cid.Equals(o.Cid)
}

// FromBytes parses the binary form of a stream id.
func FromBytes(data []byte) (StreamId, error) {
	id, rest, err := consume(data)
	if err != nil {
		return StreamId{}, err
	}
	if len(rest) != 0 {
		return StreamId{}, fmt.Errorf("streamid: %d trailing bytes", len(rest))
	}
	return id, nil
}

// FromString parses the multibase text form of a stream id.
func FromString(text string) (StreamId, error) {
	_, data, err := multibase.Decode(text)
	if err != nil {
		return StreamId{}, fmt.Errorf("streamid: %w", err)
	}
	return FromBytes(data)
}

// consume reads a stream id off the front of data and returns the
// remaining bytes.
func consume(data []byte) (StreamId, []byte, error) {
	code, n, err := varint.FromUvarint(data)
	if err != nil {
		return StreamId{}, nil, fmt.Errorf("streamid: %w", err)
	}
	if code != Codec {
		return StreamId{}, nil, ErrMissingCodec
	}
	data = data[n:]

	t, n, err := varint.FromUvarint(data)
	if err != nil {
		return StreamId{}, nil, fmt.Errorf("streamid: %w", err)
	}
	if !Type(t).Valid() {
		return StreamId{}, nil, ErrUnknownType
	}
	data = data[n:]

	n, genesis, err := cid.CidFromBytes(data)
	if err != nil {
		return StreamId{}, nil, fmt.Errorf("streamid: %w", err)
	}
	return StreamId{Type: Type(t), Cid: genesis}, data[n:], nil
}

// MarshalJSON renders the stream id as its base36 text form.
func (s StreamId) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *StreamId) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("streamid: expected a JSON string")
	}
	id, err := FromString(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*s = id
	return nil
}
