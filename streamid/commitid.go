package streamid

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-varint"
)

// CommitId identifies a stream at a specific event in its log.
type CommitId struct {
	StreamId StreamId
	Tip      cid.Cid
}

// NewCommitId constructs a CommitId for the given stream and tip event.
func NewCommitId(stream StreamId, tip cid.Cid) (CommitId, error) {
	if !tip.Defined() {
		return CommitId{}, fmt.Errorf("streamid: undefined tip cid")
	}
	return CommitId{StreamId: stream, Tip: tip}, nil
}

// Bytes returns the binary form. When the tip is the genesis event the
// suffix is the varint zero sentinel instead of the full CID.
func (c CommitId) Bytes() []byte {
	buf := c.StreamId.Bytes()
	if c.Tip.Equals(c.StreamId.Cid) {
		return append(buf, varint.ToUvarint(0)...)
	}
	return append(buf, c.Tip.Bytes()...)
}

// String returns the multibase base36 text form.
func (c CommitId) String() string {
	text, err := multibase.Encode(multibase.Base36, c.Bytes())
	if err != nil {
		panic(err)
	}
	return text
}

func (c CommitId) Equals(o CommitId) bool {
	return c.StreamId.Equals(o.StreamId) && c.Tip.Equals(o.Tip)
}

// CommitIdFromString parses the multibase text form of a commit id.
func CommitIdFromString(text string) (CommitId, error) {
	_, data, err := multibase.Decode(text)
	if err != nil {
		return CommitId{}, fmt.Errorf("streamid: %w", err)
	}
	stream, rest, err := consume(data)
	if err != nil {
		return CommitId{}, err
	}

	if len(rest) == 1 && rest[0] == 0 {
		return CommitId{StreamId: stream, Tip: stream.Cid}, nil
	}
	n, tip, err := cid.CidFromBytes(rest)
	if err != nil {
		return CommitId{}, fmt.Errorf("streamid: %w", err)
	}
	if n != len(rest) {
		return CommitId{}, fmt.Errorf("streamid: %d trailing bytes", len(rest)-n)
	}
	return CommitId{StreamId: stream, Tip: tip}, nil
}

func (c CommitId) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

func (c *CommitId) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("streamid: expected a JSON string")
	}
	id, err := CommitIdFromString(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*c = id
	return nil
}
