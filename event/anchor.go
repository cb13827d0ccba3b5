package event

import (
	"bytes"

	"github.com/ipfs/go-cid"
	"github.com/ipld/go-ipld-prime/codec/dagcbor"
	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/ipld/go-ipld-prime/fluent/qp"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/ipld/go-ipld-prime/node/basicnode"
)

// AnchorValue is a dag-cbor anchor event. It binds the stream (id), the
// previous event (prev) and a timestamp proof (proof) with the Merkle
// path from the proof root down to prev.
type AnchorValue struct {
	ID    cid.Cid
	Prev  cid.Cid
	Proof cid.Cid
	Path  string

	// ProofBlock holds the raw proof block when it has been fetched.
	ProofBlock []byte
}

// AnchorProof is the decoded proof block of an anchor event.
type AnchorProof struct {
	ChainID string
	Root    cid.Cid
	TxHash  cid.Cid
	TxType  string
}

// DecodeAnchorValue parses a dag-cbor anchor envelope.
func DecodeAnchorValue(data []byte) (*AnchorValue, error) {
	n, err := decodeDagCbor(data)
	if err != nil {
		return nil, err
	}

	var v AnchorValue
	if v.ID, err = lookupLink(n, "id"); err != nil {
		return nil, err
	}
	if v.Prev, err = lookupLink(n, "prev"); err != nil {
		return nil, err
	}
	if v.Proof, err = lookupLink(n, "proof"); err != nil {
		return nil, err
	}
	if v.Path, err = lookupString(n, "path"); err != nil {
		return nil, err
	}
	return &v, nil
}

// Encode renders the anchor envelope to canonical dag-cbor bytes.
func (v *AnchorValue) Encode() ([]byte, error) {
	n, err := qp.BuildMap(basicnode.Prototype.Map, 4, func(ma datamodel.MapAssembler) {
		// Canonical map key order for dag-cbor.
		qp.MapEntry(ma, "id", qp.Link(cidlink.Link{Cid: v.ID}))
		qp.MapEntry(ma, "path", qp.String(v.Path))
		qp.MapEntry(ma, "prev", qp.Link(cidlink.Link{Cid: v.Prev}))
		qp.MapEntry(ma, "proof", qp.Link(cidlink.Link{Cid: v.Proof}))
	})
	if err != nil {
		return nil, wrapError(KindCodec, err, "anchor encode")
	}
	var buf bytes.Buffer
	if err := dagcbor.Encode(n, &buf); err != nil {
		return nil, wrapError(KindCodec, err, "anchor encode")
	}
	return buf.Bytes(), nil
}

// DecodeProof parses the attached proof block. It fails when the block
// has not been fetched.
func (v *AnchorValue) DecodeProof() (*AnchorProof, error) {
	if v.ProofBlock == nil {
		return nil, newError(KindCodec, "no proof block")
	}
	n, err := decodeDagCbor(v.ProofBlock)
	if err != nil {
		return nil, err
	}

	var p AnchorProof
	if p.ChainID, err = lookupString(n, "chainId"); err != nil {
		return nil, err
	}
	if p.Root, err = lookupLink(n, "root"); err != nil {
		return nil, err
	}
	if p.TxHash, err = lookupLink(n, "txHash"); err != nil {
		return nil, err
	}
	if t := maybeLookup(n, "txType"); t != nil {
		s, err := t.AsString()
		if err != nil {
			return nil, wrapError(KindCodec, err, "field %q", "txType")
		}
		p.TxType = s
	}
	return &p, nil
}
