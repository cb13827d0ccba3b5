package stream

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/ipld/go-ipld-prime/codec/dagcbor"
	"github.com/ipld/go-ipld-prime/codec/dagjson"
	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/ipld/go-ipld-prime/fluent/qp"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/ipld/go-ipld-prime/node/basicnode"

	"xdao.co/ceramic/cidutil"
	"xdao.co/ceramic/event"
	"xdao.co/ceramic/streamid"
)

const testModel = "kjzl6hvfrbw6c86gt9j415yw2x8stmkotcrzpeutrbkp42i4z90gp5ibptz4sso"

// jsonNode parses a JSON literal into a free-form IPLD node.
func jsonNode(t *testing.T, src string) datamodel.Node {
	t.Helper()
	nb := basicnode.Prototype.Any.NewBuilder()
	if err := dagjson.Decode(nb, bytes.NewReader([]byte(src))); err != nil {
		t.Fatalf("dagjson decode failed: %v", err)
	}
	return nb.Build()
}

func encodeBlock(t *testing.T, n datamodel.Node) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := dagcbor.Encode(n, &buf); err != nil {
		t.Fatalf("dagcbor encode failed: %v", err)
	}
	return buf.Bytes()
}

// genesisBlock builds a genesis payload with the given JSON content and
// the test model header.
func genesisBlock(t *testing.T, content, controller string) []byte {
	t.Helper()
	model, err := streamid.FromString(testModel)
	if err != nil {
		t.Fatalf("FromString failed: %v", err)
	}
	n, err := qp.BuildMap(basicnode.Prototype.Map, 2, func(ma datamodel.MapAssembler) {
		qp.MapEntry(ma, "data", qp.Node(jsonNode(t, content)))
		qp.MapEntry(ma, "header", qp.Map(3, func(ha datamodel.MapAssembler) {
			qp.MapEntry(ha, "controllers", qp.List(1, func(la datamodel.ListAssembler) {
				qp.ListEntry(la, qp.String(controller))
			}))
			qp.MapEntry(ha, "model", qp.Bytes(model.Bytes()))
			qp.MapEntry(ha, "unique", qp.Bytes([]byte{1, 2, 3, 4, 5, 6, 7}))
		}))
	})
	if err != nil {
		t.Fatalf("BuildMap failed: %v", err)
	}
	return encodeBlock(t, n)
}

// dataBlock builds a data payload carrying a JSON patch.
func dataBlock(t *testing.T, patch string, genesis, prev *event.Event) []byte {
	t.Helper()
	n, err := qp.BuildMap(basicnode.Prototype.Map, 3, func(ma datamodel.MapAssembler) {
		qp.MapEntry(ma, "data", qp.Node(jsonNode(t, patch)))
		qp.MapEntry(ma, "id", qp.Link(cidlink.Link{Cid: genesis.Cid}))
		qp.MapEntry(ma, "prev", qp.Link(cidlink.Link{Cid: prev.Cid}))
	})
	if err != nil {
		t.Fatalf("BuildMap failed: %v", err)
	}
	return encodeBlock(t, n)
}

// signedEvent wraps a payload block in an unsigned-header JWS envelope
// and addresses it by the envelope CID.
func signedEvent(t *testing.T, linkedBlock []byte) *event.Event {
	t.Helper()
	link, err := cidutil.DagCborSum(linkedBlock)
	if err != nil {
		t.Fatalf("DagCborSum failed: %v", err)
	}
	value := &event.SignedValue{
		JWS: event.JWS{
			Link:    link.String(),
			Payload: base64.RawURLEncoding.EncodeToString(link.Bytes()),
			Signatures: []event.JWSSignature{{
				Signature: base64.RawURLEncoding.EncodeToString([]byte("signature")),
			}},
		},
		LinkedBlock: linkedBlock,
	}
	id, err := value.CID()
	if err != nil {
		t.Fatalf("CID failed: %v", err)
	}
	return &event.Event{Cid: id, Value: value}
}

// anchorEvent builds an anchor event pointing at prev.
func anchorEvent(t *testing.T, genesis, prev *event.Event) *event.Event {
	t.Helper()
	proof, err := cidutil.DagCborSum([]byte("proof"))
	if err != nil {
		t.Fatalf("DagCborSum failed: %v", err)
	}
	value := &event.AnchorValue{
		ID:    genesis.Cid,
		Prev:  prev.Cid,
		Proof: proof,
		Path:  "0/0/1",
	}
	data, err := value.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	id, err := cidutil.DagCborSum(data)
	if err != nil {
		t.Fatalf("DagCborSum failed: %v", err)
	}
	return &event.Event{Cid: id, Value: value}
}
