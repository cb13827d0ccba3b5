package testkit

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/ipld/go-ipld-prime/codec/dagcbor"
	"github.com/ipld/go-ipld-prime/codec/dagjson"
	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/ipld/go-ipld-prime/fluent/qp"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/ipld/go-ipld-prime/node/basicnode"

	"xdao.co/ceramic/cacao"
	"xdao.co/ceramic/cidutil"
	"xdao.co/ceramic/event"
	"xdao.co/ceramic/streamid"
)

// Synthetic event builders for tests. The JWS signatures are placeholders;
// only the envelope structure and CID addressing are real.

func EncodeBlock(t *testing.T, n datamodel.Node) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := dagcbor.Encode(n, &buf); err != nil {
		t.Fatalf("dagcbor encode failed: %v", err)
	}
	return buf.Bytes()
}

func JSONNode(t *testing.T, src string) datamodel.Node {
	t.Helper()
	nb := basicnode.Prototype.Any.NewBuilder()
	if err := dagjson.Decode(nb, bytes.NewReader([]byte(src))); err != nil {
		t.Fatalf("dagjson decode failed: %v", err)
	}
	return nb.Build()
}

// GenesisBlock builds a genesis payload block declaring the given model.
func GenesisBlock(t *testing.T, model streamid.StreamId, content, controller string) []byte {
	t.Helper()
	n, err := qp.BuildMap(basicnode.Prototype.Map, 2, func(ma datamodel.MapAssembler) {
		qp.MapEntry(ma, "data", qp.Node(JSONNode(t, content)))
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
	return EncodeBlock(t, n)
}

// GenesisEvent builds a signed genesis event declaring the given model.
func GenesisEvent(t *testing.T, model streamid.StreamId, content, controller string) *event.Event {
	t.Helper()
	return SignedEvent(t, GenesisBlock(t, model, content, controller))
}

// DataBlock builds a data payload block carrying a JSON patch.
func DataBlock(t *testing.T, patch string, genesis, prev *event.Event) []byte {
	t.Helper()
	n, err := qp.BuildMap(basicnode.Prototype.Map, 3, func(ma datamodel.MapAssembler) {
		qp.MapEntry(ma, "data", qp.Node(JSONNode(t, patch)))
		qp.MapEntry(ma, "id", qp.Link(cidlink.Link{Cid: genesis.Cid}))
		qp.MapEntry(ma, "prev", qp.Link(cidlink.Link{Cid: prev.Cid}))
	})
	if err != nil {
		t.Fatalf("BuildMap failed: %v", err)
	}
	return EncodeBlock(t, n)
}

// DataEvent builds a signed data event carrying a JSON patch.
func DataEvent(t *testing.T, patch string, genesis, prev *event.Event) *event.Event {
	t.Helper()
	return SignedEvent(t, DataBlock(t, patch, genesis, prev))
}

// SignedEvent wraps a payload block in a JWS envelope addressed by the
// envelope CID.
func SignedEvent(t *testing.T, linkedBlock []byte) *event.Event {
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

// CacaoBlock builds a capability block granting access to a model, with
// the given expiration.
func CacaoBlock(t *testing.T, model streamid.StreamId, iss string, exp time.Time) []byte {
	t.Helper()
	expText := exp.UTC().Format(time.RFC3339)
	statement := "Give this application access to some of your data"
	capability := cacao.CACAO{
		H: cacao.Header{T: "eip4361"},
		P: cacao.Payload{
			Domain:    "localhost",
			Iss:       iss,
			Aud:       "did:key:z6Mkj9M6QgzPP3zPdHoCHEojiZSTd4kS53z2x9Hi8L9jgBM1",
			Version:   "1",
			Nonce:     "mbyfOzNe9sCVcnf",
			Iat:       exp.UTC().Add(-7 * 24 * time.Hour).Format(time.RFC3339),
			Exp:       &expText,
			Statement: &statement,
			Resources: []string{"ceramic://*?model=" + model.String()},
		},
		S: cacao.Signature{T: "eip191", S: "0x00"},
	}
	data, err := cbor.Marshal(&capability)
	if err != nil {
		t.Fatalf("cbor marshal failed: %v", err)
	}
	return data
}

// SignedEventWithCapability wraps a payload block in a JWS envelope whose
// protected header binds the attached capability block.
func SignedEventWithCapability(t *testing.T, linkedBlock, cacaoBlock []byte) *event.Event {
	t.Helper()
	link, err := cidutil.DagCborSum(linkedBlock)
	if err != nil {
		t.Fatalf("DagCborSum failed: %v", err)
	}
	capCid, err := cidutil.DagCborSum(cacaoBlock)
	if err != nil {
		t.Fatalf("DagCborSum failed: %v", err)
	}
	protected, err := json.Marshal(event.ProtectedHeader{
		Alg: "EdDSA",
		Cap: "ipfs://" + capCid.String(),
		Kid: "did:key:z6Mkj9M6QgzPP3zPdHoCHEojiZSTd4kS53z2x9Hi8L9jgBM1#z6Mkj9M6QgzPP3zPdHoCHEojiZSTd4kS53z2x9Hi8L9jgBM1",
	})
	if err != nil {
		t.Fatalf("json marshal failed: %v", err)
	}
	value := &event.SignedValue{
		JWS: event.JWS{
			Link:    link.String(),
			Payload: base64.RawURLEncoding.EncodeToString(link.Bytes()),
			Signatures: []event.JWSSignature{{
				Protected: base64.RawURLEncoding.EncodeToString(protected),
				Signature: base64.RawURLEncoding.EncodeToString([]byte("signature")),
			}},
		},
		LinkedBlock: linkedBlock,
		CacaoBlock:  cacaoBlock,
	}
	id, err := value.CID()
	if err != nil {
		t.Fatalf("CID failed: %v", err)
	}
	return &event.Event{Cid: id, Value: value}
}

// ProofBlock builds a minimal anchor proof block.
func ProofBlock(t *testing.T, chainID string) []byte {
	t.Helper()
	root, err := cidutil.DagCborSum([]byte("root"))
	if err != nil {
		t.Fatalf("DagCborSum failed: %v", err)
	}
	txHash, err := cidutil.DagCborSum([]byte("txHash"))
	if err != nil {
		t.Fatalf("DagCborSum failed: %v", err)
	}
	n, err := qp.BuildMap(basicnode.Prototype.Map, 4, func(ma datamodel.MapAssembler) {
		qp.MapEntry(ma, "chainId", qp.String(chainID))
		qp.MapEntry(ma, "root", qp.Link(cidlink.Link{Cid: root}))
		qp.MapEntry(ma, "txHash", qp.Link(cidlink.Link{Cid: txHash}))
		qp.MapEntry(ma, "txType", qp.String("f(bytes32)"))
	})
	if err != nil {
		t.Fatalf("BuildMap failed: %v", err)
	}
	return EncodeBlock(t, n)
}

// AnchorEvent builds an anchor event pointing at prev. A nil proofBlock
// defaults to a minimal eip155:1 proof.
func AnchorEvent(t *testing.T, genesis, prev *event.Event, proofBlock []byte) *event.Event {
	t.Helper()
	if proofBlock == nil {
		proofBlock = ProofBlock(t, "eip155:1")
	}
	proof, err := cidutil.DagCborSum(proofBlock)
	if err != nil {
		t.Fatalf("DagCborSum failed: %v", err)
	}
	value := &event.AnchorValue{
		ID:         genesis.Cid,
		Prev:       prev.Cid,
		Proof:      proof,
		Path:       "0/0/1",
		ProofBlock: proofBlock,
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
