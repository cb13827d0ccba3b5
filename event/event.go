// Package event implements the immutable event envelopes a stream log is
// made of: dag-jose signed events and dag-cbor anchor events, addressed
// by CID and bound together through prev links.
package event

import (
	"bytes"
	"encoding/base64"

	"github.com/ipfs/go-cid"
	"github.com/ipld/go-ipld-prime/codec/dagcbor"
	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/ipld/go-ipld-prime/fluent/qp"
	"github.com/ipld/go-ipld-prime/node/basicnode"

	"xdao.co/ceramic/cacao"
	"xdao.co/ceramic/cidutil"
)

// LogType classifies an event's position and role in a stream log.
type LogType uint64

const (
	LogGenesis LogType = 0
	LogSigned  LogType = 1
	LogAnchor  LogType = 2
)

// Event is one entry of a stream log: a CID plus the decoded envelope.
type Event struct {
	Cid   cid.Cid
	Value EventValue
}

// EventValue is either a *SignedValue or an *AnchorValue.
type EventValue interface {
	isEventValue()
}

func (*SignedValue) isEventValue() {}
func (*AnchorValue) isEventValue() {}

// SignedValue is a dag-jose signed event. The linked block carries the
// payload; the capability block carries the CACAO when the event was
// signed with one. Both travel beside the envelope and may be absent
// until fetched.
type SignedValue struct {
	JWS         JWS
	LinkedBlock []byte
	CacaoBlock  []byte
}

// Decode parses an event envelope. The codec is taken from the CID, and
// the envelope bytes must hash back to it.
func Decode(id cid.Cid, data []byte) (*Event, error) {
	if err := cidutil.Verify(id, data); err != nil {
		return nil, wrapError(KindCodec, err, "event %s", id)
	}
	value, err := decodeValue(id.Prefix().Codec, data)
	if err != nil {
		return nil, err
	}
	return &Event{Cid: id, Value: value}, nil
}

func decodeValue(codec uint64, data []byte) (EventValue, error) {
	switch codec {
	case cid.DagCBOR:
		return DecodeAnchorValue(data)
	case cid.DagJOSE:
		return DecodeSignedValue(data)
	default:
		return nil, newError(KindCodec, "unsupported codec 0x%x", codec)
	}
}

// DecodeSignedValue parses a dag-jose envelope. The envelope serializes
// only the payload and signatures; the link is derived from the payload
// bytes.
func DecodeSignedValue(data []byte) (*SignedValue, error) {
	n, err := decodeDagCbor(data)
	if err != nil {
		return nil, err
	}

	payload, err := lookupBytes(n, "payload")
	if err != nil {
		return nil, err
	}
	jws := JWS{Payload: base64.RawURLEncoding.EncodeToString(payload)}
	if link, err := cid.Cast(payload); err == nil {
		jws.Link = link.String()
	}

	sigs := maybeLookup(n, "signatures")
	if sigs == nil {
		return nil, newError(KindCodec, "missing field %q", "signatures")
	}
	it := sigs.ListIterator()
	if it == nil {
		return nil, newError(KindCodec, "signatures is not a list")
	}
	for !it.Done() {
		_, item, err := it.Next()
		if err != nil {
			return nil, wrapError(KindCodec, err, "signatures")
		}
		var sig JWSSignature
		if v := maybeLookup(item, "protected"); v != nil {
			b, err := v.AsBytes()
			if err != nil {
				return nil, wrapError(KindCodec, err, "signature protected")
			}
			sig.Protected = base64.RawURLEncoding.EncodeToString(b)
		}
		b, err := lookupBytes(item, "signature")
		if err != nil {
			return nil, err
		}
		sig.Signature = base64.RawURLEncoding.EncodeToString(b)
		jws.Signatures = append(jws.Signatures, sig)
	}

	return &SignedValue{JWS: jws}, nil
}

// Encode renders the envelope back to canonical dag-jose bytes.
func (s *SignedValue) Encode() ([]byte, error) {
	payload, err := s.JWS.PayloadBytes()
	if err != nil {
		return nil, err
	}
	type rawSig struct {
		protected []byte
		signature []byte
	}
	raw := make([]rawSig, 0, len(s.JWS.Signatures))
	for _, sig := range s.JWS.Signatures {
		var r rawSig
		if sig.Protected != "" {
			if r.protected, err = decodeB64(sig.Protected); err != nil {
				return nil, wrapError(KindCodec, err, "signature protected")
			}
		}
		if r.signature, err = decodeB64(sig.Signature); err != nil {
			return nil, wrapError(KindCodec, err, "signature")
		}
		raw = append(raw, r)
	}

	n, err := qp.BuildMap(basicnode.Prototype.Map, 2, func(ma datamodel.MapAssembler) {
		// Canonical map key order for dag-cbor.
		qp.MapEntry(ma, "payload", qp.Bytes(payload))
		qp.MapEntry(ma, "signatures", qp.List(int64(len(raw)), func(la datamodel.ListAssembler) {
			for _, r := range raw {
				qp.ListEntry(la, qp.Map(2, func(sa datamodel.MapAssembler) {
					if r.protected != nil {
						qp.MapEntry(sa, "protected", qp.Bytes(r.protected))
					}
					qp.MapEntry(sa, "signature", qp.Bytes(r.signature))
				}))
			}
		}))
	})
	if err != nil {
		return nil, wrapError(KindCodec, err, "jws encode")
	}
	var buf bytes.Buffer
	if err := dagcbor.Encode(n, &buf); err != nil {
		return nil, wrapError(KindCodec, err, "jws encode")
	}
	return buf.Bytes(), nil
}

// CID returns the dag-jose CID of the encoded envelope.
func (s *SignedValue) CID() (cid.Cid, error) {
	data, err := s.Encode()
	if err != nil {
		return cid.Undef, err
	}
	return cidutil.DagJoseSum(data)
}

// Payload decodes the linked block.
func (s *SignedValue) Payload() (*Payload, error) {
	if s.LinkedBlock == nil {
		return nil, newError(KindCodec, "linked block is missing")
	}
	return DecodePayload(s.LinkedBlock)
}

// PayloadCID returns the CID the JWS signs, which addresses the linked
// block.
func (s *SignedValue) PayloadCID() (cid.Cid, error) {
	return s.JWS.PayloadCID()
}

// Cacao decodes the attached capability block, or returns nil when the
// event carries none.
func (s *SignedValue) Cacao() (*cacao.CACAO, error) {
	if s.CacaoBlock == nil {
		return nil, nil
	}
	c, err := cacao.Decode(s.CacaoBlock)
	if err != nil {
		return nil, wrapError(KindAuth, err, "capability block")
	}
	return c, nil
}

// CacaoCID returns the dag-cbor CID of the attached capability block.
func (s *SignedValue) CacaoCID() (cid.Cid, error) {
	if s.CacaoBlock == nil {
		return cid.Undef, newError(KindAuth, "no capability block")
	}
	return cidutil.DagCborSum(s.CacaoBlock)
}

// IsGenesis reports whether the payload is a genesis payload. A payload
// that cannot be decoded is not a genesis.
func (s *SignedValue) IsGenesis() bool {
	p, err := s.Payload()
	if err != nil {
		return false
	}
	return !p.ID.Defined()
}

// Prev returns the previous event link, or cid.Undef for genesis events.
func (e *Event) Prev() (cid.Cid, error) {
	switch v := e.Value.(type) {
	case *SignedValue:
		p, err := v.Payload()
		if err != nil {
			return cid.Undef, err
		}
		return p.Prev, nil
	case *AnchorValue:
		return v.Prev, nil
	default:
		return cid.Undef, newError(KindCodec, "unknown event value %T", e.Value)
	}
}

// Genesis returns the genesis CID of the stream this event belongs to.
func (e *Event) Genesis() (cid.Cid, error) {
	switch v := e.Value.(type) {
	case *SignedValue:
		p, err := v.Payload()
		if err != nil {
			return cid.Undef, err
		}
		if !p.ID.Defined() {
			return e.Cid, nil
		}
		return p.ID, nil
	case *AnchorValue:
		return v.ID, nil
	default:
		return cid.Undef, newError(KindCodec, "unknown event value %T", e.Value)
	}
}

// LogType classifies the event for the stream log.
func (e *Event) LogType() LogType {
	switch v := e.Value.(type) {
	case *SignedValue:
		if v.IsGenesis() {
			return LogGenesis
		}
		return LogSigned
	case *AnchorValue:
		return LogAnchor
	default:
		return LogSigned
	}
}

// Encode renders the envelope bytes of the event.
func (e *Event) Encode() ([]byte, error) {
	switch v := e.Value.(type) {
	case *SignedValue:
		return v.Encode()
	case *AnchorValue:
		return v.Encode()
	default:
		return nil, newError(KindCodec, "unknown event value %T", e.Value)
	}
}
