package event

import (
	"bytes"

	"github.com/ipfs/go-cid"
	"github.com/ipld/go-ipld-prime/codec/dagcbor"
	"github.com/ipld/go-ipld-prime/datamodel"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/ipld/go-ipld-prime/node/basicnode"
)

// decodeDagCbor parses a dag-cbor block into a free-form node.
func decodeDagCbor(data []byte) (datamodel.Node, error) {
	nb := basicnode.Prototype.Any.NewBuilder()
	if err := dagcbor.Decode(nb, bytes.NewReader(data)); err != nil {
		return nil, wrapError(KindCodec, err, "dag-cbor decode")
	}
	return nb.Build(), nil
}

// maybeLookup returns the value at key, or nil when the key is absent.
func maybeLookup(n datamodel.Node, key string) datamodel.Node {
	if n.Kind() != datamodel.Kind_Map {
		return nil
	}
	v, err := n.LookupByString(key)
	if err != nil {
		return nil
	}
	return v
}

func lookupBytes(n datamodel.Node, key string) ([]byte, error) {
	v := maybeLookup(n, key)
	if v == nil {
		return nil, newError(KindCodec, "missing field %q", key)
	}
	b, err := v.AsBytes()
	if err != nil {
		return nil, wrapError(KindCodec, err, "field %q", key)
	}
	return b, nil
}

func lookupString(n datamodel.Node, key string) (string, error) {
	v := maybeLookup(n, key)
	if v == nil {
		return "", newError(KindCodec, "missing field %q", key)
	}
	s, err := v.AsString()
	if err != nil {
		return "", wrapError(KindCodec, err, "field %q", key)
	}
	return s, nil
}

func lookupLink(n datamodel.Node, key string) (cid.Cid, error) {
	v := maybeLookup(n, key)
	if v == nil {
		return cid.Undef, newError(KindCodec, "missing field %q", key)
	}
	return asCid(v, key)
}

// maybeLink returns the link at key, or cid.Undef when the key is absent.
func maybeLink(n datamodel.Node, key string) (cid.Cid, error) {
	v := maybeLookup(n, key)
	if v == nil {
		return cid.Undef, nil
	}
	return asCid(v, key)
}

func asCid(v datamodel.Node, key string) (cid.Cid, error) {
	l, err := v.AsLink()
	if err != nil {
		return cid.Undef, wrapError(KindCodec, err, "field %q", key)
	}
	cl, ok := l.(cidlink.Link)
	if !ok {
		return cid.Undef, newError(KindCodec, "field %q: unexpected link type %T", key, l)
	}
	return cl.Cid, nil
}
