// Package httpapi speaks the Ceramic daemon HTTP API: commit envelopes as
// JSON and a client for the streams and commits endpoints.
package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ipfs/go-cid"

	"xdao.co/ceramic/event"
	"xdao.co/ceramic/streamid"
)

// Base64String is a byte blob carried as base64 text in JSON. The daemon
// emits the standard alphabet without padding; we tolerate both alphabets.
type Base64String string

func (s Base64String) Bytes() ([]byte, error) {
	text := strings.TrimRight(string(s), "=")
	if b, err := base64.RawStdEncoding.DecodeString(text); err == nil {
		return b, nil
	}
	return base64.RawURLEncoding.DecodeString(text)
}

func NewBase64String(b []byte) Base64String {
	return Base64String(base64.RawStdEncoding.EncodeToString(b))
}

// Content is the signed commit body shared by genesis and data envelopes.
type Content struct {
	JWS         event.JWS    `json:"jws"`
	LinkedBlock Base64String `json:"linkedBlock"`
	CacaoBlock  Base64String `json:"cacaoBlock,omitempty"`
}

// SignedValue attaches the linked and cacao blocks to the JWS envelope.
func (c *Content) SignedValue() (*event.SignedValue, error) {
	linked, err := c.LinkedBlock.Bytes()
	if err != nil {
		return nil, err
	}
	value := &event.SignedValue{JWS: c.JWS, LinkedBlock: linked}
	if c.CacaoBlock != "" {
		cacaoBlock, err := c.CacaoBlock.Bytes()
		if err != nil {
			return nil, err
		}
		value.CacaoBlock = cacaoBlock
	}
	return value, nil
}

// Event builds a fully populated signed event. The CID is recomputed from
// the canonical envelope bytes.
func (c *Content) Event() (*event.Event, error) {
	value, err := c.SignedValue()
	if err != nil {
		return nil, err
	}
	id, err := value.CID()
	if err != nil {
		return nil, err
	}
	return &event.Event{Cid: id, Value: value}, nil
}

// Payload decodes the linked block.
func (c *Content) Payload() (*event.Payload, error) {
	linked, err := c.LinkedBlock.Bytes()
	if err != nil {
		return nil, err
	}
	return event.DecodePayload(linked)
}

// CID returns the commit CID, the dag-jose CID of the envelope.
func (c *Content) CID() (cid.Cid, error) {
	value, err := c.SignedValue()
	if err != nil {
		return cid.Undef, err
	}
	return value.CID()
}

// ContentFromEvent is the inverse of Content.Event. The event must be
// signed and carry its linked block.
func ContentFromEvent(ev *event.Event) (*Content, error) {
	signed, ok := ev.Value.(*event.SignedValue)
	if !ok {
		return nil, errors.New("httpapi: event is not signed")
	}
	if signed.LinkedBlock == nil {
		return nil, errors.New("httpapi: event has no linked block")
	}
	content := &Content{
		JWS:         signed.JWS,
		LinkedBlock: NewBase64String(signed.LinkedBlock),
	}
	if signed.CacaoBlock != nil {
		content.CacaoBlock = NewBase64String(signed.CacaoBlock)
	}
	return content, nil
}

// Genesis is the POST body of the streams endpoint.
type Genesis struct {
	Type    uint64          `json:"type"`
	Genesis Content         `json:"genesis"`
	Opts    json.RawMessage `json:"opts,omitempty"`
}

// StreamID derives the stream id: the declared type over the genesis
// commit CID.
func (g *Genesis) StreamID() (streamid.StreamId, error) {
	id, err := g.Genesis.CID()
	if err != nil {
		return streamid.StreamId{}, err
	}
	return streamid.New(streamid.Type(g.Type), id)
}

// ModelID reads the model from the genesis header.
func (g *Genesis) ModelID() (streamid.StreamId, error) {
	payload, err := g.Genesis.Payload()
	if err != nil {
		return streamid.StreamId{}, err
	}
	if payload.Header == nil {
		return streamid.StreamId{}, errors.New("httpapi: missing model id")
	}
	return payload.Header.Model, nil
}

// Data is the POST body of the commits endpoint.
type Data struct {
	StreamID streamid.StreamId `json:"streamId"`
	Commit   Content           `json:"commit"`
	Opts     json.RawMessage   `json:"opts,omitempty"`
}
