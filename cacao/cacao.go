// Package cacao implements the CAIP-74 chain-agnostic object capability
// carried by signed events.
package cacao

import (
	"fmt"
	"net/url"
	"time"

	"github.com/fxamacker/cbor/v2"

	"xdao.co/ceramic/streamid"
)

// CACAO is a signed capability. H describes the payload format, P carries
// the capability claims and S is the single signature over them.
type CACAO struct {
	H Header    `json:"h" cbor:"h"`
	P Payload   `json:"p" cbor:"p"`
	S Signature `json:"s" cbor:"s"`
}

// Header names the payload format, e.g. "eip4361".
type Header struct {
	T string `json:"t" cbor:"t"`
}

// Payload carries the capability claims. Times are RFC3339 strings.
type Payload struct {
	Domain    string   `json:"domain" cbor:"domain"`
	Iss       string   `json:"iss" cbor:"iss"`
	Aud       string   `json:"aud" cbor:"aud"`
	Version   string   `json:"version" cbor:"version"`
	Nonce     string   `json:"nonce" cbor:"nonce"`
	Iat       string   `json:"iat" cbor:"iat"`
	Nbf       *string  `json:"nbf,omitempty" cbor:"nbf,omitempty"`
	Exp       *string  `json:"exp,omitempty" cbor:"exp,omitempty"`
	Statement *string  `json:"statement,omitempty" cbor:"statement,omitempty"`
	RequestID *string  `json:"requestId,omitempty" cbor:"requestId,omitempty"`
	Resources []string `json:"resources,omitempty" cbor:"resources,omitempty"`
}

// Signature holds the signature type, optional metadata and the signature
// value.
type Signature struct {
	T string         `json:"t" cbor:"t"`
	M map[string]any `json:"m,omitempty" cbor:"m,omitempty"`
	S string         `json:"s" cbor:"s"`
}

// Decode parses a dag-cbor encoded capability block. Capability blocks
// carry no IPLD links, so a plain CBOR decode suffices.
func Decode(data []byte) (*CACAO, error) {
	var c CACAO
	if err := cbor.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("cacao: decode: %w", err)
	}
	return &c, nil
}

// IssuedAt parses the issued-at claim.
func (p *Payload) IssuedAt() (time.Time, error) {
	return time.Parse(time.RFC3339, p.Iat)
}

// NotBefore parses the optional not-before claim.
func (p *Payload) NotBefore() (*time.Time, error) {
	return parseOptional(p.Nbf)
}

// ExpirationTime parses the optional expiration claim.
func (p *Payload) ExpirationTime() (*time.Time, error) {
	return parseOptional(p.Exp)
}

func parseOptional(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ResourceModels extracts the model stream ids granted by the resources
// list. Resources use "ceramic://*?model=<streamid>" URIs; entries with
// other schemes are skipped.
func (p *Payload) ResourceModels() ([]streamid.StreamId, error) {
	var models []streamid.StreamId
	for _, resource := range p.Resources {
		u, err := url.Parse(resource)
		if err != nil {
			return nil, fmt.Errorf("cacao: resource %q: %w", resource, err)
		}
		if u.Scheme != "ceramic" {
			continue
		}
		model := u.Query().Get("model")
		if model == "" {
			continue
		}
		id, err := streamid.FromString(model)
		if err != nil {
			return nil, fmt.Errorf("cacao: resource %q: %w", resource, err)
		}
		models = append(models, id)
	}
	return models, nil
}
