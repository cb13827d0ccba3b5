package event

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/ipfs/go-cid"
)

// JWS is a general-serialization JSON web signature as carried by the HTTP
// API. Payload and signature fields are base64url strings; Link is the
// base32 text of the payload CID when known.
type JWS struct {
	Link       string         `json:"link,omitempty"`
	Payload    string         `json:"payload"`
	Signatures []JWSSignature `json:"signatures"`
}

// JWSSignature is one signature over the JWS payload.
type JWSSignature struct {
	Protected string `json:"protected,omitempty"`
	Signature string `json:"signature"`
}

// ProtectedHeader is the decoded protected header of a signature.
type ProtectedHeader struct {
	Alg string `json:"alg"`
	Cap string `json:"cap,omitempty"`
	Kid string `json:"kid,omitempty"`
}

// decodeB64 accepts both the url-safe and standard alphabets, with or
// without padding.
func decodeB64(s string) ([]byte, error) {
	s = strings.TrimRight(s, "=")
	if b, err := base64.RawURLEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}

// PayloadBytes returns the raw signed payload, which for event envelopes
// is the CID of the linked block.
func (j *JWS) PayloadBytes() ([]byte, error) {
	b, err := decodeB64(j.Payload)
	if err != nil {
		return nil, wrapError(KindCodec, err, "jws payload")
	}
	return b, nil
}

// PayloadCID parses the signed payload as a CID.
func (j *JWS) PayloadCID() (cid.Cid, error) {
	b, err := j.PayloadBytes()
	if err != nil {
		return cid.Undef, err
	}
	id, err := cid.Cast(b)
	if err != nil {
		return cid.Undef, wrapError(KindCodec, err, "jws payload is not a cid")
	}
	return id, nil
}

// ProtectedHeader decodes the protected header of the first signature.
func (j *JWS) ProtectedHeader() (*ProtectedHeader, error) {
	if len(j.Signatures) == 0 {
		return nil, newError(KindCodec, "jws has no signatures")
	}
	raw := j.Signatures[0].Protected
	if raw == "" {
		return nil, newError(KindCodec, "jws has no protected header")
	}
	b, err := decodeB64(raw)
	if err != nil {
		return nil, wrapError(KindCodec, err, "jws protected header")
	}
	var h ProtectedHeader
	if err := json.Unmarshal(b, &h); err != nil {
		return nil, wrapError(KindCodec, err, "jws protected header")
	}
	return &h, nil
}

// CapabilityCID returns the CID named by the "cap" protected header, an
// ipfs:// URI pointing at the capability block.
func (j *JWS) CapabilityCID() (cid.Cid, error) {
	h, err := j.ProtectedHeader()
	if err != nil {
		return cid.Undef, err
	}
	if h.Cap == "" {
		return cid.Undef, newError(KindAuth, "jws has no cap header")
	}
	text, ok := strings.CutPrefix(h.Cap, "ipfs://")
	if !ok {
		return cid.Undef, newError(KindAuth, "cap %q is not an ipfs uri", h.Cap)
	}
	id, err := cid.Decode(text)
	if err != nil {
		return cid.Undef, wrapError(KindAuth, err, "cap %q", h.Cap)
	}
	return id, nil
}
