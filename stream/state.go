// Package stream folds ordered event logs into stream state: the current
// content, metadata and log of a mutable document.
package stream

import (
	"encoding/json"
	"fmt"

	"github.com/ipfs/go-cid"

	"xdao.co/ceramic/streamid"
)

// SignatureStatus describes how the stream tip is signed.
type SignatureStatus int

const (
	SignatureGenesis SignatureStatus = 0
	SignaturePartial SignatureStatus = 1
	SignatureSigned  SignatureStatus = 2
)

// AnchorStatus describes the anchoring state of the stream tip.
type AnchorStatus uint64

const (
	AnchorNotRequested AnchorStatus = 0
	AnchorPending      AnchorStatus = 1
	AnchorProcessing   AnchorStatus = 2
	AnchorAnchored     AnchorStatus = 3
	AnchorFailed       AnchorStatus = 4
	AnchorReplaced     AnchorStatus = 5
)

var anchorStatusNames = map[AnchorStatus]string{
	AnchorNotRequested: "NOT_REQUESTED",
	AnchorPending:      "PENDING",
	AnchorProcessing:   "PROCESSING",
	AnchorAnchored:     "ANCHORED",
	AnchorFailed:       "FAILED",
	AnchorReplaced:     "REPLACED",
}

func (s AnchorStatus) String() string {
	if name, ok := anchorStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint64(s))
}

// MarshalJSON renders the status as its screaming-snake name.
func (s AnchorStatus) MarshalJSON() ([]byte, error) {
	name, ok := anchorStatusNames[s]
	if !ok {
		return nil, fmt.Errorf("stream: unknown anchor status %d", uint64(s))
	}
	return json.Marshal(name)
}

func (s *AnchorStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for status, n := range anchorStatusNames {
		if n == name {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("stream: unknown anchor status %q", name)
}

// StateLog is one entry of the stream log.
type StateLog struct {
	Cid            string `json:"cid"`
	Type           uint64 `json:"type"`
	Timestamp      *int64 `json:"timestamp,omitempty"`
	ExpirationTime *int64 `json:"expirationTime,omitempty"`
}

// AnchorProof is the proof projection carried on anchored state.
type AnchorProof struct {
	ChainID string `json:"chainId"`
	Root    string `json:"root"`
	TxHash  string `json:"txHash"`
	TxType  string `json:"txType,omitempty"`
}

// StreamState is the materialized state of a stream after folding its
// log. The JSON shape matches the HTTP API state endpoint.
type StreamState struct {
	Type         uint64          `json:"type"`
	Content      json.RawMessage `json:"content"`
	Log          []StateLog      `json:"log"`
	Metadata     json.RawMessage `json:"metadata"`
	Signature    SignatureStatus `json:"signature"`
	AnchorStatus AnchorStatus    `json:"anchorStatus"`
	AnchorProof  *AnchorProof    `json:"anchorProof,omitempty"`
	Doctype      string          `json:"doctype"`
}

// New returns an empty state for a stream of the given type.
func New(streamType uint64) *StreamState {
	return &StreamState{
		Type:         streamType,
		Signature:    SignatureSigned,
		AnchorStatus: AnchorPending,
		Doctype:      "MID",
	}
}

type metadataFields struct {
	Controllers []string `json:"controllers"`
	Model       string   `json:"model"`
}

func (s *StreamState) metadata() metadataFields {
	var m metadataFields
	if len(s.Metadata) != 0 {
		// Projections over malformed metadata degrade to empty values.
		_ = json.Unmarshal(s.Metadata, &m)
	}
	return m
}

// Controllers lists the stream controllers from the metadata.
func (s *StreamState) Controllers() []string {
	return s.metadata().Controllers
}

// Model returns the model stream id from the metadata, or nil when the
// metadata carries none.
func (s *StreamState) Model() (*streamid.StreamId, error) {
	model := s.metadata().Model
	if model == "" {
		return nil, nil
	}
	id, err := streamid.FromString(model)
	if err != nil {
		return nil, wrapError(KindState, err, "metadata model")
	}
	return &id, nil
}

// MustModel returns the model stream id, failing when the metadata
// carries none.
func (s *StreamState) MustModel() (streamid.StreamId, error) {
	id, err := s.Model()
	if err != nil {
		return streamid.StreamId{}, err
	}
	if id == nil {
		return streamid.StreamId{}, newError(KindState, "model not found in metadata")
	}
	return *id, nil
}

// StreamID derives the stream id from the first log entry.
func (s *StreamState) StreamID() (streamid.StreamId, error) {
	if len(s.Log) == 0 {
		return streamid.StreamId{}, newError(KindState, "log is empty")
	}
	genesis, err := cid.Decode(s.Log[0].Cid)
	if err != nil {
		return streamid.StreamId{}, wrapError(KindState, err, "genesis cid")
	}
	return streamid.New(streamid.Type(s.Type), genesis)
}

// Tip returns the CID of the last log entry.
func (s *StreamState) Tip() (cid.Cid, error) {
	if len(s.Log) == 0 {
		return cid.Undef, newError(KindState, "log is empty")
	}
	tip, err := cid.Decode(s.Log[len(s.Log)-1].Cid)
	if err != nil {
		return cid.Undef, wrapError(KindState, err, "tip cid")
	}
	return tip, nil
}

// CommitIDs lists a commit id for every log entry.
func (s *StreamState) CommitIDs() ([]streamid.CommitId, error) {
	streamID, err := s.StreamID()
	if err != nil {
		return nil, err
	}
	commits := make([]streamid.CommitId, 0, len(s.Log))
	for _, entry := range s.Log {
		tip, err := cid.Decode(entry.Cid)
		if err != nil {
			return nil, wrapError(KindState, err, "log cid %s", entry.Cid)
		}
		commit, err := streamid.NewCommitId(streamID, tip)
		if err != nil {
			return nil, err
		}
		commits = append(commits, commit)
	}
	return commits, nil
}
