package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ipfs/go-cid"
	"go.uber.org/zap"

	"xdao.co/ceramic/event"
	"xdao.co/ceramic/storage"
	"xdao.co/ceramic/stream"
	"xdao.co/ceramic/streamid"
)

const (
	streamsEndpoint = "/api/v0/streams"
	commitsEndpoint = "/api/v0/commits"
)

var (
	defaultGenesisOpts = json.RawMessage(`{"anchor":true,"publish":true,"sync":3,"syncTimeoutSeconds":0}`)
	defaultDataOpts    = json.RawMessage(`{"anchor":true,"publish":true,"sync":3}`)
)

// JwsValue is the signed commit value of the commits endpoint.
type JwsValue struct {
	JWS         event.JWS    `json:"jws"`
	LinkedBlock Base64String `json:"linkedBlock"`
}

// AnchorCommitValue is the anchor commit value of the commits endpoint.
// All fields are text CIDs; the proof block itself is not included.
type AnchorCommitValue struct {
	ID    string `json:"id"`
	Path  string `json:"path"`
	Prev  string `json:"prev"`
	Proof string `json:"proof"`
}

// Commit is one log entry of the commits endpoint. The value is untagged
// JSON: signed commits carry a jws key, anchor commits do not.
type Commit struct {
	Cid    string
	Signed *JwsValue
	Anchor *AnchorCommitValue
}

func (c *Commit) UnmarshalJSON(data []byte) error {
	var probe struct {
		Cid   string          `json:"cid"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	c.Cid = probe.Cid

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(probe.Value, &keys); err != nil {
		return err
	}
	if _, ok := keys["jws"]; ok {
		c.Signed = new(JwsValue)
		return json.Unmarshal(probe.Value, c.Signed)
	}
	c.Anchor = new(AnchorCommitValue)
	return json.Unmarshal(probe.Value, c.Anchor)
}

// Event converts the commit into an event. Anchor commits come back
// without their proof block; signed commits without their cacao block.
func (c *Commit) Event() (*event.Event, error) {
	id, err := cid.Decode(c.Cid)
	if err != nil {
		return nil, fmt.Errorf("httpapi: commit cid: %w", err)
	}
	switch {
	case c.Signed != nil:
		linked, err := c.Signed.LinkedBlock.Bytes()
		if err != nil {
			return nil, err
		}
		value := &event.SignedValue{JWS: c.Signed.JWS, LinkedBlock: linked}
		return &event.Event{Cid: id, Value: value}, nil
	case c.Anchor != nil:
		genesis, err := cid.Decode(c.Anchor.ID)
		if err != nil {
			return nil, fmt.Errorf("httpapi: anchor id: %w", err)
		}
		prev, err := cid.Decode(c.Anchor.Prev)
		if err != nil {
			return nil, fmt.Errorf("httpapi: anchor prev: %w", err)
		}
		proof, err := cid.Decode(c.Anchor.Proof)
		if err != nil {
			return nil, fmt.Errorf("httpapi: anchor proof: %w", err)
		}
		value := &event.AnchorValue{ID: genesis, Prev: prev, Proof: proof, Path: c.Anchor.Path}
		return &event.Event{Cid: id, Value: value}, nil
	default:
		return nil, fmt.Errorf("httpapi: commit %s has no value", c.Cid)
	}
}

// CommitsResponse is the body of GET /api/v0/commits/{streamid}.
type CommitsResponse struct {
	StreamID streamid.StreamId `json:"streamId"`
	DocID    string            `json:"docId,omitempty"`
	Commits  []Commit          `json:"commits"`
}

// StreamsResponse is the body of the streams endpoint.
type StreamsResponse struct {
	StreamID streamid.StreamId   `json:"streamId"`
	State    *stream.StreamState `json:"state,omitempty"`
}

type Options struct {
	// HTTPClient overrides the transport; nil uses a 30s-timeout default.
	HTTPClient *http.Client

	// Logger for publish outcomes; nil disables logging.
	Logger *zap.Logger
}

// Client talks to a Ceramic daemon. It satisfies the events loader and
// uploader capabilities.
type Client struct {
	base *url.URL
	http *http.Client
	log  *zap.Logger
}

var (
	_ storage.EventsLoader   = (*Client)(nil)
	_ storage.EventsUploader = (*Client)(nil)
)

func New(endpoint string, opts Options) (*Client, error) {
	base, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("httpapi: endpoint: %w", err)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{base: base, http: httpClient, log: log}, nil
}

// LoadEvents fetches the commit log of a stream, genesis first. A defined
// tip truncates the log at that commit.
func (c *Client) LoadEvents(ctx context.Context, streamID streamid.StreamId, tip cid.Cid) ([]*event.Event, error) {
	var resp CommitsResponse
	if err := c.getJSON(ctx, commitsEndpoint+"/"+streamID.String(), &resp); err != nil {
		return nil, err
	}
	events := make([]*event.Event, 0, len(resp.Commits))
	for i := range resp.Commits {
		ev, err := resp.Commits[i].Event()
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
		if tip.Defined() && ev.Cid == tip {
			return events, nil
		}
	}
	if tip.Defined() {
		return nil, fmt.Errorf("event %s not found", tip)
	}
	return events, nil
}

// UploadEvent publishes a commit. Genesis commits go to the streams
// endpoint, data commits to the commits endpoint. Anchor commits are
// produced by the anchor service and cannot be published. Publish
// failures are logged and not returned, matching the fire-and-forget
// gossip semantics.
func (c *Client) UploadEvent(ctx context.Context, streamID streamid.StreamId, ev *event.Event) error {
	content, err := ContentFromEvent(ev)
	if err != nil {
		return err
	}
	switch ev.LogType() {
	case event.LogGenesis:
		body := Genesis{
			Type:    uint64(streamID.Type),
			Genesis: *content,
			Opts:    defaultGenesisOpts,
		}
		if err := c.postJSON(ctx, streamsEndpoint, body); err != nil {
			c.log.Error("failed to publish genesis",
				zap.String("cid", ev.Cid.String()),
				zap.String("streamId", streamID.String()),
				zap.Error(err))
			return nil
		}
		c.log.Info("publish genesis",
			zap.String("cid", ev.Cid.String()),
			zap.String("streamId", streamID.String()))
	case event.LogSigned:
		body := Data{
			StreamID: streamID,
			Commit:   *content,
			Opts:     defaultDataOpts,
		}
		if err := c.postJSON(ctx, commitsEndpoint, body); err != nil {
			c.log.Error("failed to publish data",
				zap.String("cid", ev.Cid.String()),
				zap.String("streamId", streamID.String()),
				zap.Error(err))
			return nil
		}
		c.log.Info("publish data",
			zap.String("cid", ev.Cid.String()),
			zap.String("streamId", streamID.String()))
	default:
		return fmt.Errorf("httpapi: cannot publish event %s: unsupported log type", ev.Cid)
	}
	return nil
}

// GetStreamState fetches the daemon's own view of a stream.
func (c *Client) GetStreamState(ctx context.Context, streamID streamid.StreamId) (*stream.StreamState, error) {
	var resp StreamsResponse
	if err := c.getJSON(ctx, streamsEndpoint+"/"+streamID.String(), &resp); err != nil {
		return nil, err
	}
	if resp.State == nil {
		return nil, fmt.Errorf("httpapi: stream %s has no state", streamID)
	}
	return resp.State, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.urlFor(path), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return httpError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) postJSON(ctx context.Context, path string, body any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.urlFor(path), bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return httpError(resp)
	}
	return nil
}

func (c *Client) urlFor(path string) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	return u.String()
}

func httpError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var daemon struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &daemon); err == nil && daemon.Error != "" {
		return fmt.Errorf("httpapi: %s: %s", resp.Status, daemon.Error)
	}
	return fmt.Errorf("httpapi: unexpected status %s", resp.Status)
}
