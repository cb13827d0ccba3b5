// Package policy gates stream folding with caller-supplied validation
// hooks. A registry is built once at startup and threaded through the
// loader; there is no global registration.
package policy

import (
	"encoding/json"
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"xdao.co/ceramic/event"
	"xdao.co/ceramic/stream"
)

var (
	ErrProtectedField  = errors.New("attempt to modify protected fields")
	ErrPatchValidation = errors.New("validate patch field")
)

// Policy is one validation hook. EffectAt decides whether the policy
// applies to the stream at its current state; the remaining methods are
// consulted only when it does.
type Policy interface {
	EffectAt(state *stream.StreamState) (bool, error)

	// ProtectedFields lists JSON pointer paths that data patches may not
	// touch.
	ProtectedFields() []string

	// ValidateData inspects the full content of a genesis event.
	ValidateData(state *stream.StreamState, data json.RawMessage) error

	// ValidateOp inspects a single patch operation of a data event.
	ValidateOp(content json.RawMessage, op jsonpatch.Operation) error
}

// Base is a no-op Policy for embedding, so policies only override the
// hooks they care about.
type Base struct{}

var _ Policy = Base{}

func (Base) EffectAt(*stream.StreamState) (bool, error) { return false, nil }

func (Base) ProtectedFields() []string { return nil }

func (Base) ValidateData(*stream.StreamState, json.RawMessage) error { return nil }

func (Base) ValidateOp(json.RawMessage, jsonpatch.Operation) error { return nil }

// Registry is an ordered list of policies applied during a fold.
// The zero value is an empty registry and rejects nothing.
type Registry struct {
	policies []Policy
}

func NewRegistry(policies ...Policy) *Registry {
	return &Registry{policies: policies}
}

// CheckEvent runs every applicable policy against a signed event before
// it is folded into the state. Anchor events carry no content and pass
// unchecked.
func (r *Registry) CheckEvent(state *stream.StreamState, ev *event.Event) error {
	if r == nil || len(r.policies) == 0 {
		return nil
	}
	signed, ok := ev.Value.(*event.SignedValue)
	if !ok {
		return nil
	}
	payload, err := signed.Payload()
	if err != nil {
		return err
	}
	for _, p := range r.policies {
		applies, err := p.EffectAt(state)
		if err != nil {
			return err
		}
		if !applies {
			continue
		}
		if signed.IsGenesis() {
			if err := p.ValidateData(state, payload.Data); err != nil {
				return err
			}
			continue
		}
		if err := validatePatch(p, state.Content, payload.Data); err != nil {
			return err
		}
	}
	return nil
}

func validatePatch(p Policy, content, rawPatch json.RawMessage) error {
	patch, err := jsonpatch.DecodePatch(rawPatch)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPatchValidation, err)
	}
	protected := p.ProtectedFields()
	for _, op := range patch {
		for _, path := range opPaths(op) {
			for _, field := range protected {
				if path == field {
					return ErrProtectedField
				}
			}
		}
		if err := p.ValidateOp(content, op); err != nil {
			return fmt.Errorf("%w: %v", ErrPatchValidation, err)
		}
	}
	return nil
}

// opPaths returns every pointer an operation touches: the target path,
// plus the source path for move and copy.
func opPaths(op jsonpatch.Operation) []string {
	var paths []string
	if path, err := op.Path(); err == nil {
		paths = append(paths, path)
	}
	if kind := op.Kind(); kind == "move" || kind == "copy" {
		if from, err := op.From(); err == nil {
			paths = append(paths, from)
		}
	}
	return paths
}
