package stream

import (
	jsonpatch "github.com/evanphx/json-patch/v5"

	"xdao.co/ceramic/event"
)

// ApplyEvent folds one event onto the state. It is the only state
// mutator: the event's prev link must point at the current tip, and the
// log grows by exactly one entry on success.
func (s *StreamState) ApplyEvent(ev *event.Event) error {
	prev, err := ev.Prev()
	if err != nil {
		return wrapError(KindChain, err, "event %s", ev.Cid)
	}
	if prev.Defined() {
		if len(s.Log) == 0 {
			return newError(KindChain, "missing last log")
		}
		tip := s.Log[len(s.Log)-1].Cid
		if prev.String() != tip {
			return newError(KindChain, "invalid prev cid: %s != %s", prev, tip)
		}
	} else if ev.LogType() != event.LogGenesis {
		return newError(KindChain, "invalid genesis event")
	}

	var expiration *int64
	switch v := ev.Value.(type) {
	case *event.SignedValue:
		if err := s.applySigned(v); err != nil {
			return err
		}
		cacao, err := v.Cacao()
		if err != nil {
			return err
		}
		if cacao != nil {
			exp, err := cacao.P.ExpirationTime()
			if err != nil {
				return wrapError(KindChain, err, "capability expiration")
			}
			if exp != nil {
				unix := exp.Unix()
				expiration = &unix
			}
		}
	case *event.AnchorValue:
		if err := s.applyAnchor(v); err != nil {
			return err
		}
	default:
		return newError(KindChain, "unknown event value %T", ev.Value)
	}

	s.Log = append(s.Log, StateLog{
		Cid:            ev.Cid.String(),
		Type:           uint64(ev.LogType()),
		ExpirationTime: expiration,
	})
	return nil
}

func (s *StreamState) applySigned(v *event.SignedValue) error {
	payload, err := v.Payload()
	if err != nil {
		return wrapError(KindChain, err, "signed payload")
	}

	if !payload.ID.Defined() {
		// Genesis: the payload carries the initial content and header.
		if payload.Data != nil {
			s.Content = payload.Data
		}
		if payload.Header != nil {
			meta, err := payload.Header.Metadata()
			if err != nil {
				return wrapError(KindChain, err, "header metadata")
			}
			s.Metadata = meta
		}
		return nil
	}

	// Data event: the payload carries a JSON patch over the content.
	if payload.Data == nil {
		return nil
	}
	patch, err := jsonpatch.DecodePatch(payload.Data)
	if err != nil {
		return wrapError(KindPatch, err, "decode patch")
	}
	content := s.Content
	if content == nil {
		content = []byte("null")
	}
	patched, err := patch.Apply(content)
	if err != nil {
		return wrapError(KindPatch, err, "apply patch")
	}
	s.Content = patched
	return nil
}

func (s *StreamState) applyAnchor(v *event.AnchorValue) error {
	if v.ProofBlock != nil {
		proof, err := v.DecodeProof()
		if err != nil {
			return wrapError(KindChain, err, "anchor proof")
		}
		s.AnchorProof = &AnchorProof{
			ChainID: proof.ChainID,
			Root:    proof.Root.String(),
			TxHash:  proof.TxHash.String(),
			TxType:  proof.TxType,
		}
	}
	s.AnchorStatus = AnchorAnchored
	return nil
}
