package event

import (
	"context"
	"time"

	"xdao.co/ceramic/cacao"
	"xdao.co/ceramic/streamid"
)

// VerifyOption is one check applied to a signed event's capability.
// Checks run in the order given.
type VerifyOption interface {
	check(p *cacao.Payload) (*time.Time, error)
}

// ResourceModelsContain requires the capability to grant access to Model.
type ResourceModelsContain struct {
	Model streamid.StreamId
}

func (o ResourceModelsContain) check(p *cacao.Payload) (*time.Time, error) {
	models, err := p.ResourceModels()
	if err != nil {
		return nil, wrapError(KindAuth, err, "resource models")
	}
	for _, m := range models {
		if m.Equals(o.Model) {
			return nil, nil
		}
	}
	return nil, newError(KindAuth, "invalid resource model")
}

// ExpirationTimeBefore fails when the capability expired before the given
// time.
type ExpirationTimeBefore struct {
	Before time.Time
}

func (o ExpirationTimeBefore) check(p *cacao.Payload) (*time.Time, error) {
	exp, err := p.ExpirationTime()
	if err != nil {
		return nil, wrapError(KindAuth, err, "expiration time")
	}
	if exp != nil && exp.Before(o.Before) {
		return nil, newError(KindAuth, "jws commit expired")
	}
	return exp, nil
}

// Verify checks a signed event's capability against the given options.
// Anchor events and signed events without a capability pass vacuously.
// For events with a capability the cap header must address the attached
// capability block. The returned time is the capability expiration when
// an expiration check observed one.
func (e *Event) Verify(opts ...VerifyOption) (*time.Time, error) {
	signed, ok := e.Value.(*SignedValue)
	if !ok || signed.CacaoBlock == nil {
		return nil, nil
	}

	c, err := signed.Cacao()
	if err != nil {
		return nil, err
	}
	capability, err := signed.JWS.CapabilityCID()
	if err != nil {
		return nil, err
	}
	link, err := signed.CacaoCID()
	if err != nil {
		return nil, err
	}
	if !capability.Equals(link) {
		return nil, newError(KindAuth, "cacao not match jws cap")
	}

	var expiration *time.Time
	for _, opt := range opts {
		exp, err := opt.check(&c.P)
		if err != nil {
			return nil, err
		}
		if exp != nil {
			expiration = exp
		}
	}
	return expiration, nil
}

// TimeOracle resolves a trusted wall-clock time for an anchor proof,
// typically the block time of the proof's transaction.
type TimeOracle interface {
	ProofTime(ctx context.Context, proof *AnchorProof) (time.Time, error)
}

// FixedTimeOracle reports the same time for every proof. It suits tests
// and deployments without chain access.
type FixedTimeOracle struct {
	Time time.Time
}

func (o FixedTimeOracle) ProofTime(context.Context, *AnchorProof) (time.Time, error) {
	return o.Time, nil
}
