package store

import (
	"github.com/signadot/go-omi/omi"
)

// Handle executes the request in env against m and returns the response
// envelope, which has the version of env. Cancels fail with 501: Memory
// keeps no subscriptions.
func (m *Memory) Handle(env *omi.Envelope) (*omi.Envelope, error) {
	var res omi.Result
	switch env.Kind() {
	case omi.ReadKind:
		r, _ := env.Payload.AsRead()
		res = m.Read(r)
	case omi.WriteKind:
		w, _ := env.Payload.AsWrite()
		res.Return = m.Apply(w)
	case omi.CancelKind:
		res.Return = omi.Failure(omi.CodeNotImplemented, "subscriptions are not supported")
	default:
		res.Return = omi.Failure(omi.CodeBadRequest, env.Kind().String()+" is not a request")
	}
	resp, err := omi.NewResponse(res)
	if err != nil {
		return nil, err
	}
	out := &omi.Envelope{Version: env.Version, TTL: omi.TTLOf(0), Payload: resp}
	if err := omi.Validate(out, omi.Versions(env.Version)); err != nil {
		return nil, err
	}
	return out, nil
}
