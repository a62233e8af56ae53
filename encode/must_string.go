package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/go-omi/omi"
)

// MustString encodes env or panics. It is meant for tests and examples.
func MustString(env *omi.Envelope, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(env, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
