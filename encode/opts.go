package encode

import (
	"log/slog"

	"github.com/signadot/go-omi/omi"
	"github.com/signadot/go-omi/wire"
)

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level. Zero, the default,
// writes the document on one line.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Declaration controls whether an XML declaration is written.
func Declaration(v bool) EncodeOption {
	return func(es *EncState) { es.declaration = v }
}

// EncodeColors colours the output for display. Coloured output is not
// meant to be decoded.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

func Versions(vs ...string) EncodeOption {
	return func(es *EncState) { es.versions = vs }
}

func Namespaces(ns wire.Namespaces) EncodeOption {
	return func(es *EncState) { es.namespaces = ns }
}

func Logger(l *slog.Logger) EncodeOption {
	return func(es *EncState) { es.log = l }
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		versions:   omi.DefaultVersions,
		namespaces: wire.DefaultNamespaces(),
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.log == nil {
		es.log = slog.Default()
	}
	return es
}
