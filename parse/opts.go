package parse

import (
	"log/slog"

	"github.com/signadot/go-omi/omi"
	"github.com/signadot/go-omi/wire"
)

type parseOpts struct {
	versions   []string
	namespaces wire.Namespaces
	log        *slog.Logger
}

type ParseOption func(*parseOpts)

// Versions sets the version allow-list. The default is omi.DefaultVersions.
func Versions(vs ...string) ParseOption {
	return func(o *parseOpts) { o.versions = vs }
}

// Namespaces sets the namespace URIs of envelope and tree elements.
func Namespaces(ns wire.Namespaces) ParseOption {
	return func(o *parseOpts) { o.namespaces = ns }
}

// Logger sets the logger that records rejected documents at debug level.
// A nil logger means slog.Default().
func Logger(l *slog.Logger) ParseOption {
	return func(o *parseOpts) { o.log = l }
}

func newOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{
		versions:   omi.DefaultVersions,
		namespaces: wire.DefaultNamespaces(),
	}
	for _, f := range opts {
		f(o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	return o
}
