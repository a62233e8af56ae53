package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/go-omi/encode"
	"github.com/signadot/go-omi/omi"
	"github.com/signadot/go-omi/parse"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadConfig(t *testing.T) {
	want := &Config{
		Versions:   []string{"1.0", "2.0"},
		Namespaces: &NamespaceConfig{OMI: "urn:omi", ODF: "urn:odf"},
		Encode:     &EncodeConfig{Indent: 2, Declaration: true, Color: ColorNever},
		LogLevel:   "debug",
	}
	files := map[string]string{
		"omi.yaml": `
versions: ["1.0", "2.0"]
namespaces:
  omi: urn:omi
  odf: urn:odf
encode:
  indent: 2
  declaration: true
  color: never
logLevel: debug
`,
		"omi.toml": `
versions = ["1.0", "2.0"]
logLevel = "debug"

[namespaces]
omi = "urn:omi"
odf = "urn:odf"

[encode]
indent = 2
declaration = true
color = "never"
`,
		"omi.hujson": `{
	// protocol versions
	"versions": ["1.0", "2.0"],
	"namespaces": {"omi": "urn:omi", "odf": "urn:odf"},
	"encode": {"indent": 2, "declaration": true, "color": "never",},
	"logLevel": "debug",
}`,
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			got, err := LoadConfig(writeFile(t, name, content))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]string{
		"unknown.yaml":   "versions: [\"1.0\"]\nbogus: 1\n",
		"unknown.toml":   "bogus = 1\n",
		"unknown.json":   `{"bogus": 1}`,
		"empty.yaml":     "versions: []\n",
		"color.yaml":     "encode:\n  color: sometimes\n",
		"indent.toml":    "[encode]\nindent = -1\n",
		"same-ns.json":   `{"namespaces": {"omi": "x", "odf": "x"}}`,
		"level.yaml":     "logLevel: loud\n",
		"config.ini":     "versions=1.0\n",
		"malformed.json": `{"versions": [}`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadConfig(writeFile(t, name, content)); err == nil {
				t.Error("no error")
			}
		})
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file loaded")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(omi.DefaultVersions, cfg.Versions); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Versions = []string{"2.0"}
	cfg.Namespaces = &NamespaceConfig{OMI: "urn:omi", ODF: "urn:odf"}
	cfg.Encode.Indent = 1
	log := cfg.Logger()

	doc := `<omiEnvelope xmlns="urn:omi" version="2.0" ttl="INF"><cancel><requestID>9</requestID></cancel></omiEnvelope>`
	env, err := parse.ParseString(doc, cfg.ParseOptions(log)...)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := encode.Encode(env, &buf, cfg.EncodeOptions(&buf, log)...); err != nil {
		t.Fatal(err)
	}
	want := "<omiEnvelope xmlns=\"urn:omi\" version=\"2.0\" ttl=\"INF\">\n <cancel>\n  <requestID>9</requestID>\n </cancel>\n</omiEnvelope>\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q", got)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("auto colour coloured a buffer")
	}
}
