// Package config loads codec settings from YAML, TOML or HuJSON files and
// turns them into parse and encode options.
//
//	# omi.yaml
//	versions: ["1.0"]
//	namespaces:
//	  omi: omi.xsd
//	  odf: odf.xsd
//	encode:
//	  indent: 2
//	  color: auto
//	logLevel: debug
package config
