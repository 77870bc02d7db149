package libxo

import (
	"os"

	yaml "go.yaml.in/yaml/v2"
)

// envConfigVar names a YAML file of default options, applied before
// LIBXO_OPTIONS (see applyEnvOptions). This is an addition beyond spec.md's
// env-config surface; the YAML tags mirror the spec's own vocabulary so the
// two configuration paths read the same way.
const envConfigVar = "LIBXO_CONFIG"

// fileConfig is the YAML shape accepted by LIBXO_CONFIG:
//
//	style: json
//	pretty: true
//	indent: 4
//	warn: true
//	xpath: false
//	info: false
type fileConfig struct {
	Style  string `yaml:"style"`
	Pretty bool   `yaml:"pretty"`
	Indent *uint  `yaml:"indent"`
	Warn   bool   `yaml:"warn"`
	XPath  bool   `yaml:"xpath"`
	Info   bool   `yaml:"info"`
}

func (c fileConfig) applyTo(h *Handle) {
	switch c.Style {
	case "text":
		h.SetStyle(Text)
	case "xml":
		h.SetStyle(XML)
	case "json":
		h.SetStyle(JSON)
	case "html":
		h.SetStyle(HTML)
	}
	if c.Pretty {
		h.SetFlags(Pretty)
	}
	if c.Warn {
		h.SetFlags(Warn)
	}
	if c.XPath {
		h.SetFlags(XPath)
	}
	if c.Info {
		h.SetFlags(Info)
	}
	if c.Indent != nil {
		h.SetIndentBy(*c.Indent)
	}
}

// loadYAMLConfigFromEnv loads the file named by LIBXO_CONFIG, if set. A
// missing or unreadable file, or one that fails to parse, is reported as
// "not found" rather than a fatal error — configuration is always
// best-effort, matching the library's overall "prefer output over failing
// loudly" error policy (spec.md §7).
func loadYAMLConfigFromEnv() (fileConfig, bool) {
	path := os.Getenv(envConfigVar)
	if path == "" {
		return fileConfig{}, false
	}
	return loadYAMLConfigFile(path)
}

func loadYAMLConfigFile(path string) (fileConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, false
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, false
	}
	return cfg, true
}
