package libxo

import "os"

// envOptionsVar is the environment variable read at first use of the default
// handle. See spec.md §6.4 for the token grammar.
const envOptionsVar = "LIBXO_OPTIONS"

// applyEnvOptions applies LIBXO_CONFIG (if set, via loadYAMLConfigFromEnv in
// config.go) and then LIBXO_OPTIONS (if set) to h, in that order so the env
// token string always wins on conflicts. It runs once when the default handle
// is first created; there is no build tag or other compile-time switch that
// turns it off.
func applyEnvOptions(h *Handle) {
	if cfg, ok := loadYAMLConfigFromEnv(); ok {
		cfg.applyTo(h)
	}
	applyOptionString(h, os.Getenv(envOptionsVar))
}

// applyOptionString parses the LIBXO_OPTIONS single-character token grammar
// and applies it to h. Unrecognized tokens are ignored (the source is silent
// about them too).
func applyOptionString(h *Handle, s string) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'H':
			h.SetStyle(HTML)
		case 'J':
			h.SetStyle(JSON)
		case 'T':
			h.SetStyle(Text)
		case 'X':
			h.SetStyle(XML)
		case 'P':
			h.SetFlags(Pretty)
		case 'W':
			h.SetFlags(Warn)
		case 'I':
			h.SetFlags(Info)
		case 'x':
			h.SetFlags(XPath)
		case 'i':
			n := 0
			j := i + 1
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				n = n*10 + int(s[j]-'0')
				j++
			}
			if j > i+1 {
				h.SetIndentBy(uint(n))
				i = j - 1
			}
		}
	}
}
