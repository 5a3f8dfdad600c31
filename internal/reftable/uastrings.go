package reftable

// uaShortcuts maps the short keys usable after "u" in a spec (spec.md
// §4.1 "ua_shortcut") to full User-Agent header values. Mirrors
// netlib's http_uastrings table in the original pathod implementation,
// trimmed to the browsers still worth round-tripping in tests.
var uaShortcuts = map[string]string{
	"android":  "Mozilla/5.0 (Linux; U; Android 4.4.2; en-us; Nexus 5 Build/KOT49H) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 Chrome/34.0.1847.114 Mobile Safari/537.36",
	"chrome":   "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/59.0.3071.115 Safari/537.36",
	"firefox":  "Mozilla/5.0 (X11; Linux x86_64; rv:54.0) Gecko/20100101 Firefox/54.0",
	"ios":      "Mozilla/5.0 (iPhone; CPU iPhone OS 10_3_2 like Mac OS X) AppleWebKit/603.2.4 (KHTML, like Gecko) Version/10.0 Mobile/14F89 Safari/602.1",
	"safari":   "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_12_5) AppleWebKit/603.2.4 (KHTML, like Gecko) Version/10.1.1 Safari/603.2.4",
	"msie9":    "Mozilla/5.0 (Windows; U; MSIE 9.0; Windows NT 9.0; en-US)",
	"msie10":   "Mozilla/5.0 (compatible; MSIE 10.0; Windows NT 6.2; Trident/6.0)",
	"iphone":   "Mozilla/5.0 (iPhone; CPU iPhone OS 5_1_1 like Mac OS X) AppleWebKit/534.46 (KHTML, like Gecko) Version/5.1 Mobile/9B206 Safari/7534.48.3",
	"ipad":     "Mozilla/5.0 (iPad; CPU OS 5_1 like Mac OS X) AppleWebKit/534.46 (KHTML, like Gecko) Version/5.1 Mobile/9B176 Safari/7534.48.3",
}

// UserAgent resolves a "u" shortcut key to a full User-Agent string.
// The second return is false when key is not a known shortcut, in
// which case the spec value should be used verbatim instead (spec.md
// §3.2, UserAgent(value|shortcut_key)).
func UserAgent(key string) (string, bool) {
	v, ok := uaShortcuts[key]
	return v, ok
}
