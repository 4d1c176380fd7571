// ABOUTME: Brand name synonym generation
// ABOUTME: Derives name variants from a brand name and website URL for visibility matching
package synonyms

import "strings"

// legalSuffixes are tried in order; the first case-insensitive match is
// stripped. Longer forms come before their substrings.
var legalSuffixes = []string{
	"Group plc",
	"plc",
	"Ltd",
	"Limited",
	"Inc",
	"Incorporated",
	"Corp",
	"Corporation",
	"SA",
	"AG",
	"S.p.A.",
	"NV",
}

// Generate derives name variants from a brand name and optional URL:
// the name itself, the legal-suffix-stripped form, initials, the no-space
// form, and URL-derived aliases. Deterministic, duplicates removed,
// insertion order preserved. Absent inputs contribute nothing.
func Generate(name, url string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	name = strings.TrimSpace(name)
	add(name)

	stripped := stripLegalSuffix(name)
	if stripped != "" && stripped != name {
		add(stripped)
	}

	// Initials of the stripped form: a single-word name produces a useless
	// one-letter string, and many-word names get unwieldy, so only 2-5 chars.
	base := name
	if stripped != "" {
		base = stripped
	}
	if ini := initials(base); len(ini) >= 2 && len(ini) <= 5 {
		add(ini)
	}

	if squeezed := removeWhitespace(name); squeezed != name {
		add(squeezed)
	}

	if url != "" {
		host := normalizeURL(url)
		add(host)
		if strings.HasPrefix(host, "www.") {
			add(strings.TrimPrefix(host, "www."))
		}
	}

	return out
}

// stripLegalSuffix removes the first matching legal-entity suffix from the
// end of name. Returns "" when nothing (or everything) was stripped.
func stripLegalSuffix(name string) string {
	lower := strings.ToLower(name)
	for _, suffix := range legalSuffixes {
		// Require a space before the suffix so names merely ending in the
		// same letters ("Freitag" vs "AG") are left alone.
		ls := " " + strings.ToLower(suffix)
		if !strings.HasSuffix(lower, ls) {
			continue
		}
		stripped := strings.TrimSpace(name[:len(name)-len(ls)])
		if stripped == "" {
			return ""
		}
		return stripped
	}
	return ""
}

func initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

func removeWhitespace(name string) string {
	return strings.Join(strings.Fields(name), "")
}

// normalizeURL strips the protocol and any trailing slash, leaving the bare
// host (plus path if one was given).
func normalizeURL(url string) string {
	url = strings.TrimSpace(url)
	for _, proto := range []string{"https://", "http://"} {
		if strings.HasPrefix(url, proto) {
			url = url[len(proto):]
			break
		}
	}
	return strings.TrimSuffix(url, "/")
}
