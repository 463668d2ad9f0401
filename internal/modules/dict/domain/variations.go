package domain

import "strings"

// Variations returns the candidate headwords for a term, most specific
// first: the term itself, its lowercase form, then common English
// inflections stripped from the lowercase form. The list is deduplicated
// and order-preserving, so callers can stop at the first hit.
func Variations(term string) []string {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	lower := strings.ToLower(term)

	candidates := []string{term, lower}
	candidates = append(candidates, inflections(lower)...)

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func inflections(w string) []string {
	var out []string
	add := func(base string) {
		if len(base) >= 2 {
			out = append(out, base)
		}
	}

	switch {
	case strings.HasSuffix(w, "ies"):
		add(strings.TrimSuffix(w, "ies") + "y")
		add(strings.TrimSuffix(w, "es"))
		add(strings.TrimSuffix(w, "s"))
	case strings.HasSuffix(w, "es"):
		add(strings.TrimSuffix(w, "es"))
		add(strings.TrimSuffix(w, "s"))
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss"):
		add(strings.TrimSuffix(w, "s"))
	}

	if strings.HasSuffix(w, "ed") {
		// "walked" -> "walk", "loved" -> "love"
		add(strings.TrimSuffix(w, "ed"))
		add(strings.TrimSuffix(w, "d"))
	}

	if strings.HasSuffix(w, "ing") {
		// "running" -> "runn"/"run" is out of reach without a wordlist, but
		// "walking" -> "walk" and "writing" -> "write" both land.
		base := strings.TrimSuffix(w, "ing")
		add(base)
		add(base + "e")
	}

	switch {
	case strings.HasSuffix(w, "iness"):
		// "happiness" -> "happy", "loneliness" -> "lonely"
		add(strings.TrimSuffix(w, "iness") + "y")
	case strings.HasSuffix(w, "ness"):
		add(strings.TrimSuffix(w, "ness"))
	}

	if strings.HasSuffix(w, "ly") {
		add(strings.TrimSuffix(w, "ly"))
	}

	return out
}
