package negotiate

import (
	"sort"
	"strconv"
	"strings"
)

// Specificity ordering for media range patterns at equal quality:
// exact type/subtype beats type/* which beats */*.
const (
	specWildcard = iota
	specSubtypeWildcard
	specExact
)

type preference struct {
	mediaRange  string
	quality     float64
	specificity int
}

// parseAccept parses an Accept header value into an ordered preference
// list: quality descending, then specificity, then declaration order.
// A malformed or out-of-range q value is treated as absent (1.0) and
// q=0 ranges are excluded outright per RFC 7231. An empty header
// accepts anything.
func parseAccept(header string) []preference {
	if strings.TrimSpace(header) == "" {
		return []preference{{mediaRange: "*/*", quality: 1, specificity: specWildcard}}
	}

	var prefs []preference
	for _, part := range strings.Split(header, ",") {
		fields := strings.Split(part, ";")
		mediaRange := strings.ToLower(strings.TrimSpace(fields[0]))
		if mediaRange == "" {
			continue
		}

		quality := 1.0
		for _, field := range fields[1:] {
			name, value, ok := strings.Cut(field, "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(name), "q") {
				continue
			}
			if v, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil && v >= 0 && v <= 1 {
				quality = v
			}
			break
		}
		if quality == 0 {
			continue
		}

		prefs = append(prefs, preference{
			mediaRange:  mediaRange,
			quality:     quality,
			specificity: rangeSpecificity(mediaRange),
		})
	}

	// Stable sort keeps declaration order for fully equal preferences.
	sort.SliceStable(prefs, func(i, j int) bool {
		if prefs[i].quality != prefs[j].quality {
			return prefs[i].quality > prefs[j].quality
		}
		return prefs[i].specificity > prefs[j].specificity
	})
	return prefs
}

func rangeSpecificity(mediaRange string) int {
	switch {
	case mediaRange == "*" || mediaRange == "*/*":
		return specWildcard
	case strings.HasSuffix(mediaRange, "/*"):
		return specSubtypeWildcard
	}
	return specExact
}

// matches reports whether a registered content type satisfies a media
// range pattern. Both sides are already lowercased.
func matches(contentType, mediaRange string) bool {
	switch {
	case mediaRange == "*" || mediaRange == "*/*":
		return true
	case strings.HasSuffix(mediaRange, "/*"):
		return strings.HasPrefix(contentType, strings.TrimSuffix(mediaRange, "*"))
	}
	return contentType == mediaRange
}
