package render

import "strings"

// Kind is the rendering strategy chosen for an artifact.
type Kind int

// Artifact kinds.
const (
	KindUnsupported Kind = iota
	KindHTMLDataURI
	KindHTMLDocument
	KindImageDataURI
)

// String returns the kind's stable name.
func (k Kind) String() string {
	switch k {
	case KindHTMLDataURI:
		return "html_data_uri"
	case KindHTMLDocument:
		return "html_document"
	case KindImageDataURI:
		return "image_data_uri"
	default:
		return "unsupported"
	}
}

// Rule maps a set of prefixes to a kind.
type Rule struct {
	Kind     Kind
	Prefixes []string
}

// Matches reports whether s starts with any of the rule's prefixes.
func (r Rule) Matches(s string) bool {
	for _, p := range r.Prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

var rules = []Rule{
	{Kind: KindHTMLDataURI, Prefixes: []string{"data:text/html"}},
	{Kind: KindHTMLDocument, Prefixes: []string{"<html", "<!DOCTYPE"}},
	{Kind: KindImageDataURI, Prefixes: []string{"data:image"}},
}

// Rules returns the ordered classification rules. Inputs matching none of
// them are [KindUnsupported].
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Kind: r.Kind, Prefixes: append([]string(nil), r.Prefixes...)}
	}
	return out
}

// Decision is the result of classifying an artifact.
type Decision struct {
	// Kind is the selected rendering strategy.
	Kind Kind

	// Artifact is the trimmed artifact the decision was made on.
	Artifact string
}

// Classify trims raw and selects a kind by the first matching rule.
// It is total: every input, including the empty string, yields a decision.
func Classify(raw string) Decision {
	trimmed := strings.TrimSpace(raw)
	for _, r := range rules {
		if r.Matches(trimmed) {
			return Decision{Kind: r.Kind, Artifact: trimmed}
		}
	}
	return Decision{Kind: KindUnsupported, Artifact: trimmed}
}
