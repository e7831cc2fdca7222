// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package npm implements the NPM constraint shorthand translator and an
// NPM version/constraint façade built on top of the semver package.
package npm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// partialPattern matches an NPM partial version core: each of
// major/minor/patch may be a literal integer or one of the wildcard
// spellings x, X, *; a trailing pre-release tag is optional.
var partialPattern = regexp.MustCompile(
	`^(?P<major>[0-9]+|[xX*])?` +
		`(?:\.(?P<minor>[0-9]+|[xX*]))?` +
		`(?:\.(?P<patch>[0-9]+|[xX*]))?` +
		`(?:-(?P<pre>[0-9A-Za-z.-]+))?$`,
)

type partial struct {
	major, minor, patch string // "" means absent/wildcard
	pre                 string
}

func isWildcardSegment(s string) bool {
	return s == "" || s == "x" || s == "X" || s == "*"
}

func parsePartial(s string) (partial, bool) {
	m := partialPattern.FindStringSubmatch(s)
	if m == nil {
		return partial{}, false
	}
	names := partialPattern.SubexpNames()
	groups := make(map[string]string, len(names))
	for i, n := range names {
		if n != "" {
			groups[n] = m[i]
		}
	}
	p := partial{major: groups["major"], minor: groups["minor"], patch: groups["patch"], pre: groups["pre"]}
	if isWildcardSegment(p.major) {
		p.major = ""
	}
	if isWildcardSegment(p.minor) {
		p.minor = ""
	}
	if isWildcardSegment(p.patch) {
		p.patch = ""
	}
	return p, true
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, _ := strconv.Atoi(s)
	return n
}

func fullVersion(major, minor, patch int, pre string) string {
	if pre == "" {
		return fmt.Sprintf("%d.%d.%d", major, minor, patch)
	}
	return fmt.Sprintf("%d.%d.%d-%s", major, minor, patch, pre)
}

// Translate rewrites a human-readable NPM constraint into a space-
// separated list of plain "op version" terms consumable by the semver
// package's constraint parser. It is a pure string-to-string function,
// intentionally decoupled from the semver parser's internals.
func Translate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" || s == "latest" || s == "latest.integration" {
		return ">=0.0.0", nil
	}
	if lo, hi, ok := splitHyphenRange(s); ok {
		return translateHyphen(lo, hi)
	}
	fields := strings.Fields(s)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		t, err := translateTerm(f)
		if err != nil {
			return "", err
		}
		terms = append(terms, t)
	}
	return strings.Join(terms, " "), nil
}

var hyphenPattern = regexp.MustCompile(`^(\S+)\s+-\s+(\S+)$`)

func splitHyphenRange(s string) (lo, hi string, ok bool) {
	m := hyphenPattern.FindStringSubmatch(s)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// translateHyphen implements the hyphen pass: "A - B" becomes ">=A
// <=B"-like bounds, with B's missing trailing components widening the
// upper bound to the next unspecified unit rather than narrowing it.
func translateHyphen(lo, hi string) (string, error) {
	loP, ok := parsePartial(lo)
	if !ok {
		return "", fmt.Errorf("npm: invalid hyphen range lower bound %q", lo)
	}
	hiP, ok := parsePartial(hi)
	if !ok {
		return "", fmt.Errorf("npm: invalid hyphen range upper bound %q", hi)
	}
	lower := fmt.Sprintf(">=%s", fullVersion(atoiOr(loP.major, 0), atoiOr(loP.minor, 0), atoiOr(loP.patch, 0), loP.pre))
	var upper string
	switch {
	case hiP.minor == "":
		upper = fmt.Sprintf("<%s", fullVersion(atoiOr(hiP.major, 0)+1, 0, 0, "0"))
	case hiP.patch == "":
		upper = fmt.Sprintf("<%s", fullVersion(atoiOr(hiP.major, 0), atoiOr(hiP.minor, 0)+1, 0, "0"))
	default:
		upper = fmt.Sprintf("<=%s", fullVersion(atoiOr(hiP.major, 0), atoiOr(hiP.minor, 0), atoiOr(hiP.patch, 0), hiP.pre))
	}
	return lower + " " + upper, nil
}

// translateTerm translates a single whitespace-delimited NPM constraint
// atom: a caret range, a tilde range, an X-range (with or without a
// leading comparator), or a plain comparator term passed through as-is.
func translateTerm(term string) (string, error) {
	switch {
	case strings.HasPrefix(term, "^"):
		return translateCaret(term[1:])
	case strings.HasPrefix(term, "~"):
		return translateTilde(term[1:])
	}
	op, rest := splitLeadingComparator(term)
	p, ok := parsePartial(rest)
	if !ok {
		return "", fmt.Errorf("npm: invalid version %q", term)
	}
	if p.major != "" && p.minor != "" && p.patch != "" {
		// Fully specified, with or without a comparator: pass through unchanged.
		return term, nil
	}
	return translateXRange(op, p)
}

func splitLeadingComparator(term string) (op, rest string) {
	for _, candidate := range []string{">=", "<=", ">", "<", "="} {
		if strings.HasPrefix(term, candidate) {
			return candidate, strings.TrimSpace(term[len(candidate):])
		}
	}
	return "", term
}

// translateCaret implements the caret pass: preserves the left-most
// non-zero component.
func translateCaret(rest string) (string, error) {
	p, ok := parsePartial(rest)
	if !ok {
		return "", fmt.Errorf("npm: invalid caret range %q", "^"+rest)
	}
	major := atoiOr(p.major, 0)
	minor := atoiOr(p.minor, 0)
	patch := atoiOr(p.patch, 0)
	lower := fmt.Sprintf(">=%s", fullVersion(major, minor, patch, p.pre))
	var upper string
	switch {
	case p.major == "" || major != 0:
		upper = fmt.Sprintf("<%s", fullVersion(major+1, 0, 0, "0"))
	case p.minor == "":
		upper = fmt.Sprintf("<%s", fullVersion(0, 1, 0, "0"))
	case minor != 0:
		upper = fmt.Sprintf("<%s", fullVersion(0, minor+1, 0, "0"))
	default:
		upper = fmt.Sprintf("<%s", fullVersion(0, 0, patch+1, "0"))
	}
	return lower + " " + upper, nil
}

// translateTilde implements the tilde pass: locks the major.minor pair
// when a minor is specified, otherwise locks just the major.
func translateTilde(rest string) (string, error) {
	p, ok := parsePartial(rest)
	if !ok {
		return "", fmt.Errorf("npm: invalid tilde range %q", "~"+rest)
	}
	major := atoiOr(p.major, 0)
	minor := atoiOr(p.minor, 0)
	patch := atoiOr(p.patch, 0)
	lower := fmt.Sprintf(">=%s", fullVersion(major, minor, patch, p.pre))
	var upper string
	switch {
	case p.minor == "":
		upper = fmt.Sprintf("<%s", fullVersion(major+1, 0, 0, "0"))
	default:
		upper = fmt.Sprintf("<%s", fullVersion(major, minor+1, 0, "0"))
	}
	return lower + " " + upper, nil
}

// translateXRange implements the X-range pass, optionally honoring a
// leading comparator that was stripped by the caller.
func translateXRange(op string, p partial) (string, error) {
	major := atoiOr(p.major, 0)
	minor := atoiOr(p.minor, 0)

	switch op {
	case "", "=":
		switch {
		case p.major == "":
			return ">=0.0.0", nil
		case p.minor == "":
			return fmt.Sprintf(">=%s <%s", fullVersion(major, 0, 0, ""), fullVersion(major+1, 0, 0, "0")), nil
		default: // patch is the wildcard.
			return fmt.Sprintf(">=%s <%s", fullVersion(major, minor, 0, ""), fullVersion(major, minor+1, 0, "0")), nil
		}
	case ">=":
		switch {
		case p.major == "":
			return ">=0.0.0", nil
		case p.minor == "":
			return fmt.Sprintf(">=%s", fullVersion(major, 0, 0, "")), nil
		default:
			return fmt.Sprintf(">=%s", fullVersion(major, minor, 0, "")), nil
		}
	case ">":
		switch {
		case p.major == "":
			return "<0.0.0-0", nil // nothing satisfies ">*"
		case p.minor == "":
			return fmt.Sprintf(">=%s", fullVersion(major+1, 0, 0, "0")), nil
		default:
			return fmt.Sprintf(">=%s", fullVersion(major, minor+1, 0, "0")), nil
		}
	case "<=":
		switch {
		case p.major == "":
			return ">=0.0.0", nil
		case p.minor == "":
			return fmt.Sprintf("<%s", fullVersion(major+1, 0, 0, "0")), nil
		default:
			return fmt.Sprintf("<%s", fullVersion(major, minor+1, 0, "0")), nil
		}
	case "<":
		switch {
		case p.major == "":
			return "<0.0.0-0", nil
		case p.minor == "":
			return fmt.Sprintf("<%s", fullVersion(major, 0, 0, "0")), nil
		default:
			return fmt.Sprintf("<%s", fullVersion(major, minor, 0, "0")), nil
		}
	default:
		return "", fmt.Errorf("npm: unsupported comparator %q in X-range", op)
	}
}
