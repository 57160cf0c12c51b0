package genfix

import (
	"fmt"
	"regexp"
	"strings"
)

// Marker is embedded in every generated binding comment. A file containing it
// anywhere is treated as already patched and never rewritten again.
const Marker = "genfix(generated-api)"

type Outcome int

const (
	Fixed Outcome = iota
	SkippedPatched
	SkippedNoMatch
)

func (o Outcome) String() string {
	switch o {
	case Fixed:
		return "fixed"
	case SkippedPatched:
		return "already patched"
	case SkippedNoMatch:
		return "no match"
	}
	return "unknown"
}

type RewriteResult struct {
	Text    string
	Outcome Outcome
}

func (r RewriteResult) Modified() bool { return r.Outcome == Fixed }

// importLineRe matches a whole import declaration line that pulls a brace list
// out of a _generated/api specifier, at any relative depth, with or without a
// file extension. Tolerates a leading `type` qualifier, either quote style, a
// trailing semicolon and trailing comment text.
var importLineRe = regexp.MustCompile(
	`(?m)^[ \t]*import[ \t]+(?:type[ \t]+)?\{([^}\n]*)\}[ \t]*from[ \t]*['"][^'"\n]*_generated/api(?:\.[A-Za-z]+)?['"][ \t]*;?[^\n]*$`)

var (
	internalNameRe = regexp.MustCompile(`\binternal\b`)
	apiNameRe      = regexp.MustCompile(`\bapi\b`)
)

// HasInternalImport reports whether text contains an import line binding
// `internal` from the generated api module.
func HasInternalImport(text string) bool { return hasBinding(text, internalNameRe) }

// HasAPIImport reports whether text contains an import line binding `api`
// from the generated api module.
func HasAPIImport(text string) bool { return hasBinding(text, apiNameRe) }

func hasBinding(text string, name *regexp.Regexp) bool {
	for _, m := range importLineRe.FindAllStringSubmatch(text, -1) {
		if name.MatchString(m[1]) {
			return true
		}
	}
	return false
}

func hasCombinedLine(text string) bool {
	for _, m := range importLineRe.FindAllStringSubmatch(text, -1) {
		if internalNameRe.MatchString(m[1]) && apiNameRe.MatchString(m[1]) {
			return true
		}
	}
	return false
}

// Rewrite transforms import declarations that bind `internal` and/or `api`
// from the generated api module into runtime require bindings against subPath.
// It is pure: the caller decides whether to persist the result.
//
// subPath must already be slash-normalized and carry a ./ or ../ prefix, see
// SubstitutionPath.
func Rewrite(text, subPath string) RewriteResult {
	if strings.Contains(text, Marker) {
		return RewriteResult{Text: text, Outcome: SkippedPatched}
	}

	if !HasInternalImport(text) && !HasAPIImport(text) {
		return RewriteResult{Text: text, Outcome: SkippedNoMatch}
	}

	// A line binding both names wins over separate single-name lines: when one
	// exists, only combined lines are rewritten.
	combined := hasCombinedLine(text)

	out := importLineRe.ReplaceAllStringFunc(text, func(line string) string {
		names := importLineRe.FindStringSubmatch(line)[1]
		bindsInternal := internalNameRe.MatchString(names)
		bindsAPI := apiNameRe.MatchString(names)

		if combined {
			if bindsInternal && bindsAPI {
				return renderBinding("internal", subPath) + "\n" + renderBinding("api", subPath)
			}
			return line
		}

		switch {
		case bindsInternal:
			return renderBinding("internal", subPath)
		case bindsAPI:
			return renderBinding("api", subPath)
		default:
			return line
		}
	})

	if out == text {
		return RewriteResult{Text: text, Outcome: SkippedNoMatch}
	}
	return RewriteResult{Text: out, Outcome: Fixed}
}

func renderBinding(name, subPath string) string {
	return fmt.Sprintf(
		"// %s: %s is bound at runtime; type-checking the generated api barrel stalls tsc.\n"+
			"// eslint-disable-next-line @typescript-eslint/no-var-requires\n"+
			"const %s = require('%s').%s as any;",
		Marker, name, name, subPath, name)
}
