package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/oden/lang"
)

var (
	signatureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	signatureNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)
	currentParamStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)
)

// callSite is the call whose argument list contains the cursor.
type callSite struct {
	name     string
	dot      int // offset of the method dot, or -1 for a constructor call
	argIndex int
	inCall   bool
}

func isIdentRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// detectCall finds the innermost unclosed parenthesis before cursor and
// the identifier in front of it.
func detectCall(input string, cursor int) callSite {
	cursor = min(max(cursor, 0), len(input))

	open, depth := -1, 0

	for i := cursor - 1; i >= 0 && open < 0; i-- {
		switch input[i] {
		case ')':
			depth++
		case '(':
			if depth == 0 {
				open = i
			} else {
				depth--
			}
		}
	}

	if open < 0 {
		return callSite{dot: -1}
	}

	start := open
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if !isIdentRune(r) {
			break
		}

		start -= size
	}

	name := input[start:open]
	if name == "" {
		return callSite{dot: -1}
	}

	site := callSite{name: name, dot: -1, inCall: true}

	if start > 0 && input[start-1] == '.' {
		site.dot = start - 1
	}

	depth = 0

	for _, r := range input[open+1 : cursor] {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				site.argIndex++
			}
		}
	}

	return site
}

// hint is the signature shown while typing arguments.
type hint struct {
	name   string
	params []string
	result string
}

// signatureFor resolves the signature of site against env. A method with
// several overloads shows the first one that accepts the current argument.
func signatureFor(env *lang.Environment, input string, site callSite) (hint, bool) {
	if !site.inCall {
		return hint{}, false
	}

	if site.dot < 0 {
		v, ok := env.Get(site.name)
		if !ok || v.Kind() != lang.KindType || !v.Builtin().Callable() {
			return hint{}, false
		}

		b := v.Builtin()

		return hint{name: b.Name, params: kindNames(b.Params), result: b.Result.String()}, true
	}

	recv, ok := receiverValue(env, receiverText(input, site.dot))
	if !ok {
		return hint{}, false
	}

	if recv.Kind() == lang.KindType {
		b := recv.Builtin()
		for _, attr := range b.Attributes() {
			if attr == site.name {
				return hint{name: b.Name + "." + attr, result: b.Result.String()}, true
			}
		}

		return hint{}, false
	}

	var (
		found  bool
		chosen lang.MethodInfo
	)

	for _, m := range lang.Methods(recv.Kind()) {
		if m.Name != site.name {
			continue
		}

		if !found || (len(chosen.Params) <= site.argIndex && len(m.Params) > site.argIndex) {
			chosen, found = m, true
		}
	}

	if !found {
		return hint{}, false
	}

	return hint{name: chosen.Name, params: kindNames(chosen.Params), result: chosen.Result.String()}, true
}

func kindNames(kinds []lang.Kind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	return names
}

// render formats h with the parameter at argIndex highlighted.
func (h hint) render(argIndex int) string {
	var b strings.Builder

	b.WriteString(signatureNameStyle.Render(h.name))
	b.WriteString(signatureStyle.Render("("))

	for i, p := range h.params {
		if i > 0 {
			b.WriteString(signatureStyle.Render(", "))
		}

		if i == argIndex {
			b.WriteString(currentParamStyle.Render(p))
		} else {
			b.WriteString(signatureStyle.Render(p))
		}
	}

	b.WriteString(signatureStyle.Render(") " + h.result))

	return b.String()
}

// String is the unstyled form of h.
func (h hint) String() string {
	return h.name + "(" + strings.Join(h.params, ", ") + ") " + h.result
}
