package repl

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/oden/lang"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"clear", "edit", "export", "help", "list", "quit", "reset"}

// isWordBoundary reports whether r separates completion words: whitespace,
// the method dot and the punctuation of the language.
func isWordBoundary(r rune) bool {
	switch r {
	case '.', ' ', '\t', '(', ')', ',', '=', ':', '+', '-', '*', '/':
		return true
	}

	return false
}

// wordBounds returns the word around cursor and its byte offsets. The word
// is empty when the cursor sits on a boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(max(cursor, 0), len(input))

	for start = cursor; start > 0; {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	for end = cursor; end < len(input); {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// receiverText returns the expression whose method chain ends at the dot
// at byte offset dot, such as "part.add(Cube(1mm))" for the input
// "x = part.add(Cube(1mm)).mo" and the last dot.
func receiverText(input string, dot int) string {
	depth := 0

	for i := dot; i > 0; {
		r, size := utf8.DecodeLastRuneInString(input[:i])

		switch {
		case r == ')':
			depth++
		case r == '(':
			if depth == 0 {
				return strings.TrimSpace(input[i:dot])
			}

			depth--
		case depth == 0 && r != '.' && isWordBoundary(r):
			return strings.TrimSpace(input[i:dot])
		}

		i -= size
	}

	return strings.TrimSpace(input[:dot])
}

// receiverValue evaluates text against env without changing it.
func receiverValue(env *lang.Environment, text string) (lang.Value, bool) {
	if text == "" {
		return lang.Value{}, false
	}

	toks, err := lang.Tokenize(lang.NewSource("", text))
	if err != nil {
		return lang.Value{}, false
	}

	e, err := lang.ParseExpr(toks)
	if err != nil {
		return lang.Value{}, false
	}

	v, err := env.Evaluate(e)
	if err != nil {
		return lang.Value{}, false
	}

	return v, true
}

// memberNames lists the names reachable with method syntax on v.
func memberNames(v lang.Value) []string {
	if v.Kind() == lang.KindType {
		return v.Builtin().Attributes()
	}

	var names []string

	for _, m := range lang.Methods(v.Kind()) {
		if !slices.Contains(names, m.Name) {
			names = append(names, m.Name)
		}
	}

	return names
}

// candidates returns the completions for the word starting at wordStart:
// the members of the receiver after a dot, or every binding otherwise.
func candidates(env *lang.Environment, input string, wordStart int) (names []string, member bool) {
	if wordStart > 0 && input[wordStart-1] == '.' {
		v, ok := receiverValue(env, receiverText(input, wordStart-1))
		if !ok {
			return nil, true
		}

		return memberNames(v), true
	}

	return env.Names(), false
}

// computeMatches ranks the candidates for the word at the cursor. An empty
// word only yields matches after a dot, where every member is offered.
func (m model) computeMatches() (matches fuzzy.Matches, wordStart, wordEnd int) {
	input := m.input.Value()
	word, wordStart, wordEnd := wordBounds(input, m.input.Position())

	var (
		names  []string
		member bool
	)

	if m.mode == modeCtrl {
		names = ctrlCommands
	} else {
		names, member = candidates(m.env, input, wordStart)
	}

	switch {
	case len(names) == 0:
		return nil, wordStart, wordEnd

	case word == "" && member:
		matches = make(fuzzy.Matches, len(names))
		for i, name := range names {
			matches[i] = fuzzy.Match{Str: name, Index: i}
		}

		return matches, wordStart, wordEnd

	case word == "":
		return nil, wordStart, wordEnd
	}

	return fuzzy.Find(word, names), wordStart, wordEnd
}

// renderCandidateBar renders the matches on one line, truncated with an
// ellipsis to fit width.
func renderCandidateBar(matches fuzzy.Matches, selected int, cycling bool, width int) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	ellipsis := hintStyle.Render("...")
	reserve := lipgloss.Width(sep) + lipgloss.Width(ellipsis)

	var (
		b    strings.Builder
		used int
	)

	for i, match := range matches {
		item := renderCandidate(match, cycling && i == selected)
		w := lipgloss.Width(item)

		if i > 0 {
			w += lipgloss.Width(sep)

			if i < len(matches)-1 && used+w+reserve > width {
				b.WriteString(sep + ellipsis)

				break
			}

			b.WriteString(sep)
		}

		b.WriteString(item)

		used += w
	}

	return b.String()
}

// renderCandidate renders match with its matched runes emphasized.
func renderCandidate(match fuzzy.Match, selected bool) string {
	base, strong := suggestionStyle, suggestionStyle.Bold(true)
	if selected {
		base, strong = selectedStyle, selectedStyle.Bold(true)
	}

	var b strings.Builder

	for i, r := range match.Str {
		if slices.Contains(match.MatchedIndexes, i) {
			b.WriteString(strong.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	return b.String()
}
