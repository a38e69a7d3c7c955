package lang

import (
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// Source is the text of one compilation unit. Every [Span] derived from it
// points back to the same Source.
type Source struct {
	Path string
	Text string
}

// NewSource returns a Source for text read from path. path may be empty.
func NewSource(path, text string) *Source {
	return &Source{Path: path, Text: text}
}

// ReadSource reads the file at path, or standard input when path is "-" or
// empty. Failure is reported as a FileNotFound error.
func ReadSource(path string) (*Source, error) {
	var r io.Reader = os.Stdin

	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errPath(FileNotFound, path, err)
		}
		defer f.Close()

		r = f
	}

	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, errPath(FileNotFound, path, err)
	}

	return NewSource(path, string(data)), nil
}

// Hash returns a short digest of the source text. Equal texts have equal
// hashes regardless of path.
func (s *Source) Hash() string {
	if s == nil {
		return ""
	}

	return strconv.FormatUint(xxh3.HashString(s.Text), 36)
}

// Name returns the path of s, or "<input>" when it has none.
func (s *Source) Name() string {
	if s == nil || s.Path == "" || s.Path == "-" {
		return "<input>"
	}

	return s.Path
}

// Span is a half-open byte range [Start, End) of a [Source].
type Span struct {
	Source *Source
	Start  int
	End    int
}

// NewSpan returns the span [start, end) of src.
func NewSpan(start, end int, src *Source) Span {
	return Span{Source: src, Start: start, End: end}
}

// Merge returns the smallest span covering both s and t.
func (s Span) Merge(t Span) Span {
	src := s.Source
	if src == nil {
		src = t.Source
	}

	return Span{Source: src, Start: min(s.Start, t.Start), End: max(s.End, t.End)}
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int { return s.End - s.Start }

// Text returns the source text covered by s.
func (s Span) Text() string {
	if s.Source == nil || s.Start < 0 || s.End > len(s.Source.Text) || s.Start > s.End {
		return ""
	}

	return s.Source.Text[s.Start:s.End]
}

// Position returns the one-based line and column of the start of s.
// Columns count runes.
func (s Span) Position() (line, col int) {
	if s.Source == nil {
		return 0, 0
	}

	head := s.Source.Text[:min(max(s.Start, 0), len(s.Source.Text))]
	line = 1 + strings.Count(head, "\n")
	col = 1 + utf8.RuneCountInString(head[strings.LastIndexByte(head, '\n')+1:])

	return line, col
}

// indent returns the text of the line before s with every rune except tab
// replaced by a space, so that it aligns with s when printed under it.
func (s Span) indent() string {
	if s.Source == nil {
		return ""
	}

	head := s.Source.Text[:min(max(s.Start, 0), len(s.Source.Text))]
	head = head[strings.LastIndexByte(head, '\n')+1:]

	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return r
		}

		return ' '
	}, head)
}

// Lines returns the one-based numbers of the first and last line touched
// by s.
func (s Span) Lines() (first, last int) {
	first, _ = s.Position()
	last = first + strings.Count(s.Text(), "\n")

	// A span ending right after a line break does not touch the next line.
	if last > first && strings.HasSuffix(s.Text(), "\n") {
		last--
	}

	return first, last
}

func (s Span) String() string {
	if s.Source == nil {
		return strconv.Itoa(s.Start) + ".." + strconv.Itoa(s.End)
	}

	line, col := s.Position()

	return s.Source.Name() + ":" + strconv.Itoa(line) + ":" + strconv.Itoa(col)
}

// spanOf returns the span covering every token in toks.
func spanOf(toks []Token) Span {
	if len(toks) == 0 {
		return Span{}
	}

	return toks[0].Span.Merge(toks[len(toks)-1].Span)
}
