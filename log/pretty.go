package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by the pretty handlers. Styles are bound to
// a renderer for the handler's output, so color is dropped automatically when
// the output is not a terminal.
type palette struct {
	key, str, num, dur, time, null lipgloss.Style
	yes, no                        lipgloss.Style
	trace, debug, info, warn, fail lipgloss.Style
	msg                            lipgloss.Style
}

func makePalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)

	return palette{
		key:   r.NewStyle().Foreground(lipgloss.Color("8")),
		str:   r.NewStyle().Foreground(lipgloss.Color("6")),
		num:   r.NewStyle().Foreground(lipgloss.Color("3")),
		dur:   r.NewStyle().Foreground(lipgloss.Color("5")),
		time:  r.NewStyle().Foreground(lipgloss.Color("4")),
		null:  r.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		yes:   r.NewStyle().Foreground(lipgloss.Color("2")),
		no:    r.NewStyle().Foreground(lipgloss.Color("1")),
		trace: r.NewStyle().Foreground(lipgloss.Color("8")),
		debug: r.NewStyle().Foreground(lipgloss.Color("4")),
		info:  r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		warn:  r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		fail:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		msg:   r.NewStyle().Bold(true),
	}
}

func (p palette) level(l slog.Level) string {
	name := strings.ToUpper(Level(l).String())

	switch {
	case l >= slog.LevelError:
		return p.fail.Render(name)
	case l >= slog.LevelWarn:
		return p.warn.Render(name)
	case l >= slog.LevelInfo:
		return p.info.Render(name)
	case l >= slog.LevelDebug:
		return p.debug.Render(name)
	default:
		return p.trace.Render(name)
	}
}

func (p palette) value(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return p.str.Render(v.String())
	case slog.KindInt64:
		return p.num.Render(strconv.FormatInt(v.Int64(), 10))
	case slog.KindUint64:
		return p.num.Render(strconv.FormatUint(v.Uint64(), 10))
	case slog.KindFloat64:
		return p.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))
	case slog.KindBool:
		if v.Bool() {
			return p.yes.Render("true")
		}

		return p.no.Render("false")
	case slog.KindDuration:
		return p.dur.Render(v.Duration().String())
	case slog.KindTime:
		return p.time.Render(v.Time().String())
	default:
		if v.Any() == nil {
			return p.null.Render("null")
		}

		if err, ok := v.Any().(error); ok {
			return p.no.Render(err.Error())
		}

		return p.str.Render(fmt.Sprint(v.Any()))
	}
}

// field is a flattened attribute: groups are joined into dotted keys.
type field struct {
	key   string
	value slog.Value
}

func flatten(prefix string, a slog.Attr, out []field) []field {
	v := a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return out
	}

	key := a.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if key == "" {
		key = prefix
	}

	if v.Kind() == slog.KindGroup {
		for _, sub := range v.Group() {
			out = flatten(key, sub, out)
		}

		return out
	}

	return append(out, field{key: key, value: v})
}

// common state shared by both pretty handlers.
type prettyBase struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	pal    palette
	attrs  []field
	prefix string
}

func (h *prettyBase) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

// replace runs the configured ReplaceAttr hook over a builtin attribute.
// The returned bool is false if the attribute was removed.
func (h *prettyBase) replace(a slog.Attr) (slog.Attr, bool) {
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}

	return a, !a.Equal(slog.Attr{})
}

func (h *prettyBase) fields(r slog.Record) []field {
	out := append([]field(nil), h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		out = flatten(h.prefix, a, out)

		return true
	})

	return out
}

func (h *prettyBase) source(r slog.Record) string {
	if !h.opts.AddSource {
		return ""
	}

	if src := r.Source(); src != nil && src.File != "" {
		return fmt.Sprintf("%s:%d", src.File, src.Line)
	}

	return ""
}

func (h *prettyBase) write(buf *bytes.Buffer) error {
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h prettyBase) withAttrs(attrs []slog.Attr) prettyBase {
	fields := append([]field(nil), h.attrs...)
	for _, a := range attrs {
		fields = flatten(h.prefix, a, fields)
	}

	h.attrs = fields

	return h
}

func (h prettyBase) withGroup(name string) prettyBase {
	if name == "" {
		return h
	}

	if h.prefix != "" {
		name = h.prefix + "." + name
	}

	h.prefix = name

	return h
}

// prettyTextHandler writes one styled line per record:
// time, level, message, then key=value pairs.
type prettyTextHandler struct{ prettyBase }

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{prettyBase{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
		pal:  makePalette(w),
	}}
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	sep := func() {
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
	}

	if !r.Time.IsZero() {
		if a, ok := h.replace(slog.Time(slog.TimeKey, r.Time)); ok {
			buf.WriteString(h.pal.key.Render(a.Value.String()))
		}
	}

	sep()
	buf.WriteString(h.pal.level(r.Level))

	if src := h.source(r); src != "" {
		sep()
		buf.WriteString(h.pal.key.Render(src))
	}

	sep()
	buf.WriteString(h.pal.msg.Render(r.Message))

	for _, f := range h.fields(r) {
		buf.WriteByte(' ')
		buf.WriteString(h.pal.key.Render(f.key + "="))
		buf.WriteString(h.pal.value(f.value))
	}

	return h.write(&buf)
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyTextHandler{h.withAttrs(attrs)}
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	return &prettyTextHandler{h.withGroup(name)}
}

// prettyJSONHandler writes each record as an indented JSON object.
type prettyJSONHandler struct{ prettyBase }

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyJSONHandler {
	return &prettyJSONHandler{prettyBase{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
		pal:  makePalette(w),
	}}
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	first := true
	put := func(key, val string) {
		if first {
			buf.WriteString("{\n")
		} else {
			buf.WriteString(",\n")
		}

		first = false

		buf.WriteString("  ")
		buf.WriteString(h.pal.key.Render(strconv.Quote(key)))
		buf.WriteString(": ")
		buf.WriteString(val)
	}

	if !r.Time.IsZero() {
		if a, ok := h.replace(slog.Time(slog.TimeKey, r.Time)); ok {
			put(slog.TimeKey, h.pal.time.Render(strconv.Quote(a.Value.String())))
		}
	}

	put(slog.LevelKey, h.pal.level(r.Level))

	if src := h.source(r); src != "" {
		put(slog.SourceKey, h.pal.str.Render(strconv.Quote(src)))
	}

	put(slog.MessageKey, h.pal.msg.Render(strconv.Quote(r.Message)))

	for _, f := range h.fields(r) {
		put(f.key, h.jsonValue(f.value))
	}

	buf.WriteString("\n}")

	return h.write(&buf)
}

func (h *prettyJSONHandler) jsonValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return h.pal.str.Render(strconv.Quote(v.String()))
	case slog.KindDuration, slog.KindTime:
		return h.pal.value(slog.StringValue(strconv.Quote(v.String())))
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return h.pal.no.Render(strconv.Quote(err.Error()))
		}

		b, err := json.Marshal(v.Any())
		if err != nil {
			return h.pal.str.Render(strconv.Quote(fmt.Sprint(v.Any())))
		}

		return h.pal.str.Render(string(b))
	default:
		return h.pal.value(v)
	}
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyJSONHandler{h.withAttrs(attrs)}
}

func (h *prettyJSONHandler) WithGroup(name string) slog.Handler {
	return &prettyJSONHandler{h.withGroup(name)}
}
