package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// prettyStyle holds the styles of a pretty handler.
// Colors degrade to plain text when the writer is not a terminal.
type prettyStyle struct {
	key, msg, str, num, dur, tim, src lipgloss.Style
	yes, no                           lipgloss.Style
	level                             map[slog.Level]lipgloss.Style
}

func makePrettyStyle(w io.Writer) prettyStyle {
	r := lipgloss.NewRenderer(w)
	color := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return prettyStyle{
		key: color("8"),
		msg: r.NewStyle().Bold(true),
		str: color("6"),
		num: color("3"),
		dur: color("5"),
		tim: color("4"),
		src: color("8").Italic(true),
		yes: color("2"),
		no:  color("1"),
		level: map[slog.Level]lipgloss.Style{
			slog.Level(LevelTrace): color("8"),
			slog.LevelDebug:        color("4"),
			slog.LevelInfo:         color("2"),
			slog.LevelWarn:         color("3").Bold(true),
			slog.LevelError:        color("1").Bold(true),
		},
	}
}

func (s prettyStyle) forLevel(level slog.Level) lipgloss.Style {
	switch {
	case level >= slog.LevelError:
		return s.level[slog.LevelError]
	case level >= slog.LevelWarn:
		return s.level[slog.LevelWarn]
	case level >= slog.LevelInfo:
		return s.level[slog.LevelInfo]
	case level >= slog.LevelDebug:
		return s.level[slog.LevelDebug]
	default:
		return s.level[slog.Level(LevelTrace)]
	}
}

// prettyHandler implements a colorized single-line text handler.
type prettyHandler struct {
	opts   slog.HandlerOptions
	style  prettyStyle
	mu     *sync.Mutex
	w      io.Writer
	attrs  []byte
	prefix string
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{
		opts:  *opts,
		style: makePrettyStyle(w),
		mu:    &sync.Mutex{},
		w:     w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeBuiltin(buf, slog.Time(slog.TimeKey, r.Time), h.style.tim)
	}

	h.writeBuiltin(
		buf,
		slog.Any(slog.LevelKey, r.Level),
		h.style.forLevel(r.Level),
	)

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeBuiltin(
				buf,
				slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)),
				h.style.src,
			)
		}
	}

	h.writeBuiltin(buf, slog.String(slog.MessageKey, r.Message), h.style.msg)

	buf.Write(h.attrs)

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	buf := bytes.NewBuffer(append([]byte(nil), h.attrs...))
	for _, a := range attrs {
		h.writeAttr(buf, h.prefix, a)
	}

	clone := *h
	clone.attrs = buf.Bytes()

	return &clone
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."

	return &clone
}

// writeBuiltin writes one of the record's own fields after ReplaceAttr.
func (h *prettyHandler) writeBuiltin(
	buf *bytes.Buffer,
	a slog.Attr,
	style lipgloss.Style,
) {
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}

	if a.Equal(slog.Attr{}) {
		return
	}

	h.writeKey(buf, a.Key)
	buf.WriteString(style.Render(a.Value.Resolve().String()))
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		group := prefix
		if a.Key != "" {
			group += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, group, ga)
		}

		return
	}

	h.writeKey(buf, prefix+a.Key)
	h.writeValue(buf, a.Value)
}

func (h *prettyHandler) writeKey(buf *bytes.Buffer, key string) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(h.style.key.Render(key))
	buf.WriteByte('=')
}

func (h *prettyHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindString:
		buf.WriteString(h.style.str.Render(v.String()))

	case slog.KindInt64:
		buf.WriteString(h.style.num.Render(strconv.FormatInt(v.Int64(), 10)))

	case slog.KindUint64:
		buf.WriteString(h.style.num.Render(strconv.FormatUint(v.Uint64(), 10)))

	case slog.KindFloat64:
		buf.WriteString(
			h.style.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64)),
		)

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(h.style.yes.Render("true"))
		} else {
			buf.WriteString(h.style.no.Render("false"))
		}

	case slog.KindDuration:
		buf.WriteString(h.style.dur.Render(v.Duration().String()))

	case slog.KindTime:
		buf.WriteString(h.style.tim.Render(v.Time().String()))

	default:
		buf.WriteString(h.style.str.Render(v.String()))
	}
}
