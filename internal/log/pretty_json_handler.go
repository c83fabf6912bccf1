package log

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
)

type PrettyJSONHandlerOptions struct {
	slog.HandlerOptions
	PrettyPrint bool
}

// NewPrettyJSONHandler returns a JSON handler that indents every record if PrettyPrint is set. It
// is meant for reading logs of the CLI and local runs.
func NewPrettyJSONHandler(w io.Writer, opts *PrettyJSONHandlerOptions) slog.Handler {
	if opts == nil {
		opts = &PrettyJSONHandlerOptions{}
	}

	if !opts.PrettyPrint {
		return slog.NewJSONHandler(w, &opts.HandlerOptions)
	}

	buf := &bytes.Buffer{}
	return &prettyHandler{
		Handler: slog.NewJSONHandler(buf, &opts.HandlerOptions),
		mu:      &sync.Mutex{},
		buf:     buf,
		writer:  w,
	}
}

// prettyHandler renders records into buf and writes an indented copy of it. Handlers derived
// through WithAttrs and WithGroup share buf and mu.
type prettyHandler struct {
	slog.Handler
	mu     *sync.Mutex
	buf    *bytes.Buffer
	writer io.Writer
}

func (h *prettyHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.Reset()
	if err := h.Handler.Handle(ctx, r); err != nil {
		return err
	}

	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, h.buf.Bytes(), "", "  "); err != nil {
		return err
	}

	_, err := h.writer.Write(prettyJSON.Bytes())
	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyHandler{Handler: h.Handler.WithAttrs(attrs), mu: h.mu, buf: h.buf, writer: h.writer}
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	return &prettyHandler{Handler: h.Handler.WithGroup(name), mu: h.mu, buf: h.buf, writer: h.writer}
}
