package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardnew/calltrace/aspect"
	"github.com/ardnew/calltrace/log"
)

// defaultDirMode is the permission mode for created directories.
const defaultDirMode os.FileMode = 0o700

// Init writes the built-in attachments as a YAML document.
type Init struct {
	Force  bool   `help:"Overwrite an existing attachment document" short:"f"`
	Output string `default:"${attach}"                             help:"Output file" short:"o" type:"path"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	_, err = os.Stat(i.Output)
	if err == nil && !i.Force {
		return ErrWriteAttach.
			With(slog.String("file", i.Output)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	err = os.MkdirAll(filepath.Dir(i.Output), defaultDirMode)
	if err != nil {
		return ErrWriteAttach.With(slog.String("file", i.Output)).Wrap(err)
	}

	file, err := os.Create(i.Output)
	if err != nil {
		return ErrWriteAttach.With(slog.String("file", i.Output)).Wrap(err)
	}

	err = dumpAndClose(DefaultRegistry(), file)
	if err != nil {
		return ErrWriteAttach.With(slog.String("file", i.Output)).Wrap(err)
	}

	log.DebugContext(ctx, "initialized attachment document",
		slog.String("path", i.Output))

	return nil
}

// dumpAndClose writes reg to wc and closes it. A failed close is reported
// even when the dump succeeded.
func dumpAndClose(reg *aspect.Registry, wc io.WriteCloser) (err error) {
	defer func() {
		err = errors.Join(err, wc.Close())
	}()

	return reg.Dump(wc)
}
