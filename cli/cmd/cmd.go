package cmd

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/calltrace/aspect"
	"github.com/ardnew/calltrace/log"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the writer commands print to.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// defaultAttachPath returns the path of the default attachment document, or
// the empty string if none is configured.
func defaultAttachPath(ctx context.Context) string {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ""
	}

	return ktx.Model.Vars()[AttachIdentifier]
}

type attachFilesKey struct{}

// WithAttachFiles returns a new context.Context listing the attachment
// documents given on the command line.
func WithAttachFiles(ctx context.Context, paths []string) context.Context {
	return context.WithValue(ctx, attachFilesKey{}, paths)
}

func attachFilesFrom(ctx context.Context) []string {
	paths, _ := ctx.Value(attachFilesKey{}).([]string)

	return paths
}

// registryFrom builds the registry commands resolve against.
//
// Attachment documents named on the command line are loaded in order.
// Otherwise the default attachment document is loaded if it exists, and the
// built-in attachments are used if it does not.
func registryFrom(ctx context.Context) (*aspect.Registry, error) {
	paths := attachFilesFrom(ctx)

	if len(paths) == 0 {
		path := defaultAttachPath(ctx)
		if path == "" {
			return DefaultRegistry(), nil
		}

		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			log.DebugContext(ctx, "using built-in attachments",
				slog.String("missing", path))

			return DefaultRegistry(), nil
		}

		paths = []string{path}
	}

	reg := aspect.NewRegistry()

	for _, path := range paths {
		err := reg.LoadFile(path)
		if err != nil {
			return nil, ErrLoadAttach.Wrap(err).With(slog.String("file", path))
		}

		log.DebugContext(ctx, "loaded attachments", slog.String("file", path))
	}

	return reg, nil
}
