// Package sqlfile writes generated statements to a file.
package sqlfile

import (
	"bufio"
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Writer replaces the file at Path with the statements, each followed by a
// blank line. The content goes to a temporary file in the same directory
// first, so a failed write leaves any previous file untouched.
type Writer struct {
	Path string
}

func (w *Writer) Write(ctx context.Context, statements []string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(w.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "mkdir %s", dir)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(w.Path)+".*")
	if err != nil {
		return errors.Wrapf(err, "create temp file in %s", dir)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	for _, s := range statements {
		if _, err := bw.WriteString(s); err != nil {
			return errors.Wrap(err, "write statement")
		}
		if _, err := bw.WriteString("\n\n"); err != nil {
			return errors.Wrap(err, "write statement")
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "flush")
	}
	if err := tmp.Chmod(0o644); err != nil {
		return errors.Wrapf(err, "chmod %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmp.Name())
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), w.Path); err != nil {
		return errors.Wrapf(err, "rename to %s", w.Path)
	}
	return nil
}
