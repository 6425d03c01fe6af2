package inventory

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// WithInventoryFile renders the inventory to a temporary file and hands the
// open file to fn. The content is flushed and the read cursor rewound before
// fn runs. The file is closed and removed on every exit path, whether fn
// succeeds, fails or never reads.
func (b *Builder) WithInventoryFile(keys []string, fn func(file *os.File) error) error {
	text := b.BuildText(keys)

	file, err := os.CreateTemp(os.TempDir(), uuid.Must(uuid.NewV4()).String())
	if err != nil {
		return errors.Wrap(err, "failed to create temporary inventory file")
	}
	defer os.Remove(file.Name())
	defer file.Close()

	log.Debug("writing inventory to temp file", "path", file.Name())

	if _, err := file.WriteString(text); err != nil {
		return errors.Wrapf(err, "failed to write inventory to '%s'", file.Name())
	}
	if err := file.Sync(); err != nil {
		return errors.Wrapf(err, "failed to flush inventory to '%s'", file.Name())
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return errors.Wrapf(err, "failed to rewind inventory file '%s'", file.Name())
	}

	return fn(file)
}
