package imagefile

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
)

// Load reads an image file into memory.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// Save writes data to path, creating or truncating the file. A failure to
// close the file is reported alongside any write error.
func Save(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if e := f.Close(); e != nil {
			err = combineErrors(err, fmt.Errorf("closing %s: %w", path, e))
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func combineErrors(errors ...error) (err error) {
	for _, e := range errors {
		switch {
		case e == nil:
			// ignore
		case err == nil:
			err = e
		default:
			err = multierror.Append(err, e)
		}
	}
	return err
}
