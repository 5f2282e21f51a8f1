package cli

import (
	"io"
	"log"
	"os"
)

// newLogger builds the process logger. Messages go to stderr so they
// never interleave with the frame stream on stdout; when a log file is
// configured they are mirrored there too.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = io.MultiWriter(os.Stderr, f)
		closeFn = func() { _ = f.Close() }
	}

	return log.New(w, "", log.LstdFlags), closeFn, nil
}
