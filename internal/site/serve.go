package site

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

// Serve runs a local file server over the site directory, for checking
// output before it deploys. Blocks until the listener fails.
func Serve(addr, dir string, log zerolog.Logger) error {
	log.Info().Str("addr", addr).Str("dir", dir).Msg("serving site")
	handler := http.FileServer(http.Dir(dir))
	if err := http.ListenAndServe(addr, handler); err != nil {
		return fmt.Errorf("serving %s: %w", dir, err)
	}
	return nil
}
