package config

import (
	"github.com/spf13/pflag"

	"github.com/cristianadrielbraun/qrgen/internal/qr"
)

// RegisterFlags adds one flag per config key to fs. Flag names are the
// koanf keys themselves, so Load can read them with posflag directly.
// Flag defaults only apply when no other source sets the key.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("server.listen", ":8080", "address to listen on")
	fs.Bool("server.dev_mode", false, "enable development mode (text logs, debug level)")
	fs.Int64("server.max_body_bytes", 1<<20, "maximum request body size in bytes")
	fs.String("logging.level", "info", "log level (debug, info, warn, error)")
	fs.String("logging.format", "json", "log format (json, text)")
	fs.String("qr.engine", qr.DefaultEngine, "qr encoder engine (yeqown, skip2)")
}
