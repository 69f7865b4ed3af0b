package controls

import (
	"embed"
	"io/fs"
)

//go:embed ui/screens/*
var embeddedScreens embed.FS

// EmbeddedFS returns the bundled demo screens. Callers may pass this
// filesystem to LoadFS when no screen directory is configured.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedScreens, "ui/screens")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}
