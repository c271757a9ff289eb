package main

import (
	"embed"
	"io/fs"
)

//go:embed assets/sprites/*.png assets/audio/*.wav
var assetsFS embed.FS

// embeddedAssets is the asset tree rooted so that names match the files
// under assets/.
func embeddedAssets() fs.FS {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
