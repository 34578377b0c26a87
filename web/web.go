package web

import (
	"embed"
	"io/fs"
)

// content holds the HTML templates and the static assets they reference
//
//go:embed templates static
var content embed.FS

// GetTemplatesFS returns the embedded templates rooted at templates/
func GetTemplatesFS() fs.FS {
	return mustSub("templates")
}

// GetStaticFS returns the embedded static files rooted at static/
func GetStaticFS() fs.FS {
	return mustSub("static")
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(content, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
