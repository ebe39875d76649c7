package codegen

import (
	"sync"

	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	minhtml "github.com/tdewolff/minify/v2/html"
)

const (
	mimeHTML = "text/html"
	mimeCSS  = "text/css"
)

var (
	minifier *minify.M
	once     sync.Once
)

// getMinifier returns the shared minifier.
func getMinifier() *minify.M {
	once.Do(func() {
		minifier = minify.New()
		minifier.AddFunc(mimeHTML, minhtml.Minify)
		minifier.AddFunc(mimeCSS, mincss.Minify)
	})
	return minifier
}

func minifyString(mime, s string) (string, error) {
	if s == "" {
		return s, nil
	}
	return getMinifier().String(mime, s)
}
