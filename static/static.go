// Package static holds the preview page served at the web root.
package static

import "embed"

//go:embed index.html style.css marker.svg
var FS embed.FS
