// Package web holds the embedded dashboard page assets.
package web

import "embed"

//go:embed dashboard.html
var Files embed.FS
