// Package shaders embeds the GLSL sources used by the tutorial programs.
package shaders

import "embed"

// FS holds every .vert and .frag file in this directory.
//
//go:embed *.vert *.frag
var FS embed.FS
