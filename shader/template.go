// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	_ "embed"
	"strings"
)

//go:embed shaders/artwork.wgsl
var artworkWGSL string

// Entry points declared by the assembled module.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// Assemble returns the artwork module with r, g and b substituted as the
// red, green and blue channel expressions.
func Assemble(r, g, b string) string {
	return strings.NewReplacer("{{R}}", r, "{{G}}", g, "{{B}}", b).Replace(artworkWGSL)
}
