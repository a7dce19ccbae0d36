package shaders

import (
	_ "embed"
)

//go:embed burst_vertex.wgsl
var BurstVertexWGSL string

//go:embed burst_fragment.wgsl
var BurstFragmentWGSL string

// Entry points shared by the burst stages.
const (
	BurstVertexEntry   = "vs_main"
	BurstFragmentEntry = "fs_main"
)
