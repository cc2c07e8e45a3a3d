// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import _ "embed"

//go:embed shaders/rounded.wgsl
var roundedShaderSource string

// ShaderSource returns the WGSL source of the rounded shader contract.
func ShaderSource() string { return roundedShaderSource }
