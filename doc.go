// Package rounded provides the parameter model, validator and material
// synchronizer of a rounded-rectangle UI element.
//
// # Overview
//
// An [Image] decorates a host [Surface]. It stores the element's corner
// radii, softness, stroke, outline, fill and tint, keeps them legal for the
// surface's current extent, and pushes them to a shader through a
// material.Sink as named uniform writes.
//
// # Quick Start
//
//	import (
//	    rounded "github.com/gogpu/gg-rounded"
//	    "github.com/gogpu/gg-rounded/material"
//	)
//
//	surface := rounded.NewBasicSurface(200, 80)
//	rec := &material.Recorder{}
//	img, err := rounded.New(surface, rec)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	img.SetAllRadii(12)
//	img.SetOutlineEnabled(true)
//
// # Validation
//
// Every radius, the stroke and the outline width are clamped to
// [0, min(width, height)/2]; softness is clamped to [0, min(width, height)].
// Out-of-range input is never rejected. While either side of the extent is
// below [Epsilon] clamping is suspended and stored values pass through
// unchanged until the surface has a usable size.
//
// # Variants
//
// Shader contracts differ in the uniforms they read and in how they pack the
// four radii. [ImageVariant], [StrokeVariant] and [LayeredVariant] describe
// the built-in contracts; [Sync] produces the ordered writes for any of them.
//
// # Persistence
//
// [State] is the YAML form of the parameters. [UnmarshalState] migrates
// legacy field names through the table returned by [Migrations].
//
// # Coordinate System
//
// Radii are in the same units as the extent. Corners are named from the
// element's point of view: top-left is the origin corner of a Y-down layout.
package rounded
