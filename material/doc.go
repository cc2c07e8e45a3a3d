// Package material defines the uniform write contract between a rounded
// element and whatever holds its shader parameters.
//
// A [Sink] accepts named vector, float, color and texture writes. The
// rounded package produces an ordered []Uniform for every update and hands
// it to [Apply]. Three sinks ship with the package:
//
//   - [Block] packs the frozen std140 layout used by the WGSL contract in
//     github.com/gogpu/gg-rounded/gpu.
//   - [Recorder] captures every write, for tests and inspection tools.
//   - [Multi] fans writes out to several sinks.
//
// Sinks must ignore uniform names they do not know.
package material
