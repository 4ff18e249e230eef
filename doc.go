// Package wproj implements the convolutional resampling kernel of
// radio-interferometry imaging: gridding (scattering irregularly sampled
// visibilities onto a uniform grid) and degridding (gathering grid values
// back to the sample positions), with a precomputed, oversampled
// w-projection convolution function correcting for non-coplanar baselines.
//
// The package is organised around four pieces:
//
//   - ConvFunc: the oversampled convolution-function lookup table,
//     built once per configuration and immutable afterwards.
//   - Offsets: per (sample, channel) grid anchors and flattened
//     convolution-table offsets, built once per dataset.
//   - GridSerial / GridParallel: the scatter kernels. The parallel
//     variant partitions grid rows across workers by the sample's iv
//     coordinate so that no two workers ever write the same cell,
//     without locks or atomics on the hot path.
//   - DegridSerial / DegridParallel: the gather kernels. Degridding is
//     embarrassingly parallel; samples are distributed dynamically.
//
// The innermost scaled-accumulate and dot-product loops are pluggable
// through VectorBackend, with a pure-loop default and a gonum BLAS
// implementation. Substituting one for the other changes results only
// within floating-point rounding.
//
// Coordinates and frequencies are float64; grid, convolution-function and
// visibility values are complex64.
package wproj
