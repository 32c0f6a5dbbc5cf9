// Package mda reads and writes MDA array files: a compact,
// self-describing binary container for dense multi-dimensional numeric
// arrays, as used for multichannel time-series and similar measurement
// data.
//
// # File layout
//
// Every value is little-endian:
//
//	[int32 element type code]
//	[int32 bytes per entry]
//	[int32 signed dimension count]    negative means 8-byte dimensions
//	[dimension count x int32|int64 dimension sizes]
//	[raw element data, column-major order]
//
// The data region is laid out with the first dimension varying fastest
// (column-major order), so the flat index of element (i1, i2, i3) is
// i1 + N1*i2 + N1*N2*i3. The header length is never stored; it follows
// from the dimension count and encoding width.
//
// Whole files are handled by ReadFile and WriteFile. Reader serves
// bounded chunk reads against local files, HTTP(S) URLs, or any Source
// without loading the full array. Writer fills a fixed-shape file chunk
// by chunk, and Append grows an existing file along its final
// dimension.
package mda
