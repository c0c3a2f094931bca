// Package theme holds colour palettes and the interpolation between them.
//
// A Theme answers one question: which colours belong to a level. The
// palettes may differ in length per level and per theme; the painter
// package walks them with a gradient cursor. Lerp is the only arithmetic
// here and is exact at both endpoints.
package theme
