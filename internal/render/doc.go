// Package render draws a plot scene without a window: PNG output is
// rasterised with golang.org/x/image/vector, SVG output is written with
// github.com/ajstarks/svgo. Both share the Style palette used on screen.
package render
