// Package render defines the renderer contract for composed resume previews
// and a name-keyed registry the CLI and terminal shell pick renderers from.
package render
