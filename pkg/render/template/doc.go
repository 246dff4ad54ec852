// Package template defines the template engine seam markup renderers depend
// on, so layouts can be rendered by any engine that loads named templates and
// accepts filters and global data.
package template
