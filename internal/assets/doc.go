// Package assets provides the resume content and print stylesheet compiled
// into the binary.
//
// # Layout
//
//	styles/
//	└── {name}.css    # print stylesheets (e.g. resume.css)
//	content/
//	└── {name}.yaml   # document content and style tables (e.g. resume.yaml)
//
// Assets are loaded by name, without extension. Names are validated so they
// cannot escape their directory.
package assets
