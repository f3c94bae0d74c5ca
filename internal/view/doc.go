// Package view renders the SeismoWatch pages as templ components: the hero
// header, the feature grid, the live event board and the page shells that
// compose them.
//
// Components are plain templ.ComponentFunc values so the package needs no
// code generation step. All dynamic text passes through templ.EscapeString.
package view
