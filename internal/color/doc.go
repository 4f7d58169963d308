// Package color provides the terminal styles used when printing step tables.
//
// Styles are semantic rather than literal: comments, block headers, block
// members and muted cells each get their own style, and the palette adapts to
// the terminal background. Call Initialize once at startup; NO_COLOR or the
// --no-color flag switch styling off entirely.
//
// # Usage Example
//
//	color.Initialize(true)
//	fmt.Println(color.CommentStyle.Render("# this is a comment"))
package color
