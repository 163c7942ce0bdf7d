// Package format renders sentences in one of several styles.
//
// # Usage
//
//	// render with a named style
//	text, err := format.Spec(s, "unicode")
//
//	// or with a parsed Style
//	text := format.Sentence(s, format.ColorStyle)
//
// Every style renders the same tokens in the same order as the plain style;
// styles only change how individual tokens look.
package format
