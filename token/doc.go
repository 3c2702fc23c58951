// Package token turns raw XML bytes into lexical events.
//
// # Usage
//
//	src := token.NewSource(d)
//	for {
//	    ev, err := src.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    // ev.Type is TStart, TText, TCData or TEnd
//	}
//
// Events arrive in document order with standard entity references
// already decoded and self-closing elements already expanded to a
// start/end pair. Comments, processing instructions and DOCTYPE
// declarations are skipped. The source is lenient throughout: malformed
// markup is skipped rather than reported, so Next only ever fails with
// io.EOF.
//
// # Related Packages
//
//   - github.com/signadot/xj/parse - Builds value trees from events
package token
