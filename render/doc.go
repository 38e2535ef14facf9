// Package render classifies visualization artifacts returned by the remote
// service and turns them into display instructions.
//
// An artifact is an opaque string. Its encoding is inferred from its prefix
// after surrounding whitespace is trimmed. Matching is case-sensitive and
// follows an ordered rule table where the first match wins:
//
//  1. "data:text/html"           -> [KindHTMLDataURI]
//  2. "<html" or "<!DOCTYPE"     -> [KindHTMLDocument]
//  3. "data:image"               -> [KindImageDataURI]
//  4. anything else              -> [KindUnsupported]
//
// The order is part of the contract: an HTML document that embeds a
// data:image URI further in is still an HTML document.
//
// # Instructions
//
// [Render] maps each kind to an [Instruction]:
//
//   - HTML data URIs become a frame whose source address is the URI.
//   - HTML documents become a frame whose inline document is the string.
//     A raw document is not a valid address, so it is never used as Src.
//   - Image data URIs become an image whose source address is the URI.
//   - Anything else becomes a fixed notice.
//
// The empty string is the absence state: Render reports false and nothing is
// displayed. Whitespace-only input is not absent; it yields the notice. [WriteHTML] and [WritePage] emit the instruction as HTML.
package render
