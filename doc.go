// Package prefixcode builds binary prefix codes for a finite alphabet from
// per-symbol weights, using either Shannon-Fano partitioning or Huffman
// merging.  The result is a CodeTable mapping each symbol to its Code.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Shannon%E2%80%93Fano_coding>
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
package prefixcode
