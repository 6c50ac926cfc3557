// Package probe inspects source files without decoding pixel data. A single
// read of the file header yields the sniffed MIME type, dimensions, and
// color model that the converter and the --analyze report rely on.
package probe
