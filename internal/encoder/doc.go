// Package encoder writes decoded images to disk in the output formats of
// the registry. PNG and JPEG use the standard library, WebP goes through
// libwebp (kolesa-team/go-webp) and AVIF through libheif's AV1 path.
//
// Every write lands in a uniquely named temp file next to the destination
// and is renamed into place only after the encoder succeeds, so a crashed
// or interrupted run never leaves a truncated file under the final name.
package encoder
