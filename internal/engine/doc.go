package engine

// Package engine adapts the github.com/ytget/ytdlp/v2 downloading library to
// the application's domain model. It owns format filtering and descriptor
// mapping; everything below (extraction, transport, muxing) belongs to the
// library and is treated as opaque.
