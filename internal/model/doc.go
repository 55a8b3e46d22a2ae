package model

// Package model defines domain data structures shared between the UI and the
// worker bridge: probed format descriptors, download requests, progress events,
// and the job status enum. Structures are plain values designed for direct
// rendering in the UI.
