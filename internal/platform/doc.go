package platform

// Package platform contains OS integration helpers: download directory
// resolution, directory creation, revealing and opening files, and safe
// filename prediction for the overwrite guard.
