package ui

// Package ui contains the Fyne-based desktop interface: the root form (URL,
// destination, format list, progress), the settings dialog, and localization.
// It owns the controller state and talks to the worker bridge; all bridge
// callbacks are marshaled back onto the interaction thread with fyne.Do.
