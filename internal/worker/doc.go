package worker

// Package worker implements the background bridge between the UI and the
// downloading engine. It runs exactly one blocking probe or download at a time
// off the interaction thread and relays results, errors, and progress back
// through callbacks. Progress events for a job are delivered in emission
// order; the terminal callback always follows the last progress event.
