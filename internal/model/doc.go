package model

// Package model defines the data structures shared across the app: the
// viewport that maps data space onto the drawing surface, screen segments,
// and the plot records kept in the session history. Values are immutable
// once built so they can be handed to the UI without copying.
