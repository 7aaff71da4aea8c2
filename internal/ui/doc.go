package ui

// Package ui contains the Fyne-based desktop user interface for the grapher.
// It wires the expression entry and the Plot/Clear buttons to the plot
// service, paints scenes on the graph canvas, and exposes export, history
// and settings. Window and dialog texts come from Localization.
