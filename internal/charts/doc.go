// Package charts renders the exploratory and narrative figures from a
// cleaned occurrence dataset: temporal trends, categorical breakdowns,
// geographic scatter plots (static PNG) and an interactive HTML species map.
// File names are deterministic, derived from the figure and its parameters.
package charts
