// Package analytics computes the summary aggregations consumed by the
// figure renderers: individuals per year and month, record counts, top
// categories, individual-count histograms and geographic point sets.
package analytics
