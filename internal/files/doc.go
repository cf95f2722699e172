// Package files discovers occurrence export files (tab-separated and Excel)
// under the configured data directory.
package files
