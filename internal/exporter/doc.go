// Package exporter writes cleaned occurrence datasets to CSV files with a
// deterministic column order and UTF-8 BOM for Excel compatibility.
package exporter
