// Package report renders benchmark results: the console score table, a CSV
// of per-file results, an HTML bar chart and an output directory holding
// all of them.
package report
