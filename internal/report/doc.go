// Package report formats the plain-text piece usage report: summary totals
// followed by one row per used color, sorted by descending piece count.
package report
