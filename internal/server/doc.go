// Package server wires the HTTP surface: submission endpoints, dashboard
// result endpoints, the spreadsheet export, and observability routes.
package server
