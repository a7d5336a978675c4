// Package http provides the HTTP client used to fetch incident log pages.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Non-200 responses reported as errors
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	// Fetch HTML page
//	html, err := client.GetString(ctx, "https://police.gatech.edu/crimelog?month=8&year=2026")
package http
