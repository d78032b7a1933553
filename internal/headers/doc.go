// Package headers exposes request headers to endpoint logic in two views:
// a deduplicated, case-insensitive lookup and the raw sequence of header
// lines as received, one pair per line.
package headers
