// Package logging provides structured JSON logging to a size-rotated file.
//
// Search results own stdout and user-facing errors own stderr, so log
// records never share either stream; they go to ~/.strmatch/logs by
// default, mirroring where the tool has always kept its run history.
package logging
