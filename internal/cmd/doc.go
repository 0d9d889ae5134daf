// Package cmd provides helpers for executing external commands with
// stderr capture and verbose logging.
package cmd
