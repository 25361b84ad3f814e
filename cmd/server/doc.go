// Command server runs the WardFS HTTP server.
//
// Usage:
//
//	server [flags] DIR [DIR...]
//
// Each DIR becomes an allowed root; every tool invocation is confined to
// these directories. At least one directory is required.
package main
