// Package consolesink provides a sink that writes formatted lines to an
// output stream (default: os.Stdout), flushing after every line.
package consolesink
