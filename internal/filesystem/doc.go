// Package filesystem adapts operating system path primitives for the finder.
package filesystem
