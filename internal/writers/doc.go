// Package writers owns the output sink: stdout or a named file that is
// replaced only once the whole conversion has succeeded.
package writers
