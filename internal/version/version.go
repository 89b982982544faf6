// internal/version/version.go
package version

// Version is overridden at build time with -ldflags "-X csv2fasta/internal/version.Version=...".
var Version = "dev"
