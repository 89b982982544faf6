// cmd/csv2fasta/main.go
package main

import (
	"csv2fasta/internal/app"
	"csv2fasta/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
