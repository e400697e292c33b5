// cmd/mpnn-bias/main.go
package main

import (
	"mpnnbias/internal/appshell"
	"mpnnbias/internal/biasapp"
)

func main() { appshell.Main(biasapp.RunContext) }
