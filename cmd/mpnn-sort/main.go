// cmd/mpnn-sort/main.go
package main

import (
	"mpnnbias/internal/appshell"
	"mpnnbias/internal/sortapp"
)

func main() { appshell.Main(sortapp.RunContext) }
