// Package main provides the brahmsync CLI application.
// brahmsync pushes BRAHMS botanical-collection exports to the garden
// website's REST API.
package main

import (
	"github.com/redbuttegarden/brahmsync/cmd"
)

func main() {
	cmd.Execute()
}
