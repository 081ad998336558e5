// twistycube - command-line cube simulator.
package main

import (
	"github.com/SeamusWaldron/twistycube/internal/cli"
)

func main() {
	cli.Execute()
}
