package main

import (
	"os"

	"github.com/routesim/gaorex/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
