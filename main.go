package main

import (
	"github.com/soxt/soxt/cmd"
)

func main() {
	cmd.Execute()
}
