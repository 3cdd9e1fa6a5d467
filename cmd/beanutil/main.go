package main

import (
	"os"

	"github.com/viant/beanutil/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
