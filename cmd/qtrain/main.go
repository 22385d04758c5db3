package main

import (
	"fmt"

	"github.com/zeu5/qtrain/examples"
)

// main entry point to the example tasks
func main() {
	rootCommand := examples.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}
