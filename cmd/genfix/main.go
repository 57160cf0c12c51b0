package main

import (
	"fmt"
	"os"

	"github.com/sokinpui/genfix"
)

func main() {
	if err := genfix.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
