package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	root, closeApp := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	err := root.Execute()
	closeApp()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
