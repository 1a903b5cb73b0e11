// Package main provides the blockmem CLI.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/blockmem/layout"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("blockmem %s\n", version)
			return
		case "formats":
			printFormats()
			return
		}
	}

	fmt.Println("blockmem - blocked memory layout maintenance")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  formats    List recognized formats and their families")
}

func printFormats() {
	for _, f := range layout.Formats() {
		info := layout.Resolve(f)
		if info.Tile > 0 {
			fmt.Printf("%-16s %-22s tile %d\n", f, info.Family, info.Tile)
		} else {
			fmt.Printf("%-16s %-22s\n", f, info.Family)
		}
	}
}
