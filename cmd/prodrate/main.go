// Command prodrate resolves production targets over a recipe data file.
package main

import "github.com/katalvlaran/prodrate/internal/cli"

func main() {
	cli.Execute()
}
