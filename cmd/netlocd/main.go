// netlocd — keeps the active macOS network location in step with the
// network the machine is actually on.
package main

import "github.com/netlocd/netlocd/internal/cli"

func main() {
	cli.Execute()
}
