package main

import "source.quilibrium.com/quilibrium/g2engine/cmd"

func main() {
	cmd.Execute()
}
