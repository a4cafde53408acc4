package main

import "arenabtree/cmd/arenabtree/cmd"

func main() {
	cmd.Execute()
}
