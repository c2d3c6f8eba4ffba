package main

import "github.com/minigit-vcs/minigit/cmd"

func main() {
	cmd.Execute()
}
