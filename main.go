package main

import "scenecut/cmd"

func main() {
	cmd.Execute()
}
