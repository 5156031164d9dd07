package main

import "github.com/discorder/discorder/cmd"

func main() {
	cmd.Execute()
}
