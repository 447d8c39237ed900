package main

import "github.com/mouse-blink/mapconv/cmd"

func main() {
	cmd.Execute()
}
