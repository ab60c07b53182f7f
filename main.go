package main

import "github.com/kjnav/kjnav/cmd"

func main() {
	cmd.Execute()
}
