package main

import "github.com/gaurav-prasanna/linedump/cmd"

func main() {
	cmd.Execute()
}
