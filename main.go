package main

import "github.com/gaurav-prasanna/stdmirror/cmd"

func main() {
	cmd.Execute()
}
