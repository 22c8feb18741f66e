package main

import "github.com/casworth/xsect/cmd"

func main() {
	cmd.Execute()
}
