package main

import "github.com/notargets/isotherms/cmd"

func main() {
	cmd.Execute()
}
