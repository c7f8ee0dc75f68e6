package main

import "github.com/iksnae/org-builder/cmd"

func main() {
	cmd.Execute()
}
