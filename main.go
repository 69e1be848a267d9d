package main

import "patch-dates/cmd"

func main() {
	cmd.Execute()
}
