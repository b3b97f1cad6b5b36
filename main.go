package main

import "cdn-manager/cmd"

func main() {
	cmd.Execute()
}
