package main

import "morphood/cmd"

func main() {
	cmd.Execute()
}
