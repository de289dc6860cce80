package main

import "blobgate/cmd"

func main() {
	cmd.Execute()
}
