package main

import "wanderquest/cmd/wq/root"

func main() {
	root.Execute()
}
