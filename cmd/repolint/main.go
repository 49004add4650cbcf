package main

import "github.com/dbsmedya/repolint/cmd/repolint/cmd"

func main() {
	cmd.Execute()
}
