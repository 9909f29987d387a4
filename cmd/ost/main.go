package main

import "github.com/ostclient/ost/cmd/cli"

func main() {
	cli.Execute()
}
