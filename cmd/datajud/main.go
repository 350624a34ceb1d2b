package main

import "github.com/locarlabs/datajud/internal/cli"

func main() {
	cli.Execute()
}
