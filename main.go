package main

import (
	"github.com/Snapper-Future-Tech/Fabric-sdk/cli"
)

func main() {
	cli.Init()
}
