package main

import (
	"github.com/SriNikhita22/biosync-carechain/cmd/biosync/cmd"
)

func main() {
	cmd.Execute()
}
