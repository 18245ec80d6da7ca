//go:build cli
// +build cli

package main

import (
	_ "indiemarket.GO/custom"

	"indiemarket.GO/cmd"
	"indiemarket.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
