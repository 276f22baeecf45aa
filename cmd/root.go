package main

import (
	"github.com/spf13/cobra"
)

func main() {
	var root = &cobra.Command{Use: "userscraper"}

	root.AddCommand(scrapeCMD(), profileCMD())
	_ = root.Execute()
}
