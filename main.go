package main

import "github.com/nikogura/skill-dashboard/cmd"

func main() {
	cmd.Execute()
}
