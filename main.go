package main

import "github.com/alexiusacademia/gohyd/cmd"

func main() {
	cmd.Execute()
}
