package main

import "github.com/nfrund/financeiro/cmd/financeiro/cmd"

func main() {
	cmd.Execute()
}
