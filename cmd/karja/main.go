package main

import "github.com/dafibh/karja/karja-backend/internal/cli"

func main() {
	cli.Execute()
}
