package main

import "menulink/storefront-svc/cmd"

func main() {
	cmd.Execute()
}
