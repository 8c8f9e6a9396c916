// cmd/main.go
package main

import (
	"go-bank-teller/app"
)

func main() {
	app.Run()
}
