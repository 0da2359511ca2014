package main

import "novaapp/internal/app"

func main() {
	app.Run()
}
