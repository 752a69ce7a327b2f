package main

import "planilla/internal/app/server"

func main() {
	server.Run()
}
