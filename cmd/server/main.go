package main

import "masterfile/internal/app/server"

func main() {
	server.Run()
}
