package main

import "github.com/Annamarie223sd/WhatsAppTest/internal/cmd"

func main() {
	cmd.Execute()
}
