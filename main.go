package main

import (
	"flag"
	"log"

	"github.com/slst/slst-backend/cmd"
)

func main() {
	shouldRunServer := flag.Bool("server", false, "Run the screening API server")
	screenName := flag.String("screen", "", "Screen a single name and print the result")
	flag.Parse()

	var err error
	switch {
	case *shouldRunServer:
		err = cmd.RunServer()
	case *screenName != "":
		err = cmd.RunScreen(*screenName)
	default:
		flag.Usage()
	}
	if err != nil {
		log.Fatal(err)
	}
}
