package main

import (
	"fmt"
	"os"

	"github.com/andaru/sedml/cmd/sedml/app"
	"github.com/golang/glog"
)

func main() {
	cmd := app.New()
	cmd.SetArgs(os.Args[1:])
	err := cmd.Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
}
