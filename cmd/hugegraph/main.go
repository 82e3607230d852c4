package main

import (
	"fmt"
	"io"
	"os"

	"github.com/zyoo/hugegraph/repl"
)

func main() {
	r := repl.REPL{}
	if err := r.Open(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	defer r.Close()

	var err error
	for err != io.EOF {
		if err != nil {
			_, _ = fmt.Fprintln(os.Stdout, err.Error())
		}
		err = r.REPL()
	}
}
