// normtrace converts a raw branch log into this simulator's trace format,
// keeping only conditional-branch records (see trace.Normalize).
package main

import (
	"flag"
	"log"
	"os"

	"github.com/qbriceno/branchsim/trace"
)

func main() {
	var in, out string
	flag.StringVar(&in, "in", "", "path to the raw branch log")
	flag.StringVar(&out, "out", "", "path to write the normalized trace")
	flag.Parse()

	if in == "" || out == "" {
		log.Fatal("both -in and -out are required")
	}

	r, err := os.Open(in)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	w, err := os.Create(out)
	if err != nil {
		log.Fatal(err)
	}
	defer w.Close()

	n, err := trace.Normalize(r, w)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d normalized events to %s", n, out)
}
