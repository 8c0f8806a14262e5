package main

import (
	"fmt"
	"io"

	_ "embed"

	"github.com/pkg/errors"
)

//go:embed usage.txt
var instructions string

// usage writes the launcher banner to w exactly as embedded.
func usage(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%v", instructions); err != nil {
		return errors.Wrap(err, "writing usage banner")
	}
	return nil
}
