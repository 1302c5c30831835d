package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"marketplace.backend/pkg/crypto"
)

var (
	generateHashFn = crypto.HashPassword
	fatalfFn       = log.Fatalf
)

// run hashes the password given as the first argument, or read from the
// SEED_PASSWORD environment variable, for seeding admin accounts.
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("genhash", flag.ContinueOnError)
	fs.SetOutput(out)
	cost := fs.Int("cost", crypto.DefaultCost, "bcrypt cost")
	if err := fs.Parse(args); err != nil {
		return err
	}

	password := os.Getenv("SEED_PASSWORD")
	if fs.NArg() > 0 {
		password = fs.Arg(0)
	}
	if password == "" {
		return errors.New("usage: genhash [-cost N] <password>")
	}

	crypto.SetCost(*cost)
	hash, err := generateHashFn(password)
	if err != nil {
		return fmt.Errorf("error generating hash: %w", err)
	}
	_, err = fmt.Fprintln(out, hash)
	return err
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fatalfFn("%v", err)
	}
}
