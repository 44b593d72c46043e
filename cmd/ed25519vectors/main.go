// Command ed25519vectors signs and verifies RFC 8032 test vectors from
// the command line, exercising the ed25519 package's public API end to
// end without a test harness.
package main

import (
	"fmt"
	"os"

	ed25519 "github.com/agl/ed25519engine"
	"github.com/agl/ed25519engine/edwards25519"
)

func main() {
	ed25519.SetSyncHash(ed25519.StdlibSyncHasher())

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "pubkey":
		err = runPubkey(os.Args[2:])
	case "sign":
		err = runSign(os.Args[2:])
	case "verify":
		err = runVerify(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "ed25519vectors:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  ed25519vectors pubkey <hex-seed>")
	fmt.Fprintln(os.Stderr, "  ed25519vectors sign   <hex-seed> <hex-msg>")
	fmt.Fprintln(os.Stderr, "  ed25519vectors verify <hex-pub> <hex-msg> <hex-sig> [--strict]")
}

func runPubkey(args []string) error {
	if len(args) != 1 {
		usage()
		os.Exit(2)
	}
	seed, err := edwards25519.HexToBytes(args[0])
	if err != nil {
		return err
	}
	pub, err := ed25519.GetPublicKey(seed)
	if err != nil {
		return err
	}
	fmt.Println(edwards25519.BytesToHex(pub))
	return nil
}

func runSign(args []string) error {
	if len(args) != 2 {
		usage()
		os.Exit(2)
	}
	seed, err := edwards25519.HexToBytes(args[0])
	if err != nil {
		return err
	}
	msg, err := edwards25519.HexToBytes(args[1])
	if err != nil {
		return err
	}
	sig, err := ed25519.Sign(msg, seed)
	if err != nil {
		return err
	}
	fmt.Println(edwards25519.BytesToHex(sig))
	return nil
}

func runVerify(args []string) error {
	strict := false
	var pos []string
	for _, a := range args {
		if a == "--strict" {
			strict = true
			continue
		}
		pos = append(pos, a)
	}
	if len(pos) != 3 {
		usage()
		os.Exit(2)
	}
	pub, err := edwards25519.HexToBytes(pos[0])
	if err != nil {
		return err
	}
	msg, err := edwards25519.HexToBytes(pos[1])
	if err != nil {
		return err
	}
	sig, err := edwards25519.HexToBytes(pos[2])
	if err != nil {
		return err
	}

	ok := ed25519.Verify(sig, msg, pub, ed25519.WithZIP215(!strict))
	if !ok {
		fmt.Println("invalid")
		os.Exit(1)
	}
	fmt.Println("valid")
	return nil
}
