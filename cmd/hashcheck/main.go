// Command hashcheck is the external regression-test and benchmark harness
// for this module's registry: -verify drives every selected algorithm
// through the self-consistency and known-answer checks in verify.go,
// -speed renders a throughput table, and the per-algorithm selector flags
// (-sha256, -sha3_512, -blake2b, -blake2s, -sha512_224, -sha512_256, and the
// rest of the enumerated set) narrow which algorithms run. With no selector
// given, every algorithm runs. Exit status is 0 on a clean pass, non-zero on
// any failure, so this binary is safe to wire into a CI regression gate.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	hashpkg "github.com/sparkidev/hash"
)

func main() {
	app := &cli.App{
		Name:  "hashcheck",
		Usage: "exercise and benchmark the hash/MAC registry",
		Flags: buildFlags(),
		Action: func(ctx *cli.Context) error {
			return run(ctx)
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("hashcheck: %v", err)
	}
}

func buildFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.BoolFlag{Name: "speed", Usage: "run the throughput benchmark instead of verification"},
		&cli.BoolFlag{Name: "verify", Usage: "run known-answer and self-consistency checks (default mode)"},
		&cli.BoolFlag{Name: "int", Usage: "restrict to INTERNAL implementations (this registry has no other kind; kept for CLI parity)"},
	}
	for _, a := range algoTable {
		flags = append(flags, &cli.BoolFlag{Name: a.flag, Usage: fmt.Sprintf("select %s", a.flag)})
	}
	return flags
}

func selectedAlgorithms(ctx *cli.Context) []hashpkg.AlgorithmID {
	var ids []hashpkg.AlgorithmID
	for _, a := range algoTable {
		if ctx.Bool(a.flag) {
			ids = append(ids, a.id)
		}
	}
	if len(ids) == 0 {
		for _, a := range algoTable {
			ids = append(ids, a.id)
		}
	}
	return ids
}

func run(ctx *cli.Context) error {
	ids := selectedAlgorithms(ctx)

	if ctx.Bool("speed") {
		runSpeed(ids)
		return nil
	}

	var failures int
	for _, id := range ids {
		for _, err := range verifyAlgorithm(id) {
			failures++
			fmt.Fprintln(os.Stderr, "FAIL:", err)
		}
	}
	for _, err := range verifyHMACSHA256KAT() {
		failures++
		fmt.Fprintln(os.Stderr, "FAIL:", err)
	}

	if failures > 0 {
		return fmt.Errorf("%d check(s) failed", failures)
	}
	fmt.Println("all checks passed")
	return nil
}
