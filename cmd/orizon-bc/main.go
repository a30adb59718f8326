// Command orizon-bc reads a module descriptor (JSON) and emits the LLVM
// bitcode it describes to a .bc file on disk.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/orizon-lang/orizon-bc/internal/bcabi"
	"github.com/orizon-lang/orizon-bc/internal/bcdescriptor"
	"github.com/orizon-lang/orizon-bc/internal/bcdiag"
	"github.com/orizon-lang/orizon-bc/internal/bcerrors"
	"github.com/orizon-lang/orizon-bc/internal/bcio"
	"github.com/orizon-lang/orizon-bc/internal/bcserve"
	"github.com/orizon-lang/orizon-bc/internal/cli"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		jsonOutput  = flag.Bool("json", false, "output version in JSON format")
		outPath     = flag.String("o", "", "output .bc path (default: input path with .bc extension)")
		requireLLVM = flag.String("require-llvm", "", "semver range the emitted bitcode's declared LLVM target must satisfy, e.g. \">=14, <19\"")
		targetVer   = flag.String("llvm-version", "", "LLVM version to check against -require-llvm")
		watch       = flag.Bool("watch", false, "re-emit whenever the descriptor file changes")
		serveAddr   = flag.String("serve", "", "run a remote emission server on addr:port (HTTP/3) instead of reading a descriptor from disk")
	)

	flag.Parse()

	if *showVersion {
		cli.PrintVersion("orizon-bc", *jsonOutput)
		return
	}

	if *serveAddr != "" {
		if err := serve(*serveAddr); err != nil {
			log.Fatalf("orizon-bc: serve: %v", err)
		}

		return
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: orizon-bc [options] <descriptor.json>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	descPath := args[0]

	out := *outPath
	if out == "" {
		out = defaultOutputPath(descPath)
	}

	if err := emitOnce(descPath, out, *requireLLVM, *targetVer); err != nil {
		log.Fatalf("orizon-bc: %v", err)
	}

	if *watch {
		if err := watchAndEmit(descPath, out, *requireLLVM, *targetVer); err != nil {
			log.Fatalf("orizon-bc: watch: %v", err)
		}
	}
}

func defaultOutputPath(descPath string) string {
	for i := len(descPath) - 1; i >= 0 && descPath[i] != '/'; i-- {
		if descPath[i] == '.' {
			return descPath[:i] + ".bc"
		}
	}

	return descPath + ".bc"
}

// emitOnce parses and encodes descPath, writing the result to outPath. A
// malformed descriptor is reported as a plain error; a contract
// violation raised by the encoder itself is recovered here and reported
// the same way, so a bad descriptor never crashes the process with a Go
// panic trace.
func emitOnce(descPath, outPath, requireLLVM, targetVer string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if v, ok := r.(*bcerrors.Violation); ok {
				err = fmt.Errorf("encoding failed: %s", v.Error())
				return
			}

			panic(r)
		}
	}()

	data, readErr := os.ReadFile(descPath)
	if readErr != nil {
		return readErr
	}

	diags := &bcdiag.Collector{}

	m := bcdescriptor.Parse(data, diags)
	if m != nil && requireLLVM != "" {
		rng, rngErr := bcabi.ParseTargetRange(requireLLVM)
		if rngErr != nil {
			diags.Add(bcdiag.New().Error().Stage("target").Message("%v", rngErr).Build())
		} else if targetVer != "" {
			rng.RequireInRange(targetVer)
		}
	}

	if diags.HasErrors() || m == nil {
		for _, d := range diags.Items() {
			fmt.Fprintln(os.Stderr, d.String())
		}

		return fmt.Errorf("%d diagnostic(s) reported", len(diags.Items()))
	}

	bytes := bcdescriptor.Build(m, diags)
	if diags.HasErrors() || bytes == nil {
		for _, d := range diags.Items() {
			fmt.Fprintln(os.Stderr, d.String())
		}

		return fmt.Errorf("%d diagnostic(s) reported", len(diags.Items()))
	}

	if err := bcio.WriteFile(outPath, bytes); err != nil {
		return err
	}

	log.Printf("wrote %s (%d bytes)", outPath, len(bytes))

	return nil
}

// emitBytes is the bcserve.EmitFunc backing -serve: it runs a descriptor
// body through the same parse/build pipeline as emitOnce, minus the
// filesystem round trip.
func emitBytes(descriptor []byte) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			if v, ok := r.(*bcerrors.Violation); ok {
				err = fmt.Errorf("encoding failed: %s", v.Error())
				return
			}

			panic(r)
		}
	}()

	diags := &bcdiag.Collector{}

	m := bcdescriptor.Parse(descriptor, diags)
	if diags.HasErrors() || m == nil {
		return nil, fmt.Errorf("%d diagnostic(s) reported", len(diags.Items()))
	}

	built := bcdescriptor.Build(m, diags)
	if diags.HasErrors() || built == nil {
		return nil, fmt.Errorf("%d diagnostic(s) reported", len(diags.Items()))
	}

	return built, nil
}

// serve starts a bcserve.Server on addr with a self-signed certificate and
// blocks until it fails or the process receives an interrupt/termination
// signal.
func serve(addr string) error {
	tlsCfg, err := bcserve.GenerateSelfSignedTLS([]string{"localhost", "127.0.0.1"}, 0)
	if err != nil {
		return fmt.Errorf("generating TLS config: %w", err)
	}

	srv := bcserve.NewServer(addr, tlsCfg, emitBytes, bcserve.Options{})

	bound, err := srv.Start()
	if err != nil {
		return fmt.Errorf("starting server: %w", err)
	}

	log.Printf("orizon-bc: serving /emit on https://%s (HTTP/3)", bound)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-srv.Error():
		_ = srv.Stop()
		return err
	case s := <-sig:
		log.Printf("orizon-bc: received %s, shutting down", s)
		return srv.Stop()
	}
}
