// Package main provides the deepzero CLI.
//
// Usage:
//
//	deepzero [flags] <command>
//
// Commands:
//
//	version    Show version
//	demo       Differentiate a few sample expressions
//	optimize   Minimize the Rosenbrock function with SGD or Adam
//	dot        Print the Rosenbrock computation graph in Graphviz DOT format
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const version = "v0.1.0-dev"

var (
	flagOptimizer  = flag.String("optimizer", "sgd", `Optimizer used by "optimize": "sgd" or "adam".`)
	flagLR         = flag.Float64("lr", 0.001, "Learning rate.")
	flagMomentum   = flag.Float64("momentum", 0, "SGD momentum factor.")
	flagIters      = flag.Int("iters", 10000, "Number of optimization steps.")
	flagProgress   = flag.Bool("progress", true, "Display a progress bar while optimizing.")
	flagCheckpoint = flag.String("checkpoint", "", "SafeTensors file to resume \"optimize\" from and save to. If left empty, no checkpoint is used.")
)

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() { usage(flag.CommandLine.Output()) }
	flag.Parse()

	err := exceptions.TryCatch[error](func() {
		must.M(run(os.Stdout, flag.Arg(0)))
	})
	if err != nil {
		klog.Fatalf("Failed with error: %+v", err)
	}
}

// run executes the named command, writing its output to w.
func run(w io.Writer, command string) error {
	switch command {
	case "version":
		_, err := fmt.Fprintf(w, "deepzero %s\n", version)
		return err
	case "demo":
		return runDemo(w)
	case "optimize":
		return runOptimize(w, optimizeConfig{
			Optimizer:  *flagOptimizer,
			LR:         *flagLR,
			Momentum:   *flagMomentum,
			Iters:      *flagIters,
			Progress:   *flagProgress,
			Checkpoint: *flagCheckpoint,
		})
	case "dot":
		return runDOT(w)
	case "", "help":
		usage(w)
		return nil
	default:
		return errors.Errorf("unknown command %q, see \"deepzero help\"", command)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "deepzero %s: define-by-run automatic differentiation\n\n", version)
	fmt.Fprintln(w, "Usage: deepzero [flags] <command>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  demo       Differentiate a few sample expressions")
	fmt.Fprintln(w, "  optimize   Minimize the Rosenbrock function with SGD or Adam")
	fmt.Fprintln(w, "  dot        Print the Rosenbrock computation graph in Graphviz DOT format")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
}
