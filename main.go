package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"alamode/config"
	"alamode/utils"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
)

var red = color.New(color.FgRed)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	req, err := config.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprintln(stderr, config.Usage())
		return 0
	}
	if err != nil {
		red.Fprintln(stderr, err)
		if errors.Is(err, config.ErrUsage) {
			fmt.Fprintln(stderr, config.Usage())
		}
		return 2
	}

	level := utils.INFO
	if req.Verbose {
		level = utils.DEBUG
	}
	utils.InitLogger(level, stderr)
	defer utils.Log.Sync()

	seed := req.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	utils.Log.Info("generating %d %s sample(s) of %.3fs at %d Hz into %s (logmel=%t, seed=%d)",
		req.Num, req.Sound, req.Duration, req.SamplingRate, req.Output, req.Logmel, seed)

	start := time.Now()
	samples, err := Generate(req, rng)
	if err != nil {
		utils.Log.Error("generation stopped after %d sample(s): %v", len(samples), err)
		red.Fprintln(stderr, err)
		return 1
	}

	utils.Log.Info("wrote %d sample(s) in %s", len(samples), time.Since(start))
	return 0
}
