package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"reflect"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/segmentio/encoding/json"
)

var version = "v0.1.0"

// Keeps the config keys readable when the binary is obfuscated.
var _ = reflect.TypeOf(config{})

type config struct {
	Size      int    `cli:"" env:"OCTREE_SIZE"       help:"Number of random points to insert."`
	Seed      uint64 `cli:"" env:"OCTREE_SEED"       help:"Random seed, 0 picks one at random."`
	LogLevel  string `cli:"" env:"OCTREE_LOG_LEVEL"  help:"Log level (debug|info|warning|error)."`
	LogIndent bool   `cli:"" env:"OCTREE_LOG_INDENT" help:"Indent logs and report."`
	Version   bool   `cli:"" env:"-"                 help:"Show version."`
	Help      bool   `cli:"" env:"-"                 help:"Show help."`
}

func main() {
	conf := config{
		Size:     1000,
		LogLevel: logs.InfoLevel.String(),
	}

	cli.Register().
		Help("Fills an octree with a random point cloud and looks up a probe point.").
		Options(&conf)
	cli.Load()

	if conf.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	if err := validateConfig(conf); err != nil {
		logs.Fatal(err)
	}

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}
	errors.Encoder = json.Marshal

	seed := conf.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	logs.WithTag("size", conf.Size).
		WithTag("seed", seed).
		Info("building random point cloud")

	rep := run(conf.Size, rand.New(rand.NewPCG(seed, seed)))

	logs.WithTag("probe", rep.Probe).
		WithTag("found", rep.Found).
		WithTag("nodes", rep.Stats.Nodes).
		WithTag("max_leaf_points", rep.Stats.MaxLeafPoints).
		Info("probe lookup done")

	if err := writeReport(os.Stdout, rep, conf.LogIndent); err != nil {
		logs.Fatal(err)
	}
}

func validateConfig(conf config) error {
	if conf.Size <= 0 {
		return errors.New("size must be positive").
			WithTag("size", conf.Size)
	}

	return nil
}
