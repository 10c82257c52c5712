// Command samplepoint builds a RandomState for a seed and a named noise
// generator settings document, compiles its noise router, and prints
// every channel's value at a block position.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/bits0rcerer/valence-worldgen/internal/config"
	"github.com/bits0rcerer/valence-worldgen/pkg/worldgen"
)

func main() {
	var (
		registryRoot = flag.String("registry", config.GetRegistryRoot(), "directory a file registry resolves worldgen documents relative to")
		settingsName = flag.String("settings", "minecraft:overworld", "identifier of the noise generator settings document to sample")
		seed         = flag.Int64("seed", 0, "world seed")
		x            = flag.Int("x", 0, "block X coordinate")
		y            = flag.Int("y", 64, "block Y coordinate")
		z            = flag.Int("z", 0, "block Z coordinate")
	)
	flag.Parse()

	settingsID, err := worldgen.ParseIdentifier(*settingsName)
	if err != nil {
		logrus.WithError(err).Fatal("invalid settings identifier")
	}

	reg := worldgen.NewFileRegistry(*registryRoot, nil)

	dim, err := worldgen.NewDimension(reg, settingsID, *seed)
	if err != nil {
		logrus.WithError(err).Fatal("failed to prepare dimension")
	}

	pos := worldgen.NewBlockPos(int32(*x), int32(*y), int32(*z))
	for channel, value := range dim.Sample(pos) {
		fmt.Printf("%-36s %v\n", channel, value)
	}

	os.Exit(0)
}
