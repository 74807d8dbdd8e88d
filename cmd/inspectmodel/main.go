// Command inspectmodel loads a model (builtin name or YAML file), validates
// it, and prints its stats. Exit status 1 means the model would not render.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Alec-Izett/AircraftSim-Izett/internal/geometry"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: inspectmodel <builtin-name | model.yaml> [...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := false
	for _, arg := range flag.Args() {
		m := geometry.Builtin(arg)
		if m == nil {
			var err error
			m, err = geometry.LoadFile(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
				failed = true
				continue
			}
		}
		if err := m.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
			failed = true
			continue
		}

		min, max := m.Bounds()
		fmt.Printf("%s:\n", m.Name)
		fmt.Printf("  vertices: %d\n", len(m.Vertices))
		fmt.Printf("  faces:    %d\n", len(m.Faces))
		fmt.Printf("  colors:   %d\n", len(m.Colors))
		fmt.Printf("  bounds:   n [%.2f, %.2f]  e [%.2f, %.2f]  d [%.2f, %.2f]\n",
			min[0], max[0], min[1], max[1], min[2], max[2])
		fmt.Printf("  radius:   %.2f m\n", m.Radius())
	}
	if failed {
		os.Exit(1)
	}
}
