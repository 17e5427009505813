package main

import (
	"fmt"
	"log"
	"os"
	"slices"
	"strconv"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	fn, ok := solutions[os.Args[1]]
	if !ok {
		log.Fatalf("unknown solution %q", os.Args[1])
	}
	if err := fn(os.Args[2:]); err != nil {
		log.Fatalf("solution %s: %s", os.Args[1], err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [solution] < input\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range solutionNames() {
		fmt.Fprintln(os.Stderr, name)
	}
}

// A solution reads its puzzle input from stdin and prints its answers.
type solution func(args []string) error

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	splitName(name) // panics on names without a day number
	solutions[name] = fn
}

func solutionNames() []string {
	names := make([]string, 0, len(solutions))
	for name := range solutions {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case nameLess(a, b):
			return -1
		case nameLess(b, a):
			return 1
		}
		return 0
	})
	return names
}

// nameLess orders names like "9" < "10a" < "10b" < "11".
func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 != n1 {
		return n0 < n1
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(fmt.Sprintf("solution name %q does not start with a day number", name))
	}
	return n, name[i:]
}
