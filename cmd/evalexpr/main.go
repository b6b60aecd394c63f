package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	evalexpr "github.com/zehntor/evalexpr"
)

func main() {
	log.SetFlags(0)
	var (
		inname     string
		given      [][2]string
		echo, asJS bool
	)
	addGiven := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		given = append(given, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.Func("given", "name=value variable definition, itself evaluated as an expression (any number of times)", addGiven)
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&asJS, "json", false, "print results as JSON instead of their default rendering")
	flag.Parse()

	ctx := evalexpr.NewDefaultContext()
	for _, d := range given {
		name, src := d[0], d[1]
		v, err := evalexpr.Eval(src, ctx)
		if err != nil {
			log.Fatalf("setting %s: %v", name, err)
		}
		if err := ctx.SetValue(name, v); err != nil {
			log.Fatalf("setting %s: %v", name, err)
		}
	}

	var sources []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		lines, err := readSources(f)
		if err != nil {
			log.Fatal(err)
		}
		sources = append(sources, lines...)
	}
	sources = append(sources, flag.Args()...)

	for _, src := range sources {
		node, err := evalexpr.Compile(src)
		if err != nil {
			printErr(src, err)
			continue
		}
		if echo {
			fmt.Printf("%v : ", node)
		}
		v, err := node.Eval(ctx)
		if err != nil {
			printErr(src, err)
			continue
		}
		if asJS {
			data, err := json.Marshal(v)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(string(data))
			continue
		}
		fmt.Println(v.String())
	}
}

// printErr reports an evaluation failure, including position information
// when err is an InputError produced while tokenizing or parsing src.
func printErr(src string, err error) {
	if ie, ok := err.(evalexpr.InputError); ok {
		fmt.Printf("%s: %v (at position %d)\n", src, ie, ie.Pos())
		return
	}
	fmt.Printf("%s: %v\n", src, err)
}

// readSources reads newline-separated expressions from r, skipping blank
// lines.
func readSources(r io.Reader) ([]string, error) {
	var sources []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		sources = append(sources, line)
	}
	return sources, sc.Err()
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	default:
		return nil, nil
	}
}
