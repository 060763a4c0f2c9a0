// Command exprtool is a small CLI over pkg/expr: parse and evaluate a style
// expression from a JSON or YAML file, or replay a recorded scenario corpus.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
	"github.com/exprstyle/mapexpr/internal/jsonval/mcvoidadapter"
	"github.com/exprstyle/mapexpr/internal/jsonval/yamladapter"
	"github.com/exprstyle/mapexpr/internal/scenariodb"
	"github.com/exprstyle/mapexpr/pkg/expr"
)

var colorEnabled = isatty.IsTerminal(os.Stdout.Fd())

func colorize(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + "\033[0m"
}

const (
	red   = "\033[31m"
	green = "\033[32m"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  exprtool eval <expression.json|.yaml> [--zoom N]")
	fmt.Fprintln(os.Stderr, "  exprtool scenarios <db-path>")
}

func readSource(path string) (expr.Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return yamladapter.ParseString(string(data))
	}
	return mcvoidadapter.ParseString(string(data))
}

func handleEval(args []string) bool {
	if len(args) == 0 || args[0] != "eval" {
		return false
	}
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "exprtool eval: missing expression file")
		os.Exit(1)
	}

	var zoom *float64
	path := args[1]
	for i := 2; i < len(args); i++ {
		if args[i] == "--zoom" && i+1 < len(args) {
			z, err := strconv.ParseFloat(args[i+1], 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid --zoom value %q\n", args[i+1])
				os.Exit(1)
			}
			zoom = &z
			i++
		}
	}

	r, err := readSource(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, colorize(red, err.Error()))
		os.Exit(1)
	}

	e, errs := expr.Parse(r, exprtype.Value)
	if len(errs) > 0 {
		for _, pe := range errs {
			fmt.Fprintln(os.Stderr, colorize(red, pe.Error()))
		}
		os.Exit(1)
	}

	v, evalErr := e.Evaluate(&expr.EvaluationContext{Zoom: zoom})
	if evalErr != nil {
		fmt.Fprintln(os.Stderr, colorize(red, evalErr.Error()))
		os.Exit(1)
	}

	fmt.Println(colorize(green, exprvalue.Stringify(v)))
	return true
}

func handleScenarios(args []string) bool {
	if len(args) == 0 || args[0] != "scenarios" {
		return false
	}
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "exprtool scenarios: missing db path")
		os.Exit(1)
	}

	db, err := scenariodb.Open(args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, colorize(red, err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	scenarios, err := db.All()
	if err != nil {
		fmt.Fprintln(os.Stderr, colorize(red, err.Error()))
		os.Exit(1)
	}

	pass, fail := 0, 0
	for _, s := range scenarios {
		r, err := mcvoidadapter.ParseString(s.ExprJSON)
		if err != nil {
			fmt.Printf("%s: %s\n", s.Name, colorize(red, "invalid fixture: "+err.Error()))
			fail++
			continue
		}
		e, errs := expr.Parse(r, exprtype.Value)
		if len(errs) > 0 {
			fmt.Printf("%s: %s\n", s.Name, colorize(red, errs[0].Error()))
			fail++
			continue
		}
		var zoom *float64
		if s.Zoom.Valid {
			zoom = &s.Zoom.Float64
		}
		v, evalErr := e.Evaluate(&expr.EvaluationContext{Zoom: zoom})
		got := ""
		if evalErr != nil {
			got = evalErr.Error()
		} else {
			got = exprvalue.Stringify(v)
		}
		if got == s.Expected {
			fmt.Printf("%s: %s\n", s.Name, colorize(green, "ok"))
			pass++
		} else {
			fmt.Printf("%s: %s (want %q, got %q)\n", s.Name, colorize(red, "mismatch"), s.Expected, got)
			fail++
		}
	}

	fmt.Printf("\n%s scenarios, %s passed, %s failed\n",
		humanize.Comma(int64(len(scenarios))), humanize.Comma(int64(pass)), humanize.Comma(int64(fail)))
	if fail > 0 {
		os.Exit(1)
	}
	return true
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	args := os.Args[1:]
	if handleEval(args) {
		return
	}
	if handleScenarios(args) {
		return
	}
	usage()
	os.Exit(1)
}
