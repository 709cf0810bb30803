package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"

	shapecheck "github.com/shapecheck/shapecheck"
	"github.com/shapecheck/shapecheck/i18n"
	"github.com/shapecheck/shapecheck/source"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "shapecheck CLI\n\nUsage:\n  shapecheck validate -schema schema.{json,yaml} -data data.{json,yaml} [-permissive] [-lang en|ja] [-json]\n\nExit status:\n  0 data conforms, 1 validation errors, 2 usage or input errors.")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schemaPath, dataPath, lang string
	var permissive, jsonOut bool
	var maxDepth int
	fs.StringVar(&schemaPath, "schema", "", "schema file (JSON or YAML)")
	fs.StringVar(&dataPath, "data", "", "data file (JSON or YAML)")
	fs.BoolVar(&permissive, "permissive", false, "accept unknown object keys by default")
	fs.StringVar(&lang, "lang", "en", "message language (en/ja)")
	fs.BoolVar(&jsonOut, "json", false, "emit the error list as JSON")
	fs.IntVar(&maxDepth, "max-depth", 0, "recursion depth cap (0 = default)")
	_ = fs.Parse(args)
	if schemaPath == "" || dataPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	i18n.SetLanguage(lang)

	schema, err := loadDocument(schemaPath)
	if err != nil {
		fatalf("loading schema: %v", err)
	}
	data, err := loadDocument(dataPath)
	if err != nil {
		fatalf("loading data: %v", err)
	}

	errs := shapecheck.Validate(data, schema, shapecheck.Opt{Permissive: permissive, MaxDepth: maxDepth})
	if jsonOut {
		if errs == nil {
			errs = shapecheck.Errors{}
		}
		out, err := gojson.MarshalIndent(errs, "", "  ")
		if err != nil {
			fatalf("encoding errors: %v", err)
		}
		fmt.Println(string(out))
	} else {
		fmt.Println(shapecheck.FormatErrors(errs))
	}
	if len(errs) > 0 {
		os.Exit(1)
	}
}

func loadDocument(path string) (any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return source.YAMLBytes(b)
	default:
		return source.JSONBytes(b)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
