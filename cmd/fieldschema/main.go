package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"

	fieldschema "github.com/reoring/fieldschema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "resolve":
		resolveCmd(os.Args[2:])
	case "entry":
		entryCmd(os.Args[2:])
	case "type":
		typeCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "fieldschema CLI\n\nUsage:\n  fieldschema resolve -schema file.json -path .a.b[0]\n  fieldschema entry   -schema file.yaml -path /a/b/0\n  fieldschema type    -schema file.json -path .a.b\n\nNotes:\n  - Schema files ending in .yaml/.yml are decoded as YAML, everything else as JSON.\n  - Paths accept dot/bracket (.a.b[0], .a['x']) or pointer (/a/b/0) syntax.")
}

func resolveCmd(args []string) {
	c, path := compilerFromFlags("resolve", args)
	node, err := c.Resolve(path)
	if err != nil {
		fatal(err)
	}
	printJSON(node)
}

func entryCmd(args []string) {
	c, path := compilerFromFlags("entry", args)
	if _, err := c.Resolve(path); err != nil {
		fatal(err)
	}
	e, ok := c.Entry(path)
	if !ok {
		fatal(fmt.Errorf("no compiled entry for %q", path))
	}
	printJSON(map[string]any{
		"type":       e.Type,
		"properties": e.Properties,
		"required":   e.Required,
		"allOf":      e.AllOf,
		"anyOf":      e.AnyOf,
		"oneOf":      e.OneOf,
		"isRequired": e.IsRequired,
	})
}

func typeCmd(args []string) {
	c, path := compilerFromFlags("type", args)
	ft, err := c.TypeOf(path)
	if err != nil {
		fatal(err)
	}
	fmt.Println(ft)
}

func compilerFromFlags(sub string, args []string) (*fieldschema.Compiler, string) {
	fs := flag.NewFlagSet(sub, flag.ExitOnError)
	var schemaFile string
	var path string
	fs.StringVar(&schemaFile, "schema", "", "schema document file (JSON or YAML)")
	fs.StringVar(&path, "path", "", "field path to resolve")
	_ = fs.Parse(args)
	if schemaFile == "" {
		fs.Usage()
		os.Exit(2)
	}
	data, err := os.ReadFile(schemaFile)
	if err != nil {
		fatal(err)
	}
	var c *fieldschema.Compiler
	if strings.HasSuffix(schemaFile, ".yaml") || strings.HasSuffix(schemaFile, ".yml") {
		c, err = fieldschema.NewFromYAML(data)
	} else {
		c, err = fieldschema.NewFromJSON(data)
	}
	if err != nil {
		fatal(err)
	}
	return c, path
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(out))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fieldschema:", err)
	os.Exit(1)
}
