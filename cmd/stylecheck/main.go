// Command stylecheck reads a CSS declaration block from stdin or from
// its arguments, resolves it against the default UA style, and
// prints every computed longhand. It exists as a smoke test for the
// parse -> validate -> lower pipeline, the way the teacher's own
// css/properties/gen/gen.go is a small main package driving the
// property packages end to end.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	pr "github.com/stormlicht/style/css/properties"
	"github.com/stormlicht/style/css/parser"
	"github.com/stormlicht/style/style"
)

func main() {
	viewportWidth := flag.Float64("vw", 1024, "viewport width in pixels, for vw units")
	viewportHeight := flag.Float64("vh", 768, "viewport height in pixels, for vh units")
	flag.Parse()

	var css string
	if args := flag.Args(); len(args) > 0 {
		css = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, "stylecheck:", err)
			os.Exit(1)
		}
		css = string(data)
	}

	decls, errs := parser.ParseDeclarationListString(css)
	for _, err := range errs {
		fmt.Fprintln(os.Stderr, "stylecheck: dropped a malformed declaration:", err)
	}

	ctx := style.DefaultContext(*viewportWidth, *viewportHeight)
	cs := style.Default(ctx)
	style.ApplyDeclarations(cs, nil, decls, ctx)

	names := make([]string, 0, len(pr.InitialValues))
	byName := map[string]pr.KnownProp{}
	for prop := range pr.InitialValues {
		names = append(names, prop.Name())
		byName[prop.Name()] = prop
	}
	sort.Strings(names)

	for _, name := range names {
		v, _ := cs.Get(byName[name])
		fmt.Printf("%s: %#v\n", name, v)
	}
}
