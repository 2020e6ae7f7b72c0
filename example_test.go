package cmdline_test

import (
	"fmt"
	"os"

	"github.com/cmdline-go/cmdline"
)

func Example() {
	p := cmdline.NewParser()
	p.AddOption(cmdline.Option{Short: "v", Long: "verbose", Kind: cmdline.Switch})
	p.AddOption(cmdline.Option{Short: "o", Long: "output", Kind: cmdline.MandatoryValue, ValueName: "FILE"})
	p.AddArgument(cmdline.Argument{Name: "INPUT", Kind: cmdline.Mandatory})
	p.AddArgument(cmdline.Argument{Name: "EXTRA...", Kind: cmdline.Optional})

	r, err := p.Parse([]string{"prog", "-v", "--output=out.txt", "a.txt", "b.txt"})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(r.Is("verbose"))
	fmt.Println(r.Option("output", "a.out"))
	fmt.Println(r.Argument(0, ""), r.Argument(1, ""))
	// Output:
	// true
	// out.txt
	// a.txt b.txt
}

func ExampleParser_Parse_halt() {
	p := cmdline.NewParser()
	p.AddOption(cmdline.Option{Long: "version", Kind: cmdline.Function, Handler: func() {
		fmt.Println("prog 1.0.0")
	}})

	r, _ := p.Parse([]string{"prog", "--version"})
	if name, halted := r.HaltedBy(); halted {
		fmt.Println("halted by", name)
	}
	// Output:
	// prog 1.0.0
	// halted by version
}

func ExampleResult_Option() {
	p := cmdline.NewParser()
	p.AddOption(cmdline.Option{Long: "color", Kind: cmdline.OptionalValue, ValueName: "WHEN"})
	p.AddArgument(cmdline.Argument{Name: "FILE", Kind: cmdline.Optional})

	r, _ := p.Parse([]string{"prog", "--color", "always", "x.txt"})
	fmt.Println(r.Option("color", "never"))
	fmt.Println(r.Option("undeclared", "fallback"))
	// Output:
	// always
	// fallback
}

func ExampleParser_PrintUsage() {
	p := cmdline.NewParser()
	p.AddOption(cmdline.Option{Short: "v", Long: "verbose", Kind: cmdline.Switch, Doc: "print progress details"})
	p.AddArgument(cmdline.Argument{Name: "INPUT", Kind: cmdline.Mandatory, Doc: "file to process"})

	p.PrintUsage(os.Stdout, "prog")
	// Output:
	// Usage: prog [options] INPUT
	//
	// Options:
	//   -v, --verbose  print progress details
	//
	// Arguments:
	//   INPUT  file to process
}
