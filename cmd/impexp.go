package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/casefin/organizer"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output   string
	password string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the document to a file" }
func (*exportCmd) Usage() string {
	return `forg export -o <file> [-password <passphrase>]

  Writes the full document as JSON. With a password, the file is
  obfuscated for casual privacy; this is a reversible encoding, not
  encryption.

Usage Examples:
$ forg export -o backup.json
$ forg export -o backup.dat -password "family matters"
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file")
	f.StringVar(&c.password, "password", "", "Optional obfuscation passphrase")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "" {
		fmt.Fprintln(os.Stderr, "Error: -o is required")
		return subcommands.ExitUsageError
	}
	store := OpenStore()
	defer CloseStore(store)

	file, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := organizer.ExportDocument(file, store.Document(), c.password); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported document to %s\n", c.output)
	return subcommands.ExitSuccess
}

type importCmd struct {
	password string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the document from an exported file" }
func (*importCmd) Usage() string {
	return `forg import [-password <passphrase>] <file>

  Replaces the whole document from a previously exported file. On any
  error the current document is left untouched; the replacement is a
  single undoable change.

Usage Examples:
$ forg import backup.json
$ forg import -password "family matters" backup.dat
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.password, "password", "", "Passphrase the file was exported with")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one file argument")
		return subcommands.ExitUsageError
	}
	store := OpenStore()
	defer CloseStore(store)

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	imported, err := organizer.ImportDocument(file, c.password, store.IDs())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	store.Set(func(organizer.Document) organizer.Document { return imported })
	fmt.Printf("Imported document from %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
