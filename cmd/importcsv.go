package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/casefin/organizer"
	"github.com/google/subcommands"
)

type importCSVCmd struct {
	target string
}

func (*importCSVCmd) Name() string     { return "import-csv" }
func (*importCSVCmd) Synopsis() string { return "import items from a CSV file" }
func (*importCSVCmd) Usage() string {
	return `forg import-csv -target <target> <file>

  Appends items from a CSV file to one of the document's lists. Targets
  and their headers:

    assets       name,value,notes
    liabilities  name,balance,rate,payment,notes
    income       name,amount,frequency
    expenses     name,amount,frequency
    contacts     name,email,phone,role

  Bad numbers coerce to zero and unknown frequencies fall back to
  monthly; rows are never rejected for those.

Usage Examples:
$ forg import-csv -target income statements.csv
`
}

func (c *importCSVCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.target, "target", "", "One of assets, liabilities, income, expenses, contacts")
}

func (c *importCSVCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	count := 0
	switch c.target {
	case "assets":
		items, err := organizer.ImportAssetsCSV(file, store.IDs())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		count = len(items)
		store.Set(func(doc organizer.Document) organizer.Document {
			doc.Assets = append(doc.Assets, items...)
			return doc
		})

	case "liabilities":
		items, err := organizer.ImportLiabilitiesCSV(file, store.IDs())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		count = len(items)
		store.Set(func(doc organizer.Document) organizer.Document {
			doc.Liabilities = append(doc.Liabilities, items...)
			return doc
		})

	case "income", "expenses":
		items, err := organizer.ImportFlowsCSV(file, store.IDs())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		count = len(items)
		target := c.target
		store.Set(func(doc organizer.Document) organizer.Document {
			if target == "income" {
				doc.Income = append(doc.Income, items...)
			} else {
				doc.Expenses = append(doc.Expenses, items...)
			}
			return doc
		})

	case "contacts":
		contacts, err := organizer.ImportContactsCSV(file, store.IDs())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		count = len(contacts)
		store.Set(func(doc organizer.Document) organizer.Document {
			doc.Divorce.Contacts = append(doc.Divorce.Contacts, contacts...)
			return doc
		})

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown target %q\n", c.target)
		return subcommands.ExitUsageError
	}

	fmt.Printf("Imported %d %s from %s\n", count, c.target, f.Arg(0))
	return subcommands.ExitSuccess
}
