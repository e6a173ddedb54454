package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/casefin/organizer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// addAssetCmd holds the flags for the 'add-asset' subcommand.
type addAssetCmd struct {
	name  string
	value string
	notes string
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "add an asset to the document" }
func (*addAssetCmd) Usage() string {
	return `forg add-asset -name <name> -value <amount> [-notes <notes>]

  Adds an owned item to the asset list.

Usage Examples:
$ forg add-asset -name "Family home" -value 450000
`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Asset name")
	f.StringVar(&c.value, "value", "0", "Asset value")
	f.StringVar(&c.notes, "notes", "", "Free-form notes")
}

func (c *addAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	store := OpenStore()
	defer CloseStore(store)

	item := organizer.AssetItem{
		ID:    store.IDs().NewID(),
		Name:  c.name,
		Value: organizer.ParseMoney(c.value),
		Notes: c.notes,
	}
	store.Set(func(doc organizer.Document) organizer.Document {
		doc.Assets = append(doc.Assets, item)
		return doc
	})
	fmt.Printf("Added asset %q (%s)\n", item.Name, item.Value)
	return subcommands.ExitSuccess
}

// addLiabilityCmd holds the flags for the 'add-liability' subcommand.
type addLiabilityCmd struct {
	name    string
	balance string
	rate    string
	payment string
	notes   string
}

func (*addLiabilityCmd) Name() string     { return "add-liability" }
func (*addLiabilityCmd) Synopsis() string { return "add a liability to the document" }
func (*addLiabilityCmd) Usage() string {
	return `forg add-liability -name <name> -balance <amount> [-rate <apr>] [-payment <amount>]

  Adds an owed item to the liability list. The rate is an annual percentage.

Usage Examples:
$ forg add-liability -name "Visa card" -balance 4200 -rate 21.9 -payment 150
`
}

func (c *addLiabilityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Liability name")
	f.StringVar(&c.balance, "balance", "0", "Outstanding balance")
	f.StringVar(&c.rate, "rate", "0", "Annual percentage rate")
	f.StringVar(&c.payment, "payment", "0", "Monthly payment")
	f.StringVar(&c.notes, "notes", "", "Free-form notes")
}

func (c *addLiabilityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	rate, err := decimal.NewFromString(c.rate)
	if err != nil {
		rate = decimal.Zero
	}
	store := OpenStore()
	defer CloseStore(store)

	item := organizer.LiabilityItem{
		ID:      store.IDs().NewID(),
		Name:    c.name,
		Balance: organizer.ParseMoney(c.balance),
		Rate:    rate,
		Payment: organizer.ParseMoney(c.payment),
		Notes:   c.notes,
	}
	store.Set(func(doc organizer.Document) organizer.Document {
		doc.Liabilities = append(doc.Liabilities, item)
		return doc
	})
	fmt.Printf("Added liability %q (%s)\n", item.Name, item.Balance)
	return subcommands.ExitSuccess
}

// flowFlags are shared by the income and expense commands.
type flowFlags struct {
	name      string
	amount    string
	frequency string
	line      string
}

func (c *flowFlags) set(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name")
	f.StringVar(&c.amount, "amount", "0", "Amount per occurrence")
	f.StringVar(&c.frequency, "frequency", "monthly", "weekly, biweekly, monthly or annual")
	f.StringVar(&c.line, "line", "", `Quick-add line like "freelance 600 biweekly" (overrides the other flags)`)
}

// item builds the flow item from either the quick-add line or the flags.
func (c *flowFlags) item(ids organizer.IDGenerator) (organizer.FlowItem, error) {
	if c.line != "" {
		item, ok := organizer.ParseQuickLine(c.line)
		if !ok {
			return organizer.FlowItem{}, fmt.Errorf("could not parse line %q, expected \"<name> <amount> <frequency>\"", c.line)
		}
		item.ID = ids.NewID()
		return item, nil
	}
	if c.name == "" {
		return organizer.FlowItem{}, fmt.Errorf("-name is required")
	}
	return organizer.FlowItem{
		ID:        ids.NewID(),
		Name:      c.name,
		Amount:    organizer.ParseMoney(c.amount),
		Frequency: organizer.ParseFrequency(c.frequency),
	}, nil
}

type addIncomeCmd struct{ flowFlags }

func (*addIncomeCmd) Name() string     { return "add-income" }
func (*addIncomeCmd) Synopsis() string { return "add a recurring income item" }
func (*addIncomeCmd) Usage() string {
	return `forg add-income -name <name> -amount <amount> [-frequency <freq>]
forg add-income -line "<name> <amount> <frequency>"

  Adds a recurring income item. All projections convert it to its monthly
  equivalent.

Usage Examples:
$ forg add-income -name Salary -amount 5200
$ forg add-income -line "freelance 600 biweekly"
`
}

func (c *addIncomeCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *addIncomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	defer CloseStore(store)

	item, err := c.item(store.IDs())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	store.Set(func(doc organizer.Document) organizer.Document {
		doc.Income = append(doc.Income, item)
		return doc
	})
	fmt.Printf("Added income %q (%s %s)\n", item.Name, item.Amount, item.Frequency)
	return subcommands.ExitSuccess
}

type addExpenseCmd struct{ flowFlags }

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "add a recurring expense item" }
func (*addExpenseCmd) Usage() string {
	return `forg add-expense -name <name> -amount <amount> [-frequency <freq>]
forg add-expense -line "<name> <amount> <frequency>"

  Adds a recurring non-housing expense item.

Usage Examples:
$ forg add-expense -name Groceries -amount 200 -frequency weekly
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *addExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	defer CloseStore(store)

	item, err := c.item(store.IDs())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	store.Set(func(doc organizer.Document) organizer.Document {
		doc.Expenses = append(doc.Expenses, item)
		return doc
	})
	fmt.Printf("Added expense %q (%s %s)\n", item.Name, item.Amount, item.Frequency)
	return subcommands.ExitSuccess
}
