package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/casefin/organizer"
	"github.com/google/subcommands"
	"gopkg.in/yaml.v3"
)

type deadlinesCmd struct {
	build  bool
	filing string
	rules  string
	done   string
}

func (*deadlinesCmd) Name() string     { return "deadlines" }
func (*deadlinesCmd) Synopsis() string { return "list or generate case deadlines" }
func (*deadlinesCmd) Usage() string {
	return `forg deadlines [-build -filing <date> [-rules <file>]] [-done <id>]

  Without flags, lists the case deadlines. With -build, regenerates them
  from the filing date using the rule offsets; previously generated
  deadlines are replaced. A YAML rules file overrides individual offsets:

    financialDisclosureDays: 30
    initialExchangeDays: 45
    parentingPlanDays: 20
    mediationDays: 60

Usage Examples:
$ forg deadlines -build -filing 2024-01-15
$ forg deadlines -build -filing 2024-01-15 -rules county.yaml
`
}

func (c *deadlinesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.build, "build", false, "Regenerate the deadlines from the filing date")
	f.StringVar(&c.filing, "filing", "", "Filing date (YYYY-MM-DD); empty means today")
	f.StringVar(&c.rules, "rules", "", "YAML file overriding the day offsets")
	f.StringVar(&c.done, "done", "", "Mark the deadline with this id as done")
}

func (c *deadlinesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	defer CloseStore(store)

	switch {
	case c.build:
		var filing organizer.Date
		if c.filing != "" {
			var err error
			filing, err = organizer.ParseDate(c.filing)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing -filing: %v\n", err)
				return subcommands.ExitUsageError
			}
		}

		rules := store.Document().Divorce.DeadlineRules
		if c.rules != "" {
			loaded, err := loadRules(c.rules)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
				return subcommands.ExitFailure
			}
			rules = loaded
		}

		d := store.Document().Divorce
		deadlines := organizer.ComputeDeadlines(filing, d.IsContested(), d.HasChildren(), rules)
		for i := range deadlines {
			deadlines[i].ID = store.IDs().NewID()
		}
		store.Set(func(doc organizer.Document) organizer.Document {
			doc.Divorce.Deadlines = deadlines
			if c.rules != "" {
				doc.Divorce.DeadlineRules = rules
			}
			return doc
		})
		fmt.Printf("Generated %d deadlines\n", len(deadlines))

	case c.done != "":
		found := false
		doc := store.Document()
		for _, d := range doc.Divorce.Deadlines {
			if d.ID == c.done {
				found = true
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "Error: no deadline with id %q\n", c.done)
			return subcommands.ExitFailure
		}
		store.Set(func(doc organizer.Document) organizer.Document {
			for i := range doc.Divorce.Deadlines {
				if doc.Divorce.Deadlines[i].ID == c.done {
					doc.Divorce.Deadlines[i].Done = true
				}
			}
			return doc
		})
		fmt.Printf("Marked deadline %s as done\n", c.done)
	}

	doc := store.Document()
	if len(doc.Divorce.Deadlines) == 0 {
		fmt.Println("No deadlines yet. Generate them with: forg deadlines -build -filing <date>")
		return subcommands.ExitSuccess
	}
	for _, d := range doc.Divorce.Deadlines {
		mark := "[ ]"
		if d.Done {
			mark = "[x]"
		}
		fmt.Printf("%s %s  %s [%s]\n", mark, d.Date, d.Label, d.ID)
	}
	if next, ok := organizer.NextDeadline(doc, organizer.Today()); ok {
		fmt.Printf("\nNext up: %s on %s\n", next.Label, next.Date)
	}
	return subcommands.ExitSuccess
}

// loadRules reads a YAML offsets file into the override map.
func loadRules(path string) (map[string]int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rules map[string]int
	if err := yaml.Unmarshal(raw, &rules); err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", path, err)
	}
	return rules, nil
}
