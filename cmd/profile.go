package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/casefin/organizer"
	"github.com/google/subcommands"
)

type profileCmd struct {
	name         string
	email        string
	jurisdiction string
	accept       bool
	notes        string
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "show or update the profile" }
func (*profileCmd) Usage() string {
	return `forg profile [-name <name>] [-email <email>] [-jurisdiction <state>] [-accept-disclaimer] [-notes <text>]

  Without flags, shows the profile. With flags, updates the given fields.
  Changing the jurisdiction does not retroactively change the case filing
  state.

Usage Examples:
$ forg profile -name "Pat Doe" -jurisdiction AZ -accept-disclaimer
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Full name shown on reports")
	f.StringVar(&c.email, "email", "", "Email address")
	f.StringVar(&c.jurisdiction, "jurisdiction", "", "Home jurisdiction (state)")
	f.BoolVar(&c.accept, "accept-disclaimer", false, "Record acceptance of the not-legal-advice disclaimer")
	f.StringVar(&c.notes, "notes", "", "Replace the free-form notes")
}

func (c *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	defer CloseStore(store)

	if c.name != "" || c.email != "" || c.jurisdiction != "" || c.accept || c.notes != "" {
		store.Set(func(doc organizer.Document) organizer.Document {
			if c.name != "" {
				doc.Profile.FullName = c.name
			}
			if c.email != "" {
				doc.Profile.Email = c.email
			}
			if c.jurisdiction != "" {
				doc.Profile.Jurisdiction = c.jurisdiction
			}
			if c.accept {
				doc.Profile.DisclaimerAccepted = true
			}
			if c.notes != "" {
				doc.Notes = c.notes
			}
			return doc
		})
	}

	doc := store.Document()
	fmt.Printf("Name: %s\nEmail: %s\nJurisdiction: %s\nDisclaimer accepted: %v\n",
		doc.Profile.FullName, doc.Profile.Email, doc.Profile.Jurisdiction, doc.Profile.DisclaimerAccepted)
	if doc.Notes != "" {
		fmt.Printf("Notes: %s\n", doc.Notes)
	}
	return subcommands.ExitSuccess
}
