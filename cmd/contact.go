package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/casefin/organizer"
	"github.com/google/subcommands"
)

type contactCmd struct {
	name  string
	email string
	phone string
	role  string
	csv   string
}

func (*contactCmd) Name() string     { return "contact" }
func (*contactCmd) Synopsis() string { return "list or add case contacts" }
func (*contactCmd) Usage() string {
	return `forg contact [-name <name> [-email <email>] [-phone <phone>] [-role <role>]]
forg contact -csv <file>

  Without flags, lists the case contacts. With -name, adds one contact.
  With -csv, imports contacts from a CSV file with the header
  name,email,phone,role.

Usage Examples:
$ forg contact -name "Dana Smith" -email dana@example.com -role attorney
$ forg contact -csv contacts.csv
`
}

func (c *contactCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Contact name")
	f.StringVar(&c.email, "email", "", "Contact email")
	f.StringVar(&c.phone, "phone", "", "Contact phone")
	f.StringVar(&c.role, "role", "attorney", "Contact role (attorney, paralegal, mediator...)")
	f.StringVar(&c.csv, "csv", "", "CSV file to import contacts from")
}

func (c *contactCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	defer CloseStore(store)

	switch {
	case c.csv != "":
		file, err := os.Open(c.csv)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.csv, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		contacts, err := organizer.ImportContactsCSV(file, store.IDs())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing contacts: %v\n", err)
			return subcommands.ExitFailure
		}
		store.Set(func(doc organizer.Document) organizer.Document {
			doc.Divorce.Contacts = append(doc.Divorce.Contacts, contacts...)
			return doc
		})
		fmt.Printf("Imported %d contacts from %s\n", len(contacts), c.csv)

	case c.name != "":
		contact := organizer.Contact{
			ID:    store.IDs().NewID(),
			Name:  c.name,
			Email: c.email,
			Phone: c.phone,
			Role:  strings.ToLower(c.role),
		}
		store.Set(func(doc organizer.Document) organizer.Document {
			doc.Divorce.Contacts = append(doc.Divorce.Contacts, contact)
			return doc
		})
		fmt.Printf("Added contact %q (%s)\n", contact.Name, contact.Role)

	default:
		doc := store.Document()
		if len(doc.Divorce.Contacts) == 0 {
			fmt.Println("No contacts yet. Add one with: forg contact -name <name>")
			return subcommands.ExitSuccess
		}
		for _, contact := range doc.Divorce.Contacts {
			fmt.Printf("%s  %s <%s> %s [%s]\n", contact.Role, contact.Name, contact.Email, contact.Phone, contact.ID)
		}
	}
	return subcommands.ExitSuccess
}
