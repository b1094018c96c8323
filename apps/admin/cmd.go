package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/eddigit/academie-levinet-ok-sub000/core"
	"github.com/eddigit/academie-levinet-ok-sub000/core/country"
	"github.com/eddigit/academie-levinet-ok-sub000/core/person"
	"github.com/eddigit/academie-levinet-ok-sub000/core/phone"
)

var (
	isTerminalFunc = isTerminal // mockable

	errHelp = errors.New("help provided")

	labelStyle = lipgloss.NewStyle().Bold(true).Width(12)
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type commandLine struct {
	conf *core.Config
	out  io.Writer
	json bool
}

func (cli *commandLine) run(args []string) error {
	root := cli.newRootCmd()
	if len(args) < 2 {
		_ = root.Help()
		return errHelp
	}
	root.SetArgs(args[1:])
	return root.Execute()
}

func (cli *commandLine) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Format member names, avatars, phones and countries the way the academy displays them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(cli.out)
	root.SetErr(cli.out)
	root.PersistentFlags().BoolVar(&cli.json, "json", false, "Print JSON, even on a terminal")

	root.AddCommand(
		cli.newNameCmd(),
		cli.newPhoneCmd(),
		cli.newAvatarCmd(),
		cli.newFlagCmd(),
	)
	return root
}

func (cli *commandLine) newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "name NAME...",
		Short:   "Print every display form of a name",
		Example: "  admin name jean-pierre dupont",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			forms := person.Forms(strings.Join(args, " "))
			return cli.print(forms, []row{
				{"first name", forms.FirstName},
				{"last name", forms.LastName},
				{"full name", forms.FullName},
				{"list name", forms.ListName},
				{"initials", forms.Initials},
			})
		},
	}
}

type phoneResult struct {
	Formatted string `json:"formatted"`
	Prefix    string `json:"prefix"`
	Country   string `json:"country"`
}

func (cli *commandLine) newPhoneCmd() *cobra.Command {
	var countryCode string

	cmd := &cobra.Command{
		Use:     "phone NUMBER",
		Short:   "Format a phone number",
		Example: "  admin phone 06 12 34 56 78 --country FR",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.ToUpper(core.CleanString(countryCode))
			if code == "" {
				code = cli.conf.DefaultCountry
			}
			if !core.IsASCIILetters(code, 2) {
				return core.NewValidationError(nil, core.FieldError{Field: "country", Error: "must be a two-letter country code"})
			}

			res := phoneResult{
				Formatted: phone.Format(strings.Join(args, ""), code),
				Prefix:    phone.Prefix(code),
				Country:   code,
			}
			return cli.print(res, []row{
				{"formatted", res.Formatted},
				{"prefix", res.Prefix},
				{"country", res.Country},
			})
		},
	}
	cmd.Flags().StringVarP(&countryCode, "country", "c", "", "Two-letter country code (default from config)")
	return cmd
}

func (cli *commandLine) newAvatarCmd() *cobra.Command {
	var (
		p    person.Person
		size string
	)

	cmd := &cobra.Command{
		Use:     "avatar",
		Short:   "Print the initials & colors drawn for a person without a photo",
		Example: "  admin avatar --first-name Jean --last-name Dupont",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size != "" && !person.ValidSize(size) {
				return core.NewValidationError(nil, core.FieldError{Field: "size", Error: "must be one of xs, sm, md, lg, xl"})
			}
			id := person.Avatar(&p, size, nil)
			return cli.print(id, []row{
				{"initials", id.Initials},
				{"color", id.Color.Class()},
				{"alt", id.Alt},
				{"size", id.Size},
				{"photo", id.PhotoURL},
			})
		},
	}
	cmd.Flags().StringVar(&p.FullName, "full-name", "", "Full name, first names then surname")
	cmd.Flags().StringVar(&p.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&p.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&p.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&p.PhotoURL, "photo", "", "Photo URL")
	cmd.Flags().StringVar(&size, "size", "", "Avatar size: xs, sm, md, lg or xl")
	return cmd
}

func (cli *commandLine) newFlagCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "flag CODE|NAME",
		Short:   "Find a country by code or name",
		Example: "  admin flag BE\n  admin flag côte d'ivoire",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := strings.Join(args, " ")
			c, ok := country.ByCode(q)
			if !ok {
				c, ok = country.ByName(q)
			}
			if !ok {
				return errors.Errorf("no country matches %q", q)
			}
			return cli.print(c, []row{
				{"code", c.Code},
				{"name", c.Name},
				{"flag", c.Flag},
			})
		},
	}
}

type row struct {
	label string
	value string
}

// print writes v as JSON, or rows as aligned text when writing to a terminal.
func (cli *commandLine) print(v interface{}, rows []row) error {
	if cli.json || !isTerminalFunc(cli.out) {
		enc := json.NewEncoder(cli.out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encoding output")
	}

	for _, r := range rows {
		if _, err := fmt.Fprintln(cli.out, labelStyle.Render(r.label)+r.value); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	return nil
}
