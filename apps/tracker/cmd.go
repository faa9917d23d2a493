package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/jakmauu/tutam9-frontend/core"
	"github.com/jakmauu/tutam9-frontend/core/assignment"
	"github.com/jakmauu/tutam9-frontend/core/session"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp        = errors.New("help provided")
	errNotLoggedIn = errors.New("not logged in; run the login command first")
)

type commandLine struct {
	sess  *session.Session
	board *assignment.Board
	log   core.Logger

	in  io.Reader
	out io.Writer

	// visible mirrors the last rendered schedule, flattened, so planner
	// commands can address records by number
	visible []assignment.Assignment
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  register -username USERNAME -email EMAIL - create an account; the password is prompted")
	fmt.Fprintln(cli.out, "  login -username USERNAME                 - log in; the password is prompted")
	fmt.Fprintln(cli.out, "  logout                                   - log out and forget the stored token")
	fmt.Fprintln(cli.out, "  whoami                                   - print the logged-in user")
	fmt.Fprintln(cli.out, "  plan [-day DAY]                          - open the interactive day planner")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	registerCmd := flag.NewFlagSet("register", flag.ExitOnError)
	registerUname := registerCmd.String("username", "", "The new account's username. The password will be prompted next.")
	registerEmail := registerCmd.String("email", "", "The new account's email.")

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginUname := loginCmd.String("username", "", "The user's username. The password will be prompted next.")

	planCmd := flag.NewFlagSet("plan", flag.ExitOnError)
	planDay := planCmd.String("day", "", "The day to open; defaults to today.")

	switch args[1] {
	case "register":
		if err := registerCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *registerUname == "" || *registerEmail == "" {
			registerCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword("Enter password:")
		if err != nil {
			return err
		}
		confirm, err := cli.promptPassword("Confirm password:")
		if err != nil {
			return err
		}
		if err := matchPasswords(pwd, confirm); err != nil {
			cli.renderFieldErrors(core.FieldErrors(err))
			return errHelp
		}
		return cli.register(ctx, *registerUname, *registerEmail, pwd)
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginUname == "" {
			loginCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword("Enter password:")
		if err != nil {
			return err
		}
		return cli.login(ctx, *loginUname, pwd)
	case "logout":
		return cli.logout()
	case "whoami":
		return cli.whoami()
	case "plan":
		if err := planCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.plan(ctx, *planDay)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) promptPassword(prompt string) (string, error) {
	fmt.Fprint(cli.out, prompt)
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}

// matchPasswords turns a blank or mismatched confirmation into a field
// error so it renders next to the other registration fields.
func matchPasswords(pwd, confirm string) error {
	switch {
	case pwd == "":
		return core.NewValidationError(errors.New("password required"),
			core.FieldError{Field: "password", Error: "this field is required"})
	case pwd != confirm:
		return core.NewValidationError(errors.New("password mismatch"),
			core.FieldError{Field: "password", Error: "passwords do not match"})
	}
	return nil
}

func (cli *commandLine) register(ctx context.Context, uname, email, pwd string) error {
	acc := session.NewAccount{Username: uname, Email: email, Password: pwd}
	if err := cli.sess.Register(ctx, acc); err != nil {
		if core.IsValidationError(err) {
			cli.renderFieldErrors(core.FieldErrors(err))
			return errHelp
		}
		return err
	}
	ident, _ := cli.sess.Current()
	fmt.Fprintf(cli.out, "Welcome, %s!\n", ident.Username)
	return nil
}

func (cli *commandLine) login(ctx context.Context, uname, pwd string) error {
	creds := session.Credentials{Username: uname, Password: pwd}
	if err := cli.sess.Login(ctx, creds); err != nil {
		if core.IsValidationError(err) {
			cli.renderFieldErrors(core.FieldErrors(err))
			return errHelp
		}
		return err
	}
	ident, _ := cli.sess.Current()
	fmt.Fprintf(cli.out, "Logged in as %s.\n", ident.Username)
	return nil
}

func (cli *commandLine) logout() error {
	if err := cli.sess.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Logged out.")
	return nil
}

func (cli *commandLine) whoami() error {
	ident, ok := cli.sess.Current()
	if !ok {
		return errNotLoggedIn
	}
	fmt.Fprintln(cli.out, ident.Username)
	return nil
}
