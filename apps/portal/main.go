package main

import (
	"bufio"
	"fmt"
	stdlog "log"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/scut1er/studentportal/api"
	"github.com/scut1er/studentportal/core"
	"github.com/scut1er/studentportal/core/router"
	"github.com/scut1er/studentportal/core/session"
	logsvc "github.com/scut1er/studentportal/services/logger"
	"github.com/scut1er/studentportal/storage/localstore"
)

var readPasswordFunc = term.ReadPassword // mockable

type commandLine struct {
	in      *bufio.Scanner
	eof     bool
	log     core.Logger
	session *session.Service
	router  *router.Router
	api     *api.Client
}

func main() {
	defer os.Exit(0)

	var log core.Logger
	if core.Conf.GetBool("debug") {
		log = logsvc.NewConsoleLogger()
	} else {
		log = logsvc.NewRollbarLogger(stdlog.New(os.Stderr, "PORTAL : ", stdlog.LstdFlags))
	}

	store, err := localstore.NewFileStore(core.Conf.GetString("stateDir"))
	errAndDie(log, err)

	sess := session.NewService(store)
	cli := commandLine{
		in:      bufio.NewScanner(os.Stdin),
		log:     log,
		session: sess,
		router:  router.New(sess),
		api:     api.NewClient(core.Conf.GetString("apiBaseURL"), sess.Token, log),
	}
	if err := cli.run(); err != nil {
		log.Fatal("portal exited", err)
	}
}

func errAndDie(log core.Logger, err error) {
	if err != nil {
		log.Fatal(err.Error())
	}
}

// run drives the view loop: whatever view the router resolves gets rendered
// until the user logs out or quits.
func (cli *commandLine) run() error {
	cli.router.Start()
	for !cli.eof {
		switch cli.router.CurrentView() {
		case router.ViewLogin:
			done, err := cli.loginView()
			if err != nil {
				fmt.Println("login failed:", apiErrMessage(err))
				continue
			}
			if done {
				return nil
			}
		case router.ViewStudent:
			cli.studentView()
		case router.ViewTeacher:
			cli.teacherView()
		case router.ViewAdmin:
			cli.adminView()
		}
	}
	return nil
}

// loginView prompts for credentials. Returns done=true when the user quits.
func (cli *commandLine) loginView() (bool, error) {
	fmt.Print("Email (empty to quit): ")
	if !cli.in.Scan() {
		return true, nil
	}
	email := core.CleanString(cli.in.Text(), true /* lower */)
	if email == "" {
		return true, nil
	}

	fmt.Print("Password: ")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return false, err
	}

	identity, err := cli.api.Auth().Login(ctx(), email, string(pwd))
	if err != nil {
		return false, err
	}
	if err := cli.router.OnLogin(identity); err != nil {
		return false, err
	}
	fmt.Printf("Welcome, %s (%s)\n", identity.FullName(), identity.Role)
	return false, nil
}

func (cli *commandLine) logout() {
	if err := cli.router.OnLogout(); err != nil {
		cli.log.Error("logout failed", err)
	}
}

// prompt reads one command line, split into the command and its argument.
func (cli *commandLine) prompt(view string) (string, string, bool) {
	fmt.Printf("%s> ", view)
	if !cli.in.Scan() {
		cli.eof = true
		return "", "", false
	}
	fields := strings.Fields(cli.in.Text())
	switch len(fields) {
	case 0:
		return "", "", true
	case 1:
		return fields[0], "", true
	default:
		return fields[0], fields[1], true
	}
}

func apiErrMessage(err error) string {
	if apiErr, ok := err.(*api.Error); ok {
		return apiErr.Message
	}
	return err.Error()
}
