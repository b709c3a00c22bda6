/*
Package handler provides the console command surface of the service.

This file defines the Console, a line-oriented dispatcher that maps commands
read from an input stream onto the social Service operations and prints either
the operation's result or its fixed error message.
*/
package handler

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"kith/internal/app/social"
	"kith/internal/pkg/logx"
)

// Console reads commands line by line and executes them against the Service.
type Console struct {
	svc    *social.Service
	cmdLog *logx.CommandLogger
	in     io.Reader
	out    io.Writer
}

// NewConsole constructs a Console reading from in and writing results to out.
func NewConsole(svc *social.Service, in io.Reader, out io.Writer) *Console {
	return &Console{
		svc:    svc,
		cmdLog: logx.NewCommandLogger(),
		in:     in,
		out:    out,
	}
}

// Run processes commands until the input ends, the quit command is received,
// or ctx is cancelled. It returns the input scanner's error, if any.
func (c *Console) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		args := splitArgs(line)
		command := args[0]

		if command == "quit" {
			return nil
		}

		c.cmdLog.Run(command, func() error {
			return c.dispatch(ctx, command, args[1:])
		})
	}

	return scanner.Err()
}

// dispatch executes one command. Business errors are printed with their fixed
// message and returned for the command logger.
func (c *Console) dispatch(ctx context.Context, command string, args []string) error {
	var err error

	switch command {
	case "createAccount":
		err = c.createAccount(args)
	case "getAttribute":
		err = c.getAttribute(args)
	case "openSession":
		err = c.openSession(args)
	case "editProfile":
		err = c.editProfile(args)
	case "isFriend":
		err = c.isFriend(args)
	case "addFriend":
		err = c.addFriend(args)
	case "getFriends":
		err = c.getFriends(args)
	case "sendMessage":
		err = c.sendMessage(args)
	case "readMessage":
		err = c.readMessage(args)
	case "reset":
		err = c.reset(ctx)
	default:
		err = fmt.Errorf("unknown command: %s", command)
		fmt.Fprintln(c.out, err.Error())
	}

	return err
}

func (c *Console) createAccount(args []string) error {
	if len(args) < 2 {
		return c.usage("createAccount <login> <password> [name]")
	}

	name := ""
	if len(args) > 2 {
		name = args[2]
	}

	if err := c.svc.CreateAccount(args[0], args[1], name); err != nil {
		return c.fail(err)
	}

	fmt.Fprintln(c.out, "OK")
	return nil
}

func (c *Console) getAttribute(args []string) error {
	if len(args) != 2 {
		return c.usage("getAttribute <login> <attribute>")
	}

	value, err := c.svc.Attribute(args[0], args[1])
	if err != nil {
		return c.fail(err)
	}

	fmt.Fprintln(c.out, value)
	return nil
}

func (c *Console) openSession(args []string) error {
	if len(args) != 2 {
		return c.usage("openSession <login> <password>")
	}

	token, err := c.svc.OpenSession(args[0], args[1])
	if err != nil {
		return c.fail(err)
	}

	fmt.Fprintln(c.out, token)
	return nil
}

func (c *Console) editProfile(args []string) error {
	if len(args) != 3 {
		return c.usage("editProfile <token> <attribute> <value>")
	}

	if err := c.svc.EditProfile(args[0], args[1], args[2]); err != nil {
		return c.fail(err)
	}

	fmt.Fprintln(c.out, "OK")
	return nil
}

func (c *Console) isFriend(args []string) error {
	if len(args) != 2 {
		return c.usage("isFriend <login> <friend>")
	}

	ok, err := c.svc.IsFriend(args[0], args[1])
	if err != nil {
		return c.fail(err)
	}

	fmt.Fprintln(c.out, ok)
	return nil
}

func (c *Console) addFriend(args []string) error {
	if len(args) != 2 {
		return c.usage("addFriend <token> <friend>")
	}

	if err := c.svc.AddFriend(args[0], args[1]); err != nil {
		return c.fail(err)
	}

	fmt.Fprintln(c.out, "OK")
	return nil
}

func (c *Console) getFriends(args []string) error {
	if len(args) != 1 {
		return c.usage("getFriends <login>")
	}

	list, err := c.svc.Friends(args[0])
	if err != nil {
		return c.fail(err)
	}

	fmt.Fprintln(c.out, FormatFriends(list))
	return nil
}

func (c *Console) sendMessage(args []string) error {
	if len(args) != 3 {
		return c.usage("sendMessage <token> <recipient> <message>")
	}

	if err := c.svc.SendMessage(args[0], args[1], args[2]); err != nil {
		return c.fail(err)
	}

	fmt.Fprintln(c.out, "OK")
	return nil
}

func (c *Console) readMessage(args []string) error {
	if len(args) != 1 {
		return c.usage("readMessage <token>")
	}

	body, err := c.svc.ReadMessage(args[0])
	if err != nil {
		return c.fail(err)
	}

	fmt.Fprintln(c.out, body)
	return nil
}

func (c *Console) reset(ctx context.Context) error {
	if err := c.svc.Reset(ctx); err != nil {
		return c.fail(err)
	}

	fmt.Fprintln(c.out, "OK")
	return nil
}

// fail prints the error's fixed user-facing message and passes the error on.
func (c *Console) fail(err error) error {
	fmt.Fprintln(c.out, userMessage(err))
	return err
}

func (c *Console) usage(usage string) error {
	err := fmt.Errorf("usage: %s", usage)
	fmt.Fprintln(c.out, err.Error())
	return err
}
