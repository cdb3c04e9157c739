package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	echoweb "github.com/trezcool/masterly/apps/web/echo"
	"github.com/trezcool/masterly/core/audit"
	"github.com/trezcool/masterly/core/certificate"
	"github.com/trezcool/masterly/core/course"
	"github.com/trezcool/masterly/core/listing"
	"github.com/trezcool/masterly/core/submission"
	"github.com/trezcool/masterly/core/user"
)

var (
	isTerminalFunc = term.IsTerminal // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	opts   *echoweb.Options
	routes func() []echoweb.Route
	out    io.Writer
	outFd  int
}

func (cli *commandLine) run(args []string) error {
	root := cli.rootCmd()
	root.SetArgs(args[1:])
	return root.ExecuteContext(context.Background())
}

func (cli *commandLine) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Inspect the platform from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errHelp
		},
	}
	root.SetOut(cli.out)
	root.SetErr(cli.out)

	root.AddCommand(&cobra.Command{
		Use:   "routes",
		Short: "List every route served by the web app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			routes := cli.routes()
			return cli.print(routes, []string{"METHOD", "PATH"}, len(routes), func(i int) []string {
				return []string{routes[i].Method, routes[i].Path}
			}, "")
		},
	})
	root.AddCommand(cli.listCmd())
	return root
}

func (cli *commandLine) listCmd() *cobra.Command {
	list := &cobra.Command{
		Use:   "list",
		Short: "Query an admin list with the same filters as the console",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errHelp
		},
	}

	var users user.QueryFilter
	usersCmd := listCommand(cli, "users", "user", cli.opts.UserSvc.Query, &users, &users.Search,
		[]string{"ID", "NAME", "EMAIL", "STATUS", "PLAN", "PROGRESS"},
		func(u user.User) []string {
			return []string{strconv.Itoa(u.ID), u.Name, u.Email, u.Status, u.Plan, fmt.Sprintf("%d%%", u.Progress)}
		})
	usersCmd.Flags().StringVar(&users.Status, "status", listing.All, "account status")
	usersCmd.Flags().StringVar(&users.Plan, "plan", listing.All, "subscription plan")

	var courses course.QueryFilter
	coursesCmd := listCommand(cli, "courses", "course", cli.opts.CourseSvc.Query, &courses, &courses.Search,
		[]string{"ID", "TITLE", "LEVEL", "STATUS", "ENROLLED"},
		func(c course.Course) []string {
			return []string{strconv.Itoa(c.ID), c.Title, c.Level, c.Status, strconv.Itoa(c.Enrolled)}
		})
	coursesCmd.Flags().StringVar(&courses.Status, "status", listing.All, "publication status")
	coursesCmd.Flags().StringVar(&courses.Level, "level", listing.All, "difficulty level")

	var certs certificate.QueryFilter
	certsCmd := listCommand(cli, "certifications", "certificate", cli.opts.CertificateSvc.Query, &certs, &certs.Search,
		[]string{"ID", "USER", "COURSE", "ISSUED", "STATUS", "GRADE"},
		func(c certificate.Certificate) []string {
			return []string{c.ID, c.User, c.Course, c.IssuedDate, c.Status, c.Grade}
		})
	certsCmd.Flags().StringVar(&certs.Status, "status", listing.All, "certificate status")
	certsCmd.Flags().StringVar(&certs.Course, "course", listing.All, "course title")

	var subs submission.QueryFilter
	subsCmd := listCommand(cli, "submissions", "submission", cli.opts.SubmissionSvc.Query, &subs, &subs.Search,
		[]string{"ID", "USER", "PROJECT", "SUBMITTED", "STATUS", "GRADE"},
		func(s submission.Submission) []string {
			return []string{strconv.Itoa(s.ID), s.User, s.Project, s.Submitted, s.Status, s.Grade}
		})
	subsCmd.Flags().StringVar(&subs.Status, "status", listing.All, "review status")

	var events audit.QueryFilter
	eventsCmd := listCommand(cli, "security", "event", cli.opts.AuditSvc.Query, &events, &events.Search,
		[]string{"ID", "USER", "ACTION", "IP", "TIMESTAMP", "STATUS"},
		func(e audit.Event) []string {
			return []string{strconv.Itoa(e.ID), e.User, e.Action, e.IP, e.Timestamp, e.Status}
		})
	eventsCmd.Flags().StringVar(&events.Action, "action", listing.All, "action (substring match)")

	list.AddCommand(usersCmd, coursesCmd, certsCmd, subsCmd, eventsCmd)
	return list
}

func listCommand[T, F any](
	cli *commandLine,
	name, noun string,
	query func(context.Context, F) (listing.Page[T], error),
	filter *F,
	search *string,
	header []string,
	row func(T) []string,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: "List " + name,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := query(cmd.Context(), *filter)
			if err != nil {
				return err
			}
			return cli.print(page, header, page.Count, func(i int) []string { return row(page.Items[i]) },
				page.Summary(noun+"s"))
		},
	}
	cmd.Flags().StringVar(search, "search", "", "free-text search")
	return cmd
}

// print writes a table when stdout is a terminal, JSON otherwise.
func (cli *commandLine) print(v interface{}, header []string, n int, row func(i int) []string, caption string) error {
	if !isTerminalFunc(cli.outFd) {
		enc := json.NewEncoder(cli.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for i := 0; i < n; i++ {
		fmt.Fprintln(tw, strings.Join(row(i), "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if caption != "" {
		fmt.Fprintln(cli.out, caption)
	}
	return nil
}
