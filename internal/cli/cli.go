// Package cli Команды stcctl: топология домена, серверы и подсистемы профиля в виде таблиц.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/trsv-dev/simple-topology-console/internal/bootstrap"
	"github.com/trsv-dev/simple-topology-console/internal/columns"
	"github.com/trsv-dev/simple-topology-console/internal/config"
	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/environment"
	"github.com/trsv-dev/simple-topology-console/internal/finder"
	"github.com/trsv-dev/simple-topology-console/internal/place"
	"github.com/trsv-dev/simple-topology-console/internal/runtime"
)

// Форматы вывода таблиц.
const (
	FormatTable    = "table"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

// DispatcherFactory Создаёт диспетчер по конфигурации из флагов.
type DispatcherFactory func(cfg *config.Config) (dmr.Dispatcher, error)

type options struct {
	cfg    config.Config
	format string
}

// NewRootCommand Корневая команда stcctl.
func NewRootCommand(newDispatcher DispatcherFactory) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "stcctl",
		Short:         "Topology console command line client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch opts.format {
			case FormatTable, FormatCSV, FormatMarkdown:
				return nil
			default:
				return fmt.Errorf("неизвестный формат вывода `%s`", opts.format)
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.cfg.ManagementURL, "url", "m", "http://127.0.0.1:9990/management", "Management endpoint URL")
	flags.StringVarP(&opts.cfg.ManagementUser, "user", "u", "", "Management user")
	flags.StringVarP(&opts.cfg.ManagementPassword, "password", "p", "", "Management password")
	flags.DurationVar(&opts.cfg.ManagementTimeout, "timeout", 30*time.Second, "Management request timeout")
	flags.StringVarP(&opts.cfg.Transport, "transport", "t", config.TransportHTTP, "Management transport: http or winrm")
	flags.StringVar(&opts.cfg.WinRMHost, "winrm-host", "", "WinRM host running the management endpoint")
	flags.StringVar(&opts.cfg.WinRMUser, "winrm-user", "", "WinRM user")
	flags.StringVar(&opts.cfg.WinRMPassword, "winrm-password", "", "WinRM password")
	flags.StringVar(&opts.cfg.WinRMPort, "winrm-port", "5985", "WinRM port")
	flags.StringVarP(&opts.format, "output", "o", FormatTable, "Output format: table, csv or markdown")

	root.AddCommand(
		newTopologyCommand(opts, newDispatcher),
		newServersCommand(opts, newDispatcher),
		newSubsystemsCommand(opts, newDispatcher),
	)

	return root
}

// session Диспетчер и окружение management-сервера.
type session struct {
	dispatcher dmr.Dispatcher
	env        *environment.Environment
}

func connect(ctx context.Context, opts *options, newDispatcher DispatcherFactory) (*session, error) {
	d, err := newDispatcher(&opts.cfg)
	if err != nil {
		return nil, err
	}

	bc := &bootstrap.Context{}
	if err = bootstrap.Run(ctx, bc, bootstrap.NewReadEnvironment(d)); err != nil {
		return nil, err
	}

	return &session{dispatcher: d, env: bc.Environment}, nil
}

func newTopologyCommand(opts *options, newDispatcher DispatcherFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "topology",
		Short: "Hosts of the domain with their servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := connect(cmd.Context(), opts, newDispatcher)
			if err != nil {
				return err
			}
			if s.env.IsStandalone() {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "Standalone server: no domain topology")
				return err
			}

			hosts, err := runtime.NewFunctions(s.env, s.dispatcher).HostsWithServers(cmd.Context())
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), table.Row{"Host", "Server", "Group", "Status", "Server state"})
			for _, h := range hosts {
				host := h.Name
				if h.DomainController {
					host += " *"
				}
				if len(h.Servers) == 0 {
					t.AppendRow(table.Row{host, "-", "-", "-", "-"})
					continue
				}
				for _, srv := range h.Servers {
					t.AppendRow(table.Row{host, srv.Name(), srv.ServerGroup(), srv.Status, stateOf(srv)})
				}
			}
			render(t, opts.format)
			return nil
		},
	}
}

func newServersCommand(opts *options, newDispatcher DispatcherFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "servers PROFILE",
		Short: "Running servers using the profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := connect(cmd.Context(), opts, newDispatcher)
			if err != nil {
				return err
			}

			servers, err := runtime.NewFunctions(s.env, s.dispatcher).RunningServersOfProfile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), table.Row{"Host", "Server", "Group", "Server state", "Suspend state"})
			for _, srv := range servers {
				t.AppendRow(table.Row{srv.Host(), srv.Name(), srv.ServerGroup(), srv.ServerState, srv.SuspendState})
			}
			t.AppendFooter(table.Row{"", "", "", "Total", len(servers)})
			render(t, opts.format)
			return nil
		},
	}
}

func newSubsystemsCommand(opts *options, newDispatcher DispatcherFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "subsystems [PROFILE]",
		Short: "Subsystems of the profile (of the server in standalone mode)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := connect(cmd.Context(), opts, newDispatcher)
			if err != nil {
				return err
			}

			path := finder.Path{}
			if !s.env.IsStandalone() {
				if len(args) == 0 {
					return fmt.Errorf("в домене нужно указать профиль")
				}
				path = path.Append(columns.ProfileColumn, args[0])
			}

			f := columns.NewFinder(columns.Deps{
				Environment: s.env,
				Dispatcher:  s.dispatcher,
				Topology:    runtime.NewFunctions(s.env, s.dispatcher),
			})
			fc := finder.NewContext(place.Configuration, dmr.NewStatementContext(s.env.IsStandalone()))

			view, err := f.Render(cmd.Context(), fc, path, columns.SubsystemColumn, "")
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), table.Row{"Name", "Title", "Description"})
			for _, row := range view.Rows {
				t.AppendRow(table.Row{row.ID, row.Title, row.Subtitle})
			}
			t.AppendFooter(table.Row{"", "Total", view.Total})
			render(t, opts.format)
			return nil
		},
	}
}

func stateOf(srv *runtime.Server) string {
	if !srv.IsStarted() {
		return "-"
	}
	return string(srv.ServerState)
}

func newTable(out io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}

func render(t table.Writer, format string) {
	switch format {
	case FormatCSV:
		t.RenderCSV()
	case FormatMarkdown:
		t.RenderMarkdown()
	default:
		t.Render()
	}
}
