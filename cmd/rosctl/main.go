package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/rickicode/mikrotik-billing/internal/constants"
	"github.com/rickicode/mikrotik-billing/internal/entities"
	"github.com/rickicode/mikrotik-billing/internal/mq"
	"github.com/rickicode/mikrotik-billing/internal/objects/dto"
)

type options struct {
	url     string
	prefix  string
	timeout time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "rosctl",
		Short:         "Operate the billing device service over the message broker",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.url, "nats", nats.DefaultURL, "message broker url")
	root.PersistentFlags().StringVar(&opts.prefix, "prefix", constants.DefaultMQSubjectPrefix, "subject prefix of the service")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")

	root.AddCommand(
		newInfoCmd(opts),
		newHealthCmd(opts),
		newReloadCmd(opts),
		newSyncCmd(opts),
		newExecCmd(opts),
		newUsersCmd(opts),
	)

	return root
}

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the device connection state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var resp struct {
				mq.Response
				Info entities.ConnectionInfo `json:"info"`
			}
			if err := request(opts, constants.MQRouterInfo, nil, &resp); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatConnectionInfo(resp.Info))
			return nil
		},
	}
}

func newHealthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe the device, reconnecting it when offline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var resp struct {
				mq.Response
				Health entities.HealthStatus `json:"health"`
			}
			if err := request(opts, constants.MQRouterHealth, nil, &resp); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "healthy: %t\nmessage: %s\n", resp.Health.Healthy, resp.Health.Message)
			return nil
		},
	}
}

func newReloadCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Reload the device settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var resp struct {
				mq.Response
				Info entities.ConnectionInfo `json:"info"`
			}
			if err := request(opts, constants.MQRouterReload, nil, &resp); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatConnectionInfo(resp.Info))
			return nil
		},
	}
}

func newSyncCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run a reconciliation pass",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var resp struct {
				mq.Response
				Report entities.SyncReport `json:"report"`
			}
			if err := request(opts, constants.MQRouterSync, nil, &resp); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatSyncReport(resp.Report))
			return nil
		},
	}
}

func newExecCmd(opts *options) *cobra.Command {
	var noCache bool

	c := &cobra.Command{
		Use:     "exec PATH [KEY=VALUE...]",
		Short:   "Execute a device command",
		Example: "rosctl exec /ip/hotspot/user/print ?profile=1h",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			reply, err := execute(opts, dto.CommandRequest{Path: args[0], Params: params, NoCache: noCache})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatReply(reply))
			return nil
		},
	}
	c.Flags().BoolVar(&noCache, "no-cache", false, "bypass the response cache")

	return c
}

func newUsersCmd(opts *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "users",
		Short: "List device users",
	}

	list := func(use, short, path string, columns []string) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				reply, err := execute(opts, dto.CommandRequest{Path: path + "/print", NoCache: true})
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), formatRows(reply.Rows, columns))
				if reply.Offline {
					fmt.Fprintln(cmd.OutOrStdout(), "device is offline, the list may be incomplete")
				}
				return nil
			},
		}
	}

	c.AddCommand(
		list("hotspot", "List hotspot users", constants.PathHotspotUser, []string{"name", "profile", "disabled", "comment"}),
		list("active", "List active hotspot sessions", constants.PathHotspotActive, []string{"user", "address", "mac-address", "uptime"}),
		list("pppoe", "List PPPoE secrets", constants.PathPPPSecret, []string{"name", "profile", "service", "disabled", "comment"}),
	)

	return c
}

func execute(opts *options, cmd dto.CommandRequest) (reply dto.Reply, err error) {
	var resp struct {
		mq.Response
		Reply dto.Reply `json:"reply"`
	}
	if err = request(opts, constants.MQRouterExecute, cmd, &resp); err != nil {
		return reply, err
	}

	return resp.Reply, nil
}

// request sends a request to the service and decodes the reply into out.
// out must embed mq.Response.
func request(opts *options, name string, message any, out interface{ Error() error }) (err error) {
	svc := mq.NewService(opts.url, opts.prefix)
	if err = svc.Connect(); err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer svc.Close()

	msg, err := svc.Request(svc.Subject(name), message, opts.timeout)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}

	if err = json.Unmarshal(msg.Data, out); err != nil {
		return fmt.Errorf("request: %w", err)
	}

	return out.Error()
}

func parseParams(args []string) (params []dto.Param, err error) {
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("parseParams: %q is not KEY=VALUE", arg)
		}

		params = append(params, dto.Param{Key: key, Value: value})
	}

	return params, nil
}
