package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/webdav-client/internal/client"
	"github.com/webdav-client/internal/config"
	"github.com/webdav-client/internal/types"
)

func newRootCommand(dav *client.Client, cfg *config.Config, logger *logrus.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "davctl",
		Short:         "WebDAV command line client",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newListCommand(dav),
		newStatCommand(dav),
		newGetCommand(dav),
		newPutCommand(dav),
		newMkdirCommand(dav),
		newRemoveCommand(dav),
		newCopyCommand(dav),
		newMoveCommand(dav),
		newLockCommand(dav, cfg),
		newUnlockCommand(dav),
	)
	return root
}

// checkResponse 非2xx不是错误通道：按成功标记分支并转成退出错误
func checkResponse(response types.OperationResponse) error {
	if !response.IsSuccessful() {
		return fmt.Errorf("server returned %d %s", response.StatusCode, response.Description)
	}
	return nil
}

func newListCommand(dav *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "ls <path>",
		Short: "List collection members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := dav.Propfind(cmd.Context(), args[0], types.ApplyToResourceAndChildren)
			if err != nil {
				return err
			}
			if err := checkResponse(response.OperationResponse); err != nil {
				return err
			}
			for _, resource := range response.Resources {
				marker := " "
				if resource.IsCollection {
					marker = "d"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, resource.Href)
			}
			return nil
		},
	}
}

func newStatCommand(dav *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "stat <path>",
		Short: "Show resource properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := dav.Propfind(cmd.Context(), args[0], types.ApplyToResourceOnly)
			if err != nil {
				return err
			}
			if err := checkResponse(response.OperationResponse); err != nil {
				return err
			}
			if len(response.Resources) == 0 {
				return fmt.Errorf("no resource information for %s", args[0])
			}
			resource := response.Resources[0]
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "href:         %s\n", resource.Href)
			fmt.Fprintf(out, "collection:   %v\n", resource.IsCollection)
			if resource.DisplayName != "" {
				fmt.Fprintf(out, "display name: %s\n", resource.DisplayName)
			}
			if resource.ContentType != "" {
				fmt.Fprintf(out, "content type: %s\n", resource.ContentType)
			}
			if resource.ContentLength != nil {
				fmt.Fprintf(out, "length:       %d\n", *resource.ContentLength)
			}
			if resource.ETag != "" {
				fmt.Fprintf(out, "etag:         %s\n", resource.ETag)
			}
			if resource.LastModifiedDate != nil {
				fmt.Fprintf(out, "modified:     %s\n", resource.LastModifiedDate.Format(time.RFC3339))
			}
			for _, lock := range resource.ActiveLocks {
				fmt.Fprintf(out, "lock:         %s (%s)\n", lock.Token, lock.Scope)
			}
			return nil
		},
	}
}

func newGetCommand(dav *client.Client) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Download resource content to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := dav.Get(cmd.Context(), args[0], raw)
			if err != nil {
				return err
			}
			if err := checkResponse(response.OperationResponse); err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(response.Body)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "request the unprocessed source file (Translate: t)")
	return cmd
}

func newPutCommand(dav *client.Client) *cobra.Command {
	var lockTokens []string
	cmd := &cobra.Command{
		Use:   "put <local-file> <path>",
		Short: "Upload a local file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var reader io.Reader
			if args[0] == "-" {
				reader = cmd.InOrStdin()
			} else {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				reader = file
			}
			response, err := dav.Put(cmd.Context(), args[1], reader, lockTokens...)
			if err != nil {
				return err
			}
			return checkResponse(*response)
		},
	}
	cmd.Flags().StringArrayVar(&lockTokens, "lock-token", nil, "lock token for the target resource")
	return cmd
}

func newMkdirCommand(dav *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := dav.Mkcol(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return checkResponse(*response)
		},
	}
}

func newRemoveCommand(dav *client.Client) *cobra.Command {
	var lockTokens []string
	cmd := &cobra.Command{
		Use:   "rm <path>",
		Short: "Delete a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := dav.Delete(cmd.Context(), args[0], lockTokens...)
			if err != nil {
				return err
			}
			return checkResponse(*response)
		},
	}
	cmd.Flags().StringArrayVar(&lockTokens, "lock-token", nil, "lock token for the target resource")
	return cmd
}

func newCopyCommand(dav *client.Client) *cobra.Command {
	var overwrite bool
	var shallow bool
	cmd := &cobra.Command{
		Use:   "cp <source> <destination>",
		Short: "Copy a resource",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyTo := types.ApplyToResourceAndDescendants
			if shallow {
				applyTo = types.ApplyToResourceOnly
			}
			response, err := dav.Copy(cmd.Context(), args[0], args[1], applyTo, overwrite)
			if err != nil {
				return err
			}
			return checkResponse(*response)
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite the destination if it exists")
	cmd.Flags().BoolVar(&shallow, "shallow", false, "copy the resource without descendants")
	return cmd
}

func newMoveCommand(dav *client.Client) *cobra.Command {
	var overwrite bool
	var lockTokens []string
	cmd := &cobra.Command{
		Use:   "mv <source> <destination>",
		Short: "Move a resource",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := dav.Move(cmd.Context(), args[0], args[1], overwrite, lockTokens...)
			if err != nil {
				return err
			}
			return checkResponse(*response)
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite the destination if it exists")
	cmd.Flags().StringArrayVar(&lockTokens, "lock-token", nil, "lock token for the source resource")
	return cmd
}

func newLockCommand(dav *client.Client, cfg *config.Config) *cobra.Command {
	var shared bool
	var deep bool
	var owner string
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "lock <path>",
		Short: "Lock a resource and print the lock token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parameters := types.LockParameters{
				Scope:   types.LockScopeExclusive,
				Owner:   owner,
				ApplyTo: types.ApplyToResourceOnly,
			}
			if shared {
				parameters.Scope = types.LockScopeShared
			}
			if deep {
				parameters.ApplyTo = types.ApplyToResourceAndDescendants
			}
			if timeout > 0 {
				parameters.Timeout = &timeout
			}
			response, err := dav.Lock(cmd.Context(), args[0], parameters)
			if err != nil {
				return err
			}
			if err := checkResponse(response.OperationResponse); err != nil {
				return err
			}
			for _, lock := range response.ActiveLocks {
				fmt.Fprintln(cmd.OutOrStdout(), lock.Token)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&shared, "shared", false, "request a shared lock instead of exclusive")
	cmd.Flags().BoolVar(&deep, "deep", false, "lock the resource and all descendants")
	cmd.Flags().StringVar(&owner, "owner", "", "lock owner identification")
	cmd.Flags().DurationVar(&timeout, "timeout", cfg.Client.DefaultLockTimeout, "requested lock timeout")
	return cmd
}

func newUnlockCommand(dav *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "unlock <path> <token>",
		Short: "Release a lock",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := dav.Unlock(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return checkResponse(*response)
		},
	}
}
