package main

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/minimallymodern/homesite"
	"github.com/minimallymodern/homesite/mount"
)

var (
	renderRoom     string
	renderFragment string
)

var renderCmd = &cobra.Command{
	Use:       "render <home|room>",
	Short:     "Fetch posts and print a rendered page to stdout",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"home", "room"},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, ok := mount.ParseKind(args[0])
		if !ok || (kind != mount.KindHome && kind != mount.KindRoom) {
			return fmt.Errorf("unknown page %q, want home or room", args[0])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		app, err := homesite.New(cfg)
		if err != nil {
			return err
		}
		defer app.Close()

		loc := &url.URL{Path: "/index.html"}
		if kind == mount.KindRoom {
			loc = &url.URL{
				Path:     "/room.html",
				RawQuery: url.Values{"room": {renderRoom}}.Encode(),
				Fragment: renderFragment,
			}
		}

		page, kind, state := app.MountPage(cmd.Context(), loc)
		if state == mount.StateError {
			return fmt.Errorf("%s page: fetching posts failed", kind)
		}
		view, err := app.PageView(kind, page, nil)
		if err != nil {
			return err
		}
		return view.Render(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderRoom, "room", "living-room", "room to render")
	renderCmd.Flags().StringVar(&renderFragment, "fragment", "", "post slug to scroll to")
	rootCmd.AddCommand(renderCmd)
}
