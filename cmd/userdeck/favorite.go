package main

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/userdeck/cmd"
	"github.com/cristianoliveira/userdeck/internal/colors"
	"github.com/cristianoliveira/userdeck/internal/domain"
	"github.com/cristianoliveira/userdeck/internal/hooks"
	"github.com/cristianoliveira/userdeck/internal/store"
	"github.com/spf13/cobra"
)

// favoriteAction names how a favorite command changes the flag.
type favoriteAction int

const (
	favoriteSet favoriteAction = iota
	favoriteUnset
	favoriteToggle
)

// NewFavoriteCmd creates the favorite command with explicit dependencies.
func NewFavoriteCmd(open clientOpener) *cobra.Command {
	return newFavoriteCmd(open, favoriteSet, "favorite <id>", "Mark a user as favorite")
}

// NewUnfavoriteCmd creates the unfavorite command with explicit dependencies.
func NewUnfavoriteCmd(open clientOpener) *cobra.Command {
	return newFavoriteCmd(open, favoriteUnset, "unfavorite <id>", "Remove a user from favorites")
}

// NewToggleFavoriteCmd creates the toggle-favorite command with explicit dependencies.
func NewToggleFavoriteCmd(open clientOpener) *cobra.Command {
	return newFavoriteCmd(open, favoriteToggle, "toggle-favorite <id>", "Flip the favorite flag of a user")
}

func newFavoriteCmd(open clientOpener, action favoriteAction, use, short string) *cobra.Command {
	if open == nil {
		panic("newFavoriteCmd: open dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := domain.ParseUserID(args[0])
			if err != nil {
				return err
			}

			client, err := open(c.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			favorite, err := ChangeFavorite(c.Context(), client, id, action)
			if err != nil {
				return err
			}
			user, _ := client.UserByID(id)
			if favorite {
				colors.Success(fmt.Sprintf("%s is a favorite", user.DisplayName()))
			} else {
				colors.Success(fmt.Sprintf("%s is not a favorite", user.DisplayName()))
			}
			return nil
		},
	}
}

// ChangeFavorite applies action to the favorite flag of id and returns the
// resulting flag.
func ChangeFavorite(ctx context.Context, client userClient, id int, action favoriteAction) (bool, error) {
	user, ok := client.UserByID(id)
	if !ok {
		return false, fmt.Errorf("user %d: %w", id, domain.ErrUserNotFound)
	}

	want := action == favoriteSet
	if action == favoriteToggle {
		want = !client.IsFavorite(id)
	}

	command := store.RemoveFavorite(id)
	if want {
		command = store.SetFavorite(id)
	}
	if err := client.Apply(ctx, command); err != nil {
		return false, err
	}

	hookPoint := hooks.PostUnfavorite
	if want {
		hookPoint = hooks.PostFavorite
	}
	if err := hooks.Run(ctx, hookPoint, userHookEnv(user)...); err != nil {
		return want, fmt.Errorf("%s hook: %w", hookPoint, err)
	}
	return want, nil
}

func init() {
	cmd.RootCmd.AddCommand(NewFavoriteCmd(defaultOpener))
	cmd.RootCmd.AddCommand(NewUnfavoriteCmd(defaultOpener))
	cmd.RootCmd.AddCommand(NewToggleFavoriteCmd(defaultOpener))
}
