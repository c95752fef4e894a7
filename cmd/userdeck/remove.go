package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cristianoliveira/userdeck/cmd"
	"github.com/cristianoliveira/userdeck/internal/colors"
	"github.com/cristianoliveira/userdeck/internal/domain"
	"github.com/cristianoliveira/userdeck/internal/hooks"
	"github.com/cristianoliveira/userdeck/internal/store"
	"github.com/spf13/cobra"
)

// NewRemoveCmd creates the remove command with explicit dependencies.
func NewRemoveCmd(open clientOpener) *cobra.Command {
	if open == nil {
		panic("NewRemoveCmd: open dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a user and its favorite flag",
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

			user, err := RemoveUser(c.Context(), client, id)
			if err != nil {
				return err
			}
			colors.Success(fmt.Sprintf("Removed %s", user.DisplayName()))
			return nil
		},
	}
}

// RemoveUser deletes id and then its favorite flag, the same pair of
// commands the list screen dispatches. A failing pre-remove hook in abort
// mode leaves the user in place.
func RemoveUser(ctx context.Context, client userClient, id int) (domain.User, error) {
	user, ok := client.UserByID(id)
	if !ok {
		return domain.User{}, fmt.Errorf("user %d: %w", id, domain.ErrUserNotFound)
	}
	if err := hooks.Run(ctx, hooks.PreRemove, userHookEnv(user)...); err != nil {
		return domain.User{}, fmt.Errorf("pre-remove hook: %w", err)
	}
	if err := client.Apply(ctx, store.RemoveUser(id)); err != nil {
		return domain.User{}, err
	}
	if err := client.Apply(ctx, store.RemoveFavorite(id)); err != nil {
		return domain.User{}, err
	}
	if err := hooks.Run(ctx, hooks.PostRemove, userHookEnv(user)...); err != nil {
		return user, fmt.Errorf("post-remove hook: %w", err)
	}
	return user, nil
}

func userHookEnv(user domain.User) []string {
	return []string{
		"USER_ID=" + strconv.Itoa(user.ID),
		"USER_NAME=" + user.Name,
		"USER_USERNAME=" + user.Username,
		"USER_EMAIL=" + user.Email,
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewRemoveCmd(defaultOpener))
}
