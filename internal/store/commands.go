package store

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind names the operation a Command performs.
type Kind string

const (
	KindFetchAll       Kind = "fetch_all"
	KindRemoveUser     Kind = "remove_user"
	KindSetFavorite    Kind = "set_favorite"
	KindRemoveFavorite Kind = "remove_favorite"
)

// Command is a unit of work for the store loop. ID correlates log lines
// for one command.
type Command struct {
	ID     string
	Kind   Kind
	UserID int
}

func newCommand(kind Kind, userID int) Command {
	return Command{ID: uuid.NewString(), Kind: kind, UserID: userID}
}

// FetchAll reloads every user and the favorite set from the repository.
func FetchAll() Command {
	return newCommand(KindFetchAll, 0)
}

// RemoveUser deletes a user. Its favorite flag is untouched.
func RemoveUser(id int) Command {
	return newCommand(KindRemoveUser, id)
}

// SetFavorite adds a user to the favorite set.
func SetFavorite(id int) Command {
	return newCommand(KindSetFavorite, id)
}

// RemoveFavorite drops a user from the favorite set.
func RemoveFavorite(id int) Command {
	return newCommand(KindRemoveFavorite, id)
}

func (c Command) String() string {
	if c.Kind == KindFetchAll {
		return string(c.Kind)
	}
	return fmt.Sprintf("%s(%d)", c.Kind, c.UserID)
}
