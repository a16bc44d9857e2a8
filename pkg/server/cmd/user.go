/* Copyright 2026 Lectern Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/lectern/lectern/pkg/prompt"
	"github.com/lectern/lectern/pkg/server/crypt"
	"github.com/lectern/lectern/pkg/server/log"
	"github.com/lectern/lectern/pkg/server/store"
)

// confirm prompts for user input to confirm a choice
func confirm(r io.Reader, question string, optimistic bool) (bool, error) {
	message := prompt.FormatQuestion(question, optimistic)
	fmt.Print(message + " ")

	confirmed, err := prompt.ReadYesNo(r, optimistic)
	if err != nil {
		return false, errors.Wrap(err, "reading stdin")
	}

	return confirmed, nil
}

func userCreateCmd(args []string) {
	fs := setupFlagSet("create", "lectern-server user create")

	username := fs.String("username", "", "Username (required)")
	password := fs.String("password", "", "User password (required)")
	admin := fs.Bool("admin", false, "Grant the user admin privileges")
	databaseURL := fs.String("databaseUrl", "", "Database URL: a postgres:// URL or a SQLite path (env: DATABASE_URL, default: lectern.db)")

	fs.Parse(args)

	requireString(fs, *username, "username")
	requireString(fs, *password, "password")

	a, cleanup := setupAppWithDB(fs, *databaseURL)
	defer cleanup()

	hashed, err := crypt.HashPassword(*password)
	if err != nil {
		log.ErrorWrap(err, "hashing password")
		os.Exit(1)
	}
	if err := a.Users.Insert(store.NewUser{Username: *username, Password: hashed, IsAdmin: *admin}); err != nil {
		log.ErrorWrap(err, "creating user")
		os.Exit(1)
	}

	fmt.Printf("User created successfully\n")
	fmt.Printf("Username: %s\n", *username)
	if *admin {
		fmt.Printf("Admin: yes\n")
	}
}

func userRemoveCmd(args []string, stdin io.Reader) {
	fs := setupFlagSet("remove", "lectern-server user remove")

	username := fs.String("username", "", "Username (required)")
	databaseURL := fs.String("databaseUrl", "", "Database URL: a postgres:// URL or a SQLite path (env: DATABASE_URL, default: lectern.db)")

	fs.Parse(args)

	requireString(fs, *username, "username")

	a, cleanup := setupAppWithDB(fs, *databaseURL)
	defer cleanup()

	user, err := a.Users.GetOne(&store.UserFilter{Username: username})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fmt.Printf("Error: user %s not found\n", *username)
		} else {
			log.ErrorWrap(err, "finding user")
		}
		os.Exit(1)
	}

	ok, err := confirm(stdin, fmt.Sprintf("Remove user %s?", *username), false)
	if err != nil {
		log.ErrorWrap(err, "getting confirmation")
		os.Exit(1)
	}
	if !ok {
		fmt.Println("Aborted by user")
		os.Exit(0)
	}

	// Sessions go first so no orphaned token keeps working.
	if err := a.DeleteUserSessions(user.ID); err != nil {
		log.ErrorWrap(err, "removing sessions")
		os.Exit(1)
	}
	if err := a.Users.DeleteOne(&store.UserFilter{ID: &user.ID}); err != nil {
		log.ErrorWrap(err, "removing user")
		os.Exit(1)
	}

	fmt.Printf("User removed successfully\n")
	fmt.Printf("Username: %s\n", *username)
}

func userResetPasswordCmd(args []string) {
	fs := setupFlagSet("reset-password", "lectern-server user reset-password")

	username := fs.String("username", "", "Username (required)")
	password := fs.String("password", "", "New password (required)")
	databaseURL := fs.String("databaseUrl", "", "Database URL: a postgres:// URL or a SQLite path (env: DATABASE_URL, default: lectern.db)")

	fs.Parse(args)

	requireString(fs, *username, "username")
	requireString(fs, *password, "password")

	a, cleanup := setupAppWithDB(fs, *databaseURL)
	defer cleanup()

	user, err := a.Users.GetOne(&store.UserFilter{Username: username})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fmt.Printf("Error: user %s not found\n", *username)
		} else {
			log.ErrorWrap(err, "finding user")
		}
		os.Exit(1)
	}

	hashed, err := crypt.HashPassword(*password)
	if err != nil {
		log.ErrorWrap(err, "hashing password")
		os.Exit(1)
	}
	if err := a.DB.Model(&user).Update("password", hashed).Error; err != nil {
		log.ErrorWrap(err, "updating password")
		os.Exit(1)
	}

	// Existing sessions carry the old credentials, drop them.
	if err := a.DeleteUserSessions(user.ID); err != nil {
		log.ErrorWrap(err, "removing sessions")
		os.Exit(1)
	}

	fmt.Printf("Password reset successfully\n")
	fmt.Printf("Username: %s\n", *username)
}

func userCmd(args []string) {
	if len(args) < 1 {
		fmt.Println(`Usage:
  lectern-server user [command]

Available commands:
  create: Create a new user
  remove: Remove a user
  reset-password: Reset a user's password`)
		os.Exit(1)
	}

	subcommand := args[0]
	subArgs := []string{}
	if len(args) > 1 {
		subArgs = args[1:]
	}

	switch subcommand {
	case "create":
		userCreateCmd(subArgs)
	case "remove":
		userRemoveCmd(subArgs, os.Stdin)
	case "reset-password":
		userResetPasswordCmd(subArgs)
	default:
		fmt.Printf("Unknown subcommand: %s\n\n", subcommand)
		fmt.Println(`Available commands:
  create: Create a new user
  remove: Remove a user
  reset-password: Reset a user's password`)
		os.Exit(1)
	}
}
