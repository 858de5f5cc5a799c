package main

import (
	"context"
	"fmt"

	"github.com/erlanggafajar/nilai-ict/core"
	"github.com/erlanggafajar/nilai-ict/core/user"
)

// addUser creates a user.User. With isAdmin the admin role is granted
// explicitly; otherwise the bootstrap-admin rule applies: on an empty store
// the new account becomes admin, otherwise viewer.
func (cli *commandLine) addUser(uname, pwd string, isAdmin bool) error {
	ctx := context.Background()

	ru := user.RegisterUser{
		Username:        core.CleanString(uname, true /* lower */),
		Password:        pwd,
		PasswordConfirm: pwd,
	}

	var usr user.User
	var err error
	if isAdmin {
		usr, err = cli.usrSvc.CreateAdmin(ctx, ru)
	} else {
		usr, err = cli.usrSvc.Register(ctx, ru)
	}
	if err != nil {
		return err
	}

	fmt.Printf("account %q created (role: %s)\n", usr.Username, usr.Role)
	return nil
}
