package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/client"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/session"
)

// Login authenticates against the backend and persists the identity.
type Login struct {
	Email    string
	Password string
	Client   *client.Client
	Sessions session.Store
}

func (n *Login) Do(ctx context.Context) error {
	if n.Client == nil || n.Sessions == nil {
		return errors.New("can not sign in, no client or session store")
	}
	if err := ValidateCredentials(n.Email, n.Password); err != nil {
		return err
	}

	userID, err := n.Client.Login(ctx, n.Email, n.Password)
	if err != nil {
		return err
	}
	if err := n.Sessions.Save(session.Identity{UserID: userID, Email: n.Email}); err != nil {
		return err
	}
	fmt.Printf("signed in as %s\n", n.Email)
	return nil
}

// Register creates an account, then persists the identity like Login.
type Register struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Confirm   string
	Client    *client.Client
	Sessions  session.Store
}

func (n *Register) Do(ctx context.Context) error {
	if n.Client == nil || n.Sessions == nil {
		return errors.New("can not register, no client or session store")
	}
	if err := ValidateRegistration(n.FirstName, n.LastName, n.Email, n.Password, n.Confirm); err != nil {
		return err
	}

	userID, err := n.Client.Register(ctx, map[string]string{
		"first_name": n.FirstName,
		"last_name":  n.LastName,
		"email":      n.Email,
		"password":   n.Password,
	})
	if err != nil {
		return err
	}
	name := n.FirstName + " " + n.LastName
	if err := n.Sessions.Save(session.Identity{UserID: userID, Email: n.Email, Name: name}); err != nil {
		return err
	}
	fmt.Printf("registered %s\n", n.Email)
	return nil
}

// Logout invalidates the backend session and clears the stored identity.
// The local identity is cleared even when the backend call fails, a stale
// token is worse than an unacknowledged logout.
type Logout struct {
	Client   *client.Client
	Sessions session.Store
}

func (n *Logout) Do(ctx context.Context) error {
	if n.Sessions == nil {
		return errors.New("can not sign out, no session store")
	}
	var remoteErr error
	if n.Client != nil {
		remoteErr = n.Client.Logout(ctx)
	}
	if err := n.Sessions.Clear(); err != nil {
		return err
	}
	if remoteErr != nil {
		return remoteErr
	}
	fmt.Println("signed out")
	return nil
}

// Whoami prints the stored identity.
type Whoami struct {
	Sessions session.Store
}

func (n *Whoami) Do(_ context.Context) error {
	if n.Sessions == nil {
		return errors.New("no session store")
	}
	id, err := n.Sessions.Current()
	if err != nil {
		return err
	}
	if id.Name != "" {
		fmt.Printf("%s <%s> (user %s)\n", id.Name, id.Email, id.UserID)
	} else {
		fmt.Printf("%s (user %s)\n", id.Email, id.UserID)
	}
	return nil
}
