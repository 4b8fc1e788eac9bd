package health

import (
	"context"
	"errors"
	"fmt"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/client"
)

// Health probes the backend health endpoint.
type Health struct {
	Client *client.Client
}

func (n *Health) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not check health, no client")
	}
	status, err := n.Client.Health(ctx)
	if err != nil {
		return err
	}
	fmt.Println(status)
	if status != "healthy" {
		return fmt.Errorf("backend reports %q", status)
	}
	return nil
}
