package routeros

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/go-routeros/routeros/v3"
	"github.com/go-routeros/routeros/v3/proto"
	"github.com/samber/lo"

	"github.com/rickicode/mikrotik-billing/internal/entities"
	"github.com/rickicode/mikrotik-billing/internal/errs"
)

// APITransport speaks the RouterOS API protocol over plain TCP.
type APITransport struct {
	dialer *net.Dialer

	mu     sync.Mutex
	client *routeros.Client
}

func NewAPITransport() *APITransport {
	return &APITransport{
		dialer: &net.Dialer{},
	}
}

// Connect dials the device. An open session is closed first.
func (t *APITransport) Connect(ctx context.Context, address string) (err error) {
	_ = t.Close()

	conn, err := t.dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return fmt.Errorf("Connect: %w: %w", errs.ErrConnection, err)
	}

	client, err := routeros.NewClient(conn)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("Connect: %w", err)
	}

	t.mu.Lock()
	t.client = client
	t.mu.Unlock()

	return nil
}

// Login authenticates the session. Any device rejection here means bad credentials.
func (t *APITransport) Login(username, password string) (err error) {
	client, err := t.session()
	if err != nil {
		return fmt.Errorf("Login: %w", err)
	}

	if err = client.Login(username, password); err != nil {
		var devErr *routeros.DeviceError
		if errors.As(err, &devErr) {
			return fmt.Errorf("Login: %w: %w", errs.ErrAuthentication, err)
		}

		return fmt.Errorf("Login: %w", err)
	}

	return nil
}

// RunQuery runs a single sentence and collects the !re rows.
func (t *APITransport) RunQuery(path string, params []entities.Param) (reply entities.Reply, err error) {
	client, err := t.session()
	if err != nil {
		return reply, fmt.Errorf("RunQuery: %w", err)
	}

	cmd := entities.NewCommand(path, params...)
	raw, err := client.RunArgs(cmd.Sentence())
	if err != nil {
		return reply, fmt.Errorf("RunQuery: %w", err)
	}

	return toReply(raw), nil
}

func (t *APITransport) Close() (err error) {
	t.mu.Lock()
	client := t.client
	t.client = nil
	t.mu.Unlock()

	if client == nil {
		return nil
	}

	if err = client.Close(); err != nil {
		return fmt.Errorf("Close: %w", err)
	}

	return nil
}

func (t *APITransport) session() (client *routeros.Client, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.client == nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrConnection, errs.ErrNotConnected)
	}

	return t.client, nil
}

func toReply(raw *routeros.Reply) (reply entities.Reply) {
	reply.Rows = lo.Map(raw.Re, func(sentence *proto.Sentence, _ int) entities.Row {
		return entities.Row(lo.Assign(map[string]string{}, sentence.Map))
	})

	if raw.Done != nil {
		reply.Ret = raw.Done.Map["ret"]
	}

	return reply
}
