package network

import (
	"context"
	"fmt"

	"github.com/quic-go/quic-go"

	"liftsim/src/types"
)

// Client sends commands to a Server. Each command uses its own stream, so a
// Client may be shared by several goroutines.
type Client struct {
	conn *quic.Conn
}

func Dial(ctx context.Context, addr string) (*Client, error) {
	conn, err := quic.DialAddr(ctx, addr, newClientTLSConfig(), newQUICConfig())
	if err != nil {
		return nil, fmt.Errorf("quic dial %s: %w", addr, err)
	}
	return &Client{conn: conn}, nil
}

func (c *Client) Do(ctx context.Context, cmd types.Command) (types.Response, error) {
	stream, err := c.conn.OpenStreamSync(ctx)
	if err != nil {
		return types.Response{}, fmt.Errorf("open stream: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetDeadline(deadline)
	}

	if err := writeMessage(stream, cmd); err != nil {
		stream.CancelRead(0)
		return types.Response{}, err
	}
	// Closing the send side marks the end of the command.
	if err := stream.Close(); err != nil {
		return types.Response{}, fmt.Errorf("close stream: %w", err)
	}
	return readMessage[types.Response](stream)
}

func (c *Client) Close() error {
	return c.conn.CloseWithError(0, "client closed")
}
