// Package sshx provides the remote execution channel used by the fleet poller.
package sshx

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/ssh"

	"fleetmon/internal/config"
)

// Dialer opens remote execution channels using the shared, read-only SSH
// credential. It is safe for concurrent use by all polling units.
type Dialer struct {
	cfg     *config.SSHConfig
	auth    []ssh.AuthMethod
	hostKey ssh.HostKeyCallback
	logger  zerolog.Logger
}

// NewDialer creates a Dialer from the SSH configuration, loading the private
// key up front so a bad credential fails before any host is dialed.
func NewDialer(cfg *config.SSHConfig, logger zerolog.Logger) (*Dialer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("ssh config is required")
	}

	var auth []ssh.AuthMethod
	if cfg.KeyFile != "" {
		key, err := os.ReadFile(cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read ssh key file: %w", err)
		}
		signer, err := ssh.ParsePrivateKey(key)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ssh key file: %w", err)
		}
		auth = append(auth, ssh.PublicKeys(signer))
	}
	if cfg.Password != "" {
		auth = append(auth, ssh.Password(cfg.Password))
	}
	if len(auth) == 0 {
		return nil, fmt.Errorf("no ssh auth method configured")
	}

	return &Dialer{
		cfg:  cfg,
		auth: auth,
		// Hosts come from a curated inventory file; host key pinning is not
		// part of this tool's threat model.
		hostKey: ssh.InsecureIgnoreHostKey(),
		logger:  logger.With().Str("component", "ssh-dialer").Logger(),
	}, nil
}

// Dial opens one reusable channel to the target. The caller owns the channel
// and must Close it on every exit path.
func (d *Dialer) Dial(ctx context.Context, target *config.Target) (*Channel, error) {
	addr := target.Addr(d.cfg)
	user := target.Username(d.cfg)
	if user == "" {
		return nil, fmt.Errorf("no ssh user for target %s", target.Host)
	}

	d.logger.Debug().Str("addr", addr).Str("user", user).Msg("dialing target")

	netDialer := net.Dialer{Timeout: d.cfg.ConnectTimeout}
	conn, err := netDialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	// Bound the SSH handshake by the connect timeout as well; a TCP accept
	// followed by a stalled banner would otherwise hang the polling unit.
	if d.cfg.ConnectTimeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(d.cfg.ConnectTimeout))
	}

	clientConfig := &ssh.ClientConfig{
		User:            user,
		Auth:            d.auth,
		HostKeyCallback: d.hostKey,
		Timeout:         d.cfg.ConnectTimeout,
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, clientConfig)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("ssh handshake with %s failed: %w", addr, err)
	}
	_ = conn.SetDeadline(time.Time{})

	return &Channel{
		client: ssh.NewClient(sshConn, chans, reqs),
		cfg:    d.cfg,
		host:   target.Host,
		logger: d.logger.With().Str("host", target.Host).Logger(),
	}, nil
}

// Channel is an open remote-execution session to one host, reused across
// multiple queries. It is owned by a single polling unit and is not safe for
// concurrent use.
type Channel struct {
	client *ssh.Client
	cfg    *config.SSHConfig
	host   string
	logger zerolog.Logger
}

// run executes one command over a fresh session on the shared connection and
// returns its stdout. Cancellation closes the session, which unblocks Wait.
func (c *Channel) run(ctx context.Context, command string) (string, error) {
	session, err := c.client.NewSession()
	if err != nil {
		return "", fmt.Errorf("failed to open session on %s: %w", c.host, err)
	}
	defer session.Close()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	done := make(chan error, 1)
	go func() {
		done <- session.Run(command)
	}()

	select {
	case <-ctx.Done():
		session.Close()
		<-done
		return "", fmt.Errorf("command on %s canceled: %w", c.host, ctx.Err())
	case err := <-done:
		if err != nil {
			msg := bytes.TrimSpace(stderr.Bytes())
			if len(msg) > 0 {
				return "", fmt.Errorf("command on %s failed: %w: %s", c.host, err, msg)
			}
			return "", fmt.Errorf("command on %s failed: %w", c.host, err)
		}
	}

	return stdout.String(), nil
}

// SampleCPU executes the counter query and returns all labeled instances.
func (c *Channel) SampleCPU(ctx context.Context) ([]CounterSample, error) {
	output, err := c.run(ctx, c.cfg.SampleCommand)
	if err != nil {
		return nil, err
	}
	return ParseCounterOutput(output)
}

// TotalCPU executes the counter query and extracts the aggregate instance.
func (c *Channel) TotalCPU(ctx context.Context) (float64, error) {
	samples, err := c.SampleCPU(ctx)
	if err != nil {
		return 0, err
	}
	return TotalValue(samples, c.cfg.TotalInstance)
}

// InstantLoad executes the instantaneous load query.
func (c *Channel) InstantLoad(ctx context.Context) (int, error) {
	output, err := c.run(ctx, c.cfg.InstantCommand)
	if err != nil {
		return 0, err
	}
	return ParseInstantOutput(output)
}

// Close tears down the underlying connection.
func (c *Channel) Close() error {
	c.logger.Debug().Msg("closing channel")
	return c.client.Close()
}
