package mailer

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"cellar-shop/internal/pkg/config"
	"cellar-shop/internal/pkg/errs"

	"github.com/wneessen/go-mail"
)

const (
	collaborator = "mailer"

	defaultTimeout = 15 * time.Second
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// SMTPMailer sends plain-text mail through one SMTP relay. Every send is
// bounded by the configured timeout and by the caller's context.
type SMTPMailer struct {
	from    string
	timeout time.Duration
	send    func(ctx context.Context, msg *mail.Msg) error
}

func NewSMTPMailer(cfg config.MailConfig) (*SMTPMailer, error) {
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		return nil, errs.Wrap(err, "invalid SMTP port")
	}
	timeout := cfg.SMTPTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTimeout(timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithDialContextFunc(deadlineDialer(timeout)),
	}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUsername),
			mail.WithPassword(cfg.SMTPPassword))
	}
	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create SMTP client")
	}

	return &SMTPMailer{
		from:    cfg.From,
		timeout: timeout,
		send: func(ctx context.Context, msg *mail.Msg) error {
			return client.DialAndSendWithContext(ctx, msg)
		},
	}, nil
}

// deadlineDialer puts an absolute deadline on the connection so a relay that
// accepts but never answers cannot hold the session open.
func deadlineDialer(timeout time.Duration) mail.DialContextFunc {
	dialer := &net.Dialer{Timeout: timeout}
	return func(ctx context.Context, network, address string) (net.Conn, error) {
		conn, err := dialer.DialContext(ctx, network, address)
		if err != nil {
			return nil, err
		}
		deadline := time.Now().Add(timeout)
		if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
			deadline = d
		}
		if err := conn.SetDeadline(deadline); err != nil {
			_ = conn.Close()
			return nil, err
		}
		return conn, nil
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.ContainsAny(msg.To, "\r\n") || strings.ContainsAny(msg.Subject, "\r\n") {
		return &errs.CollaboratorError{Collaborator: collaborator, Op: "send", Err: errs.New("header contains line break")}
	}
	out, err := m.compose(msg)
	if err != nil {
		return &errs.CollaboratorError{Collaborator: collaborator, Op: "compose", Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	if err := m.send(ctx, out); err != nil {
		return &errs.CollaboratorError{Collaborator: collaborator, Op: "send", Retryable: isTimeout(err), Err: err}
	}
	return nil
}

func (m *SMTPMailer) compose(msg Message) (*mail.Msg, error) {
	out := mail.NewMsg()
	if err := out.From(m.from); err != nil {
		return nil, err
	}
	if err := out.To(msg.To); err != nil {
		return nil, err
	}
	out.Subject(msg.Subject)
	out.SetDate()
	out.SetBodyString(mail.TypeTextPlain, msg.Body)
	return out, nil
}

func isTimeout(err error) bool {
	if errs.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// LogMailer writes mail to the log when SMTP is not configured.
type LogMailer struct{}

func NewLogMailer() LogMailer {
	return LogMailer{}
}

func (LogMailer) Send(ctx context.Context, msg Message) error {
	slog.InfoContext(ctx, "mail not sent, SMTP disabled",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject))
	return nil
}
