package primitives

import (
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"slisp/pkg/errs"
	"slisp/pkg/value"
)

// sendMail adapts the teacher's pkg/eval/eval.go mail.send builtin:
// (send-mail to subject body) reads SMTP_HOST/SMTP_PORT/SMTP_USER/
// SMTP_PASS from the environment (loaded by godotenv at startup, per
// SPEC_FULL.md's Ambient Stack) and sends a plain-text message via
// gomail's dialer.
func sendMail(_ interface{}, args []value.Value) (value.Value, error) {
	if err := errs.AssertArity(3, len(args)); err != nil {
		return value.Value{}, err
	}
	to, err := stringArg(args[0])
	if err != nil {
		return value.Value{}, err
	}
	subject, err := stringArg(args[1])
	if err != nil {
		return value.Value{}, err
	}
	body, err := stringArg(args[2])
	if err != nil {
		return value.Value{}, err
	}

	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")

	if host == "" || portStr == "" {
		return value.Value{}, errs.NewIOError(errMissingSMTPConfig{})
	}
	port, perr := strconv.Atoi(portStr)
	if perr != nil {
		return value.Value{}, errs.NewTypeError("integer SMTP_PORT", portStr)
	}

	from := user
	if from == "" {
		from = "noreply@example.com"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(host, port, user, pass)
	if serr := d.DialAndSend(m); serr != nil {
		return value.Value{}, errs.NewIOError(serr)
	}
	return value.FromBoolean(true), nil
}

type errMissingSMTPConfig struct{}

func (errMissingSMTPConfig) Error() string {
	return "SMTP_HOST and SMTP_PORT environment variables must be set"
}
