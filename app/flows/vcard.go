package flows

import (
	"context"
	"strings"

	"github.com/jpizquierdo/qrcodegen/app/qr"
	"github.com/jpizquierdo/qrcodegen/app/validate"
	"github.com/jpizquierdo/qrcodegen/core/telegram/state"
)

const (
	promptName    = "Please send the name:"
	promptSurname = "Please send the surname:"
	promptPhone   = "Please send the phone number with prefix:"
	promptEmail   = "Please send the email:"
	promptCompany = "Please send the company name:"
	promptTitle   = "Please send the job title:"
	promptWebsite = "Please send the Website URL 🔗:"
)

// The contact flow collects one field per step. Only email and website are
// validated; the rest are free text stored as sent.

func (m *Machine) stepName(ctx context.Context, sess *state.Session, input string) (Reply, error) {
	sess.Set(fieldName, input)
	sess.Step = StepAwaitingSurname
	return Reply{Text: promptSurname}, nil
}

func (m *Machine) stepSurname(ctx context.Context, sess *state.Session, input string) (Reply, error) {
	sess.Set(fieldSurname, input)
	sess.Step = StepAwaitingPhone
	return Reply{Text: promptPhone}, nil
}

func (m *Machine) stepPhone(ctx context.Context, sess *state.Session, input string) (Reply, error) {
	sess.Set(fieldPhone, input)
	sess.Step = StepAwaitingEmail
	return Reply{Text: promptEmail}, nil
}

func (m *Machine) stepEmail(ctx context.Context, sess *state.Session, input string) (Reply, error) {
	email, err := validate.ValidateEmail(input)
	if err != nil {
		return Reply{Text: validate.Message(err)}, nil
	}
	sess.Set(fieldEmail, string(email))
	sess.Step = StepAwaitingCompany
	return Reply{Text: promptCompany}, nil
}

func (m *Machine) stepCompany(ctx context.Context, sess *state.Session, input string) (Reply, error) {
	sess.Set(fieldCompany, input)
	sess.Step = StepAwaitingTitle
	return Reply{Text: promptTitle}, nil
}

func (m *Machine) stepTitle(ctx context.Context, sess *state.Session, input string) (Reply, error) {
	sess.Set(fieldTitle, input)
	sess.Step = StepAwaitingWebsite
	return Reply{Text: promptWebsite}, nil
}

func (m *Machine) stepWebsite(ctx context.Context, sess *state.Session, input string) (Reply, error) {
	u, err := validate.ValidateURL(strings.TrimSpace(input))
	if err != nil {
		return Reply{Text: validate.Message(err)}, nil
	}
	contact := qr.Contact{
		Name:    sess.Get(fieldName),
		Surname: sess.Get(fieldSurname),
		Phone:   sess.Get(fieldPhone),
		Email:   validate.Email(sess.Get(fieldEmail)),
		Company: sess.Get(fieldCompany),
		Title:   sess.Get(fieldTitle),
		URL:     u,
	}
	return m.finish(ctx, sess, qr.ContactPayload(contact), qr.FormatPNG, captionContact)
}
