package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/email"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/i18n"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/performance"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t, sampleDocument())
	auth := NewAuthService("secret", f.svc, logging.NewDiscardLogger(), performance.NewTracker(nil))

	if _, err := auth.Login("wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("err = %v, want ErrInvalidPassword", err)
	}
	session, err := auth.Login("secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if f.sessions.Count() != 1 {
		t.Fatalf("sessions = %d, want 1", f.sessions.Count())
	}

	auth.Logout(session.ID)
	if f.sessions.Count() != 0 {
		t.Fatalf("sessions = %d after logout", f.sessions.Count())
	}
}

func TestLoginWithBcryptHash(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("GenerateFromPassword: %v", err)
	}
	f := newAdminFixture(t, sampleDocument())
	auth := NewAuthService(string(hash), f.svc, logging.NewDiscardLogger(), performance.NewTracker(nil))
	if _, err := auth.Login("secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
}

func TestLoginDisabledWithoutPassword(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t, sampleDocument())
	auth := NewAuthService("", f.svc, logging.NewDiscardLogger(), performance.NewTracker(nil))
	if _, err := auth.Login(""); !errors.Is(err, ErrAdminDisabled) {
		t.Fatalf("err = %v, want ErrAdminDisabled", err)
	}
}

type recordingMailer struct {
	sent []email.Inquiry
	err  error
}

func (m *recordingMailer) SendInquiry(inquiry email.Inquiry) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, inquiry)
	return nil
}

func newContactFixture(t *testing.T, mailer email.Service) *ContactService {
	t.Helper()
	catalog, err := i18n.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	return NewContactService(mailer, catalog, logging.NewDiscardLogger(), performance.NewTracker(nil))
}

func TestContactValidation(t *testing.T) {
	t.Parallel()

	svc := newContactFixture(t, nil)
	cases := []struct {
		name string
		form ContactForm
		ok   bool
	}{
		{name: "valid", form: ContactForm{Name: "Sam", Email: "sam@example.com", Message: "Hello"}, ok: true},
		{name: "missing name", form: ContactForm{Email: "sam@example.com", Message: "Hello"}},
		{name: "missing message", form: ContactForm{Name: "Sam", Email: "sam@example.com", Message: "   "}},
		{name: "malformed email", form: ContactForm{Name: "Sam", Email: "sam@", Message: "Hello"}},
		{name: "display name email", form: ContactForm{Name: "Sam", Email: "Sam <sam@example.com>", Message: "Hello"}},
		{name: "too long", form: ContactForm{Name: "Sam", Email: "sam@example.com", Message: strings.Repeat("x", 5001)}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := svc.Validate(&tc.form)
			if tc.ok && err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidInquiry) {
				t.Fatalf("err = %v, want ErrInvalidInquiry", err)
			}
		})
	}
}

func TestContactSubmitDelivers(t *testing.T) {
	t.Parallel()

	mailer := &recordingMailer{}
	svc := newContactFixture(t, mailer)
	msg, err := svc.Submit(ContactForm{Name: " Sam ", Email: "sam@example.com", Subject: "Villa", Message: "Quote please"}, content.LangAR)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if msg == "" || msg == "contact_form_alert" {
		t.Fatalf("message = %q, want translated alert", msg)
	}
	if len(mailer.sent) != 1 || mailer.sent[0].Name != "Sam" || mailer.sent[0].Direction != "rtl" {
		t.Fatalf("sent = %+v", mailer.sent)
	}
}

func TestContactSubmitWithoutMailer(t *testing.T) {
	t.Parallel()

	svc := newContactFixture(t, nil)
	msg, err := svc.Submit(ContactForm{Name: "Sam", Email: "sam@example.com", Message: "Hi"}, content.LangEN)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !strings.HasPrefix(msg, "Thank you") {
		t.Fatalf("message = %q", msg)
	}
}

func TestContactSubmitDeliveryFailure(t *testing.T) {
	t.Parallel()

	svc := newContactFixture(t, &recordingMailer{err: errors.New("rejected")})
	if _, err := svc.Submit(ContactForm{Name: "Sam", Email: "sam@example.com", Message: "Hi"}, content.LangEN); err == nil {
		t.Fatal("expected delivery error")
	}
}
