package email

import (
	"errors"
	"strings"
	"testing"

	"github.com/resendlabs/resend-go"
)

type fakeSender struct {
	got *resend.SendEmailRequest
	err error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (resend.SendEmailResponse, error) {
	f.got = params
	return resend.SendEmailResponse{Id: "msg_1"}, f.err
}

func TestSendInquiry(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	client := NewServiceWithSender(sender, "site@example.com", "office@example.com")

	err := client.SendInquiry(Inquiry{
		Name:    "Sara <script>",
		Email:   "sara@example.com",
		Subject: "Villa quote",
		Message: "Hello\n\nWe need a villa.",
	})
	if err != nil {
		t.Fatalf("SendInquiry: %v", err)
	}
	if sender.got.To[0] != "office@example.com" || sender.got.ReplyTo != "sara@example.com" {
		t.Fatalf("request = %+v", sender.got)
	}
	if strings.Contains(sender.got.Html, "<script>") {
		t.Fatal("html body is not escaped")
	}
	if !strings.Contains(sender.got.Html, "We need a villa.") {
		t.Fatal("html body lost the message")
	}
}

func TestSendInquiryWrapsError(t *testing.T) {
	t.Parallel()

	boom := errors.New("rate limited")
	client := NewServiceWithSender(&fakeSender{err: boom}, "a@example.com", "b@example.com")
	if err := client.SendInquiry(Inquiry{Subject: "x"}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
}

func TestNewServiceRequiresCredentials(t *testing.T) {
	t.Parallel()

	if _, err := NewService("", "a@example.com", "b@example.com"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}
