package contact_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/HLPFLCG/HLPFL-INC/contact"
	"github.com/stretchr/testify/require"
)

func TestMailtoURL(t *testing.T) {
	t.Run("formats recipient, subject and body", func(t *testing.T) {
		got := contact.MailtoURL("contact@hlpfl.org", contact.Message{
			Name:    "Adrian Torres",
			Email:   "adrian@example.com",
			Subject: "Sales help",
			Body:    "I have a patented product.",
		})

		require.True(t, strings.HasPrefix(got, "mailto:contact@hlpfl.org?"))

		query, err := url.ParseQuery(strings.SplitN(got, "?", 2)[1])
		require.NoError(t, err)
		require.Equal(t, "Sales help", query.Get("subject"))
		require.Equal(t, "Name: Adrian Torres\nEmail: adrian@example.com\n\nI have a patented product.", query.Get("body"))
	})

	t.Run("empty subject falls back to default", func(t *testing.T) {
		got := contact.MailtoURL("contact@hlpfl.org", contact.Message{Subject: "   "})
		require.Contains(t, got, "subject="+url.QueryEscape("Contact Form Submission"))
	})

	t.Run("special characters survive the round trip", func(t *testing.T) {
		got := contact.MailtoURL("contact@hlpfl.org", contact.Message{
			Name:    "A & B",
			Email:   "a+b@example.com",
			Subject: "Q? A!",
			Body:    "50% off = good",
		})

		query, err := url.ParseQuery(strings.SplitN(got, "?", 2)[1])
		require.NoError(t, err)
		require.Equal(t, "Q? A!", query.Get("subject"))
		require.Contains(t, query.Get("body"), "A & B")
		require.Contains(t, query.Get("body"), "a+b@example.com")
		require.Contains(t, query.Get("body"), "50% off = good")
	})
}
