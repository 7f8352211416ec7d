package declinecodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDeclineMessage(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		locale Locale
		want   string
		wantOK bool
	}{
		{
			name:   "english message",
			code:   "insufficient_funds",
			locale: LocaleEN,
			want:   "Please try again using an alternative payment method.",
			wantOK: true,
		},
		{
			name:   "japanese message",
			code:   "insufficient_funds",
			locale: LocaleJA,
			want:   "別のお支払い方法を使用してもう一度お試しください。",
			wantOK: true,
		},
		{
			name:   "empty locale defaults to english",
			code:   "insufficient_funds",
			locale: "",
			want:   "Please try again using an alternative payment method.",
			wantOK: true,
		},
		{
			name:   "unsupported locale falls back to english",
			code:   "insufficient_funds",
			locale: "fr",
			want:   "Please try again using an alternative payment method.",
			wantOK: true,
		},
		{
			name:   "region variants are not normalized",
			code:   "insufficient_funds",
			locale: "ja-JP",
			want:   "Please try again using an alternative payment method.",
			wantOK: true,
		},
		{
			name:   "unknown code",
			code:   "mystery_code",
			locale: LocaleEN,
			wantOK: false,
		},
		{
			name:   "empty code",
			code:   "",
			locale: LocaleEN,
			wantOK: false,
		},
		{
			name:   "uppercase code is not matched",
			code:   "INSUFFICIENT_FUNDS",
			locale: LocaleEN,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := GetDeclineMessage(tt.code, tt.locale)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, msg)
		})
	}
}

// Resolution makes at most one fallback hop, so any locale without a
// translation yields exactly the base-locale message for every code.
func TestGetDeclineMessage_FallbackMatchesBase(t *testing.T) {
	for _, code := range GetAllDeclineCodes() {
		base, ok := GetDeclineMessage(code, LocaleEN)
		require.True(t, ok)
		require.NotEmpty(t, base)

		for _, locale := range []Locale{"", "fr", "pt-BR", "zz"} {
			msg, ok := GetDeclineMessage(code, locale)
			require.True(t, ok)
			assert.Equal(t, base, msg, "code %q locale %q", code, locale)
		}
	}
}

func TestGetMessageFromStripeError(t *testing.T) {
	tests := []struct {
		name      string
		stripeErr *StripeError
		locale    Locale
		want      string
		wantOK    bool
	}{
		{
			name:      "nil error",
			stripeErr: nil,
			locale:    LocaleEN,
			wantOK:    false,
		},
		{
			name:      "error without a decline code",
			stripeErr: &StripeError{Type: "card_error", Message: "Your card was declined."},
			locale:    LocaleEN,
			wantOK:    false,
		},
		{
			name:      "unknown decline code",
			stripeErr: &StripeError{DeclineCode: "mystery_code"},
			locale:    LocaleEN,
			wantOK:    false,
		},
		{
			name: "resolves the decline code",
			stripeErr: &StripeError{
				Type:        "card_error",
				DeclineCode: "insufficient_funds",
				Message:     "Your card has insufficient funds.",
			},
			locale: LocaleEN,
			want:   "Please try again using an alternative payment method.",
			wantOK: true,
		},
		{
			name:      "resolves in japanese",
			stripeErr: &StripeError{DeclineCode: "insufficient_funds"},
			locale:    LocaleJA,
			want:      "別のお支払い方法を使用してもう一度お試しください。",
			wantOK:    true,
		},
		{
			name: "message field never leaks through",
			stripeErr: &StripeError{
				DeclineCode: "expired_card",
				Message:     "raw issuer message that must not be shown",
			},
			locale: LocaleEN,
			want:   "Please use another card.",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := GetMessageFromStripeError(tt.stripeErr, tt.locale)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, msg)
		})
	}
}
