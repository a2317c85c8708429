// Package deeplink builds the external messaging URLs used for order hand-off
// and storefront sharing.
package deeplink

import (
	"net/url"
	"strings"
)

const (
	whatsAppBase = "https://wa.me/"
	facebookBase = "https://www.facebook.com/sharer/sharer.php"
)

// Digits strips everything but ASCII digits from a phone number.
func Digits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsApp returns a wa.me link that opens a chat with phone pre-filled with text.
func WhatsApp(phone, text string) string {
	link := whatsAppBase + Digits(phone)
	if text == "" {
		return link
	}
	return link + "?text=" + encodeComponent(text)
}

// WhatsAppShare returns a wa.me link without a recipient so the user picks one.
func WhatsAppShare(text string) string {
	return whatsAppBase + "?text=" + encodeComponent(text)
}

func FacebookShare(pageURL string) string {
	return facebookBase + "?u=" + encodeComponent(pageURL)
}

type ShareLinks struct {
	URL      string `json:"url"`
	Text     string `json:"text"`
	WhatsApp string `json:"whatsapp"`
	Facebook string `json:"facebook"`
}

// Share bundles the storefront share targets for pageURL.
func Share(pageURL, text string) ShareLinks {
	return ShareLinks{
		URL:      pageURL,
		Text:     text,
		WhatsApp: WhatsAppShare(text + "\n" + pageURL),
		Facebook: FacebookShare(pageURL),
	}
}

// encodeComponent escapes spaces as %20 instead of '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
