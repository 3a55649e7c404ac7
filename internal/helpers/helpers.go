package helpers

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/cloudinary/cloudinary-go/v2"
)

const (
	EventsFolder = "events"

	CurrentUserName   = "You"
	CurrentUserAvatar = "https://i.pravatar.cc/150?u=newcomment"
	AnonymousUser     = "anonymous"
)

// Derivers builds the display-only fields the remote API does not store:
// event images, avatars and partner logos. Each is a plain function so
// tests can swap them for offline stubs.
type Derivers struct {
	EventImage         func(index int, eventID string) string
	CommentAvatar      func(username string) string
	CollaboratorAvatar func(userID string) string
	CollaboratorName   func(userID string) string
	PartnerLogo        func(fullName string) string
	CurrentUserAvatar  string
	CurrentUserName    string
}

func DefaultDerivers() Derivers {
	return Derivers{
		EventImage:         UnsplashEventImage,
		CommentAvatar:      PravatarURL,
		CollaboratorAvatar: PravatarURL,
		CollaboratorName:   CollaboratorName,
		PartnerLogo:        ClearbitLogo,
		CurrentUserAvatar:  CurrentUserAvatar,
		CurrentUserName:    CurrentUserName,
	}
}

func UnsplashEventImage(index int, _ string) string {
	return fmt.Sprintf("https://source.unsplash.com/random/600x600/?event,%d", index)
}

// PravatarURL maps an identity to a stable placeholder avatar.
func PravatarURL(identity string) string {
	if StringTrim(identity) == "" {
		identity = AnonymousUser
	}
	return "https://i.pravatar.cc/150?u=" + url.QueryEscape(identity)
}

func CollaboratorName(userID string) string {
	return "User " + userID
}

// ClearbitLogo guesses a partner logo from its name. Names that leave no
// usable host label return "" and the page falls back to an icon.
func ClearbitLogo(fullName string) string {
	host := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, fullName)
	for _, r := range host {
		if !(r == '-' || r == '.' || r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))) {
			return ""
		}
	}
	if host == "" || strings.Trim(host, ".-") == "" {
		return ""
	}
	return "https://logo.clearbit.com/" + strings.ToLower(host) + ".com"
}

// CloudinaryEventImage serves event placeholders from a Cloudinary folder.
// Assets are expected under <folder>/placeholder-<n> and cycle over count.
func CloudinaryEventImage(cld *cloudinary.Cloudinary, folder string, count int) func(int, string) string {
	if count <= 0 {
		count = 1
	}
	return func(index int, eventID string) string {
		if index < 0 {
			index = -index
		}
		img, err := cld.Image(fmt.Sprintf("%s/placeholder-%d", folder, index%count))
		if err != nil {
			return UnsplashEventImage(index, eventID)
		}
		img.Transformation = "c_fill,h_600,w_600"
		u, err := img.String()
		if err != nil || u == "" {
			return UnsplashEventImage(index, eventID)
		}
		return u
	}
}

func StringTrim(s string) string {
	s = strings.TrimSpace(s)
	return strings.Trim(s, "\"'")
}
