package steps

import (
	"fmt"

	"github.com/goliatone/go-devme/pkg/catalog"
	"github.com/goliatone/go-devme/pkg/document"
	"github.com/goliatone/go-devme/pkg/policy"
)

// FieldBio is the free-text field shown at every level.
const FieldBio = "bio"

// PersonalInfo is step 1.
type PersonalInfo struct {
	policy *policy.Policy
}

// Fields returns the inputs visible at level, in master order. Bio is not
// part of the list.
func (s PersonalInfo) Fields(level document.Level) []catalog.Field {
	return s.policy.FieldsForLevel(level)
}

// Apply replaces the whole personal info slice.
func (s PersonalInfo) Apply(doc document.Document, info document.PersonalInfo) document.Document {
	return doc.WithPersonalInfo(info)
}

// Set updates a single field by key. Fields hidden by the level can still be
// written; the level only controls what is offered.
func (s PersonalInfo) Set(doc document.Document, key, value string) (document.Document, error) {
	info := doc.PersonalInfo
	switch key {
	case "name":
		info.Name = value
	case "email":
		info.Email = value
	case "phone":
		info.Phone = value
	case "location":
		info.Location = value
	case "github":
		info.GitHub = value
	case "linkedin":
		info.LinkedIn = value
	case "website":
		info.Website = value
	case FieldBio:
		info.Bio = value
	default:
		return doc, fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	return doc.WithPersonalInfo(info), nil
}

// Value reads a field by key.
func (s PersonalInfo) Value(doc document.Document, key string) string {
	info := doc.PersonalInfo
	switch key {
	case "name":
		return info.Name
	case "email":
		return info.Email
	case "phone":
		return info.Phone
	case "location":
		return info.Location
	case "github":
		return info.GitHub
	case "linkedin":
		return info.LinkedIn
	case "website":
		return info.Website
	case FieldBio:
		return info.Bio
	default:
		return ""
	}
}

// SetProfileImage stores or clears (empty uri) the profile image. Uploads are
// offered only at the detailed level.
func (s PersonalInfo) SetProfileImage(doc document.Document, uri string) (document.Document, error) {
	if uri == "" {
		return doc.WithProfileImage(""), nil
	}
	if !policy.ProfileImageEnabled(doc.ContentLevel) {
		return doc, ErrProfileImageDisabled
	}
	if !document.IsImageDataURI(uri) {
		return doc, ErrInvalidImage
	}
	return doc.WithProfileImage(uri), nil
}
