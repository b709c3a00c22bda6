package account

import (
	"kith/internal/pkg/errs"
)

// FieldKind discriminates the closed set of profile field targets. The
// reserved attribute names are resolved into one of the built-in kinds exactly
// once, at the API boundary, so no string comparison leaks into deeper logic.
type FieldKind int

const (
	// FieldCustom targets a free-form entry in the Attributes map.
	FieldCustom FieldKind = iota

	// FieldName targets the built-in display name.
	FieldName

	// FieldPassword targets the built-in password.
	FieldPassword

	// FieldLogin targets the built-in login. Writes to it are renames and are
	// subject to the directory uniqueness rule, so they are handled there.
	FieldLogin
)

// Reserved attribute names routed to built-in fields.
const (
	AttrName     = "name"
	AttrPassword = "password"
	AttrLogin    = "login"
)

// ProfileField is the resolved target of an attribute read or write.
type ProfileField struct {
	Kind FieldKind

	// Key holds the attribute name for FieldCustom targets; empty otherwise.
	Key string
}

// ResolveField maps an attribute name to its ProfileField target.
func ResolveField(name string) ProfileField {
	switch name {
	case AttrName:
		return ProfileField{Kind: FieldName}
	case AttrPassword:
		return ProfileField{Kind: FieldPassword}
	case AttrLogin:
		return ProfileField{Kind: FieldLogin}
	default:
		return ProfileField{Kind: FieldCustom, Key: name}
	}
}

// Attribute returns the value of the resolved profile field. Reading a custom
// attribute that was never written fails with ErrAttributeNotSet.
func (a *Account) Attribute(field ProfileField) (string, *errs.CustomError) {
	switch field.Kind {
	case FieldName:
		return a.Name, nil
	case FieldPassword:
		return a.Password, nil
	case FieldLogin:
		return a.Login, nil
	default:
		value, ok := a.Attributes[field.Key]
		if !ok {
			return "", errs.NewError(errs.ErrAttributeNotSet)
		}
		return value, nil
	}
}

// SetAttribute writes the value of the resolved profile field. FieldLogin is
// rejected here: renames go through the directory, which owns login uniqueness.
func (a *Account) SetAttribute(field ProfileField, value string) {
	switch field.Kind {
	case FieldName:
		a.Name = value
	case FieldPassword:
		a.Password = value
	case FieldLogin:
		// Unreachable by construction; the service routes renames to the directory.
	default:
		a.Attributes[field.Key] = value
	}
}
