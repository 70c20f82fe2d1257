// Package message turns validation failures into display text.
//
// Resolve maps each validator.Kind to a stable lookup key and an English
// default, then asks an i18n.Localizer for the final string. With no
// localizer the default text is used. Password-policy failures are
// described by the first entry of the policy checklist, whose text was
// already localized when the policy was built.
package message
