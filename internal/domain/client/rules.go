package client

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	FieldID    = "id"
	FieldName  = "name"
	FieldEmail = "email"
	FieldPhone = "phone"

	MaxNameLength  = 50
	MaxEmailLength = 255
	MaxPhoneLength = 20
)

// validator.Validate is safe for concurrent use.
var syntax = validator.New()

type rule struct {
	kind    Kind
	message string
	ok      func(value string) bool
}

type fieldRules struct {
	field string
	value func(Client) string
	rules []rule
}

func notBlank() rule {
	return rule{
		kind:    KindBlankField,
		message: "must not be blank",
		ok:      func(v string) bool { return !isBlank(v) },
	}
}

func maxLen(n int) rule {
	return rule{
		kind:    KindFieldTooLong,
		message: fmt.Sprintf("must be at most %d characters long", n),
		ok:      func(v string) bool { return utf8.RuneCountInString(v) <= n },
	}
}

// Blank values are reported by notBlank only.
func emailSyntax() rule {
	return rule{
		kind:    KindInvalidFormat,
		message: "must be a valid email address",
		ok: func(v string) bool {
			if isBlank(v) {
				return true
			}
			return syntax.Var(v, "email") == nil
		},
	}
}

func isBlank(v string) bool {
	return strings.TrimSpace(v) == ""
}

var creationRules = []fieldRules{
	{
		field: FieldName,
		value: func(c Client) string { return c.Name },
		rules: []rule{notBlank(), maxLen(MaxNameLength)},
	},
	{
		field: FieldEmail,
		value: func(c Client) string { return c.Email },
		rules: []rule{notBlank(), emailSyntax(), maxLen(MaxEmailLength)},
	},
	{
		field: FieldPhone,
		value: func(c Client) string { return c.Phone },
		rules: []rule{notBlank(), maxLen(MaxPhoneLength)},
	},
}
